package router

import (
	"github.com/gin-gonic/gin"
)

func InitDatabaseRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	r.GET("/export-database", deps.DatabaseHandler.Export)
	r.POST("/import-database", deps.DatabaseHandler.Import)
}
