package router

import (
	"github.com/gin-gonic/gin"
)

// InitGenerateRouter binds the rendering endpoints. The preview endpoint
// lives at the root, outside /api, matching the path the editor pane calls.
func InitGenerateRouter(
	deps RouterDeps,
	root *gin.RouterGroup,
	api *gin.RouterGroup,
) {
	root.POST("/render", deps.GenerateHandler.Render)

	api.POST("/upload-excel", deps.GenerateHandler.UploadExcel)
	api.POST("/generate-configs", deps.GenerateHandler.GenerateConfigs)
}
