package router

import (
	"github.com/gin-gonic/gin"
)

func InitTemplateRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	templateRouter := r.Group("/templates")
	{
		templateRouter.GET("", deps.TemplateHandler.ListTemplates)
		templateRouter.POST("", deps.TemplateHandler.CreateTemplate)
		templateRouter.GET("/:id", deps.TemplateHandler.GetTemplate)
		templateRouter.PUT("/:id", deps.TemplateHandler.UpdateTemplate)
		templateRouter.DELETE("/:id", deps.TemplateHandler.DeleteTemplate)

		templateRouter.GET("/:id/versions", deps.VersionHandler.ListVersions)
		templateRouter.POST("/:id/versions", deps.VersionHandler.CreateVersion)
		templateRouter.GET("/:id/versions/:version", deps.VersionHandler.GetVersion)
		templateRouter.PUT("/:id/versions/:version", deps.VersionHandler.UpdateVersion)
		templateRouter.DELETE("/:id/versions/:version", deps.VersionHandler.DeleteVersion)
		templateRouter.POST("/:id/active-version/:version", deps.VersionHandler.SetActiveVersion)
	}
}
