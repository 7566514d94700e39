package router

import (
	"confgen/internal/repository"

	"github.com/gin-gonic/gin"
)

func InitMetadataRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	categories := []struct {
		path     string
		category repository.MetadataCategory
	}{
		{"/host-types", repository.CategoryHostType},
		{"/port-types", repository.CategoryPortType},
		{"/switch-os-types", repository.CategorySwitchOS},
	}

	for _, c := range categories {
		categoryRouter := r.Group(c.path)
		{
			categoryRouter.GET("", deps.MetadataHandler.List(c.category))
			categoryRouter.POST("", deps.MetadataHandler.Add(c.category))
			categoryRouter.DELETE("/:name", deps.MetadataHandler.Remove(c.category))
			// legacy contract used by the bundled front end
			categoryRouter.POST("/delete", deps.MetadataHandler.RemoveByBody(c.category))
		}
	}
}
