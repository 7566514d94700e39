package server

import (
	apiV1 "confgen/api/v1"
	"confgen/internal/middleware"
	"confgen/internal/router"
	"confgen/pkg/server/http"

	"github.com/gin-gonic/gin"
)

func NewHTTPServer(
	deps router.RouterDeps,
) *http.Server {
	if deps.Config.GetString("env") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	s := http.NewServer(
		gin.Default(),
		deps.Logger,
		http.WithServerHost(deps.Config.GetString("http.host")),
		http.WithServerPort(deps.Config.GetInt("http.port")),
	)

	s.Use(
		middleware.CORSMiddleware(),
		middleware.ResponseLogMiddleware(deps.Logger),
		middleware.RequestLogMiddleware(deps.Logger),
	)
	s.GET("/health", func(ctx *gin.Context) {
		apiV1.HandleSuccess(ctx, map[string]interface{}{
			"status": "ok",
		})
	})

	root := s.Group("/")
	api := s.Group("/api")
	router.InitGenerateRouter(deps, root, api)
	router.InitTemplateRouter(deps, api)
	router.InitMetadataRouter(deps, api)
	router.InitDatabaseRouter(deps, api)

	return s
}
