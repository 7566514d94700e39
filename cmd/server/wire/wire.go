//go:build wireinject
// +build wireinject

package wire

import (
	"confgen/internal/handler"
	"confgen/internal/repository"
	"confgen/internal/router"
	"confgen/internal/server"
	"confgen/internal/service"
	"confgen/pkg/app"
	"confgen/pkg/log"
	"confgen/pkg/render"
	"confgen/pkg/server/http"
	"confgen/pkg/sid"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var repositorySet = wire.NewSet(
	repository.NewDB,
	repository.NewRepository,
	repository.NewTransaction,
	repository.NewTemplateRepository,
	repository.NewMetadataRepository,
	repository.NewSnapshotRepository,
)

var serviceSet = wire.NewSet(
	service.NewService,
	service.NewTemplateService,
	service.NewMetadataService,
	service.NewGenerateService,
	service.NewDatabaseService,
)

var handlerSet = wire.NewSet(
	handler.NewHandler,
	handler.NewTemplateHandler,
	handler.NewVersionHandler,
	handler.NewMetadataHandler,
	handler.NewGenerateHandler,
	handler.NewDatabaseHandler,
)

var renderSet = wire.NewSet(
	render.NewPongoEngine,
	wire.Bind(new(render.Engine), new(*render.PongoEngine)),
)

var serverSet = wire.NewSet(
	server.NewHTTPServer,
)

// build App
func newApp(
	httpServer *http.Server,
) *app.App {
	return app.NewApp(
		app.WithServer(httpServer),
		app.WithName("confgen-server"),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		repositorySet,
		serviceSet,
		handlerSet,
		renderSet,
		serverSet,
		wire.Struct(new(router.RouterDeps), "*"),
		sid.NewSid,
		newApp,
	))
}
