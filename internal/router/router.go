package router

import (
	"confgen/internal/handler"
	"confgen/pkg/log"

	"github.com/spf13/viper"
)

type RouterDeps struct {
	Logger          *log.Logger
	Config          *viper.Viper
	TemplateHandler *handler.TemplateHandler
	VersionHandler  *handler.VersionHandler
	MetadataHandler *handler.MetadataHandler
	GenerateHandler *handler.GenerateHandler
	DatabaseHandler *handler.DatabaseHandler
}
