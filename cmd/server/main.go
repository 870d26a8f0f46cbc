package main

import (
	"fmt"

	"github.com/MKhiriev/go-json-localization/internal/assets"
	"github.com/MKhiriev/go-json-localization/internal/catalog"
	"github.com/MKhiriev/go-json-localization/internal/config"
	"github.com/MKhiriev/go-json-localization/internal/handler"
	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/resource"
	"github.com/MKhiriev/go-json-localization/internal/server"
	"github.com/MKhiriev/go-json-localization/internal/service"
	"github.com/MKhiriev/go-json-localization/models"
)

const role = "localization-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger(role)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLoggerWithLevel(role, cfg.App.LogLevel)
	cfg.App.Version = buildInfo.VersionOr(cfg.App.Version)
	log.Debug().Any("config", cfg).Msg("received configs")

	// catalogs are merged before anything can serve them
	loader := resource.NewLoader(assets.Locales, log.WithStr("component", "loader"))
	writer := resource.NewWriter(resource.WriterOptions{Indent: cfg.Localization.Indent}, log.WithStr("component", "writer"))

	bootstrapper, err := catalog.NewBootstrapper(cfg.Localization, loader, writer, log.WithStr("component", "bootstrap"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog bootstrapper")
	}

	docs, err := bootstrapper.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("error merging message catalogs")
	}

	services, err := service.NewServices(docs, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
