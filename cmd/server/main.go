package main

import (
	"fmt"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/config"
	"github.com/MKhiriev/go-phone-notify/internal/handler"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/server"
	"github.com/MKhiriev/go-phone-notify/internal/service"
	"github.com/MKhiriev/go-phone-notify/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("phone-notify-gateway")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(log, build.OrNA())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.Upstream.Endpoint).
		Dur("shutdown_timeout", cfg.Server.ShutdownTimeout).
		Msg("received configs")

	srv, err := newServer(cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newServer wires adapter, services, handlers and server from cfg.
func newServer(cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (server.Server, error) {
	upstream, err := adapter.NewSOAPAdapter(cfg.Upstream, log)
	if err != nil {
		return nil, fmt.Errorf("error creating upstream adapter: %w", err)
	}

	services, err := service.NewServices(upstream, cfg, build, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return srv, nil
}

func printBuildInfo(log *logger.Logger, build models.AppBuildInfo) {
	log.Info().
		Str("build_version", build.BuildVersion()).
		Str("build_date", build.BuildDate()).
		Str("build_commit", build.BuildCommit()).
		Msg("build info")
}
