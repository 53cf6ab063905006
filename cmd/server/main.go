package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/handler"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/server"
	"github.com/MKhiriev/go-chat-cipher/internal/service"
	"github.com/MKhiriev/go-chat-cipher/internal/store"
	"github.com/MKhiriev/go-chat-cipher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-chat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	ai, err := adapter.NewHTTPAIAdapter(cfg.Adapter, log)
	if err != nil {
		if !errors.Is(err, adapter.ErrAIDisabled) {
			log.Fatal().Err(err).Msg("error creating AI adapter")
		}
		log.Warn().Msg("AI responder is disabled, @gemini questions will be answered with an error")
		ai = nil
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	version := buildVersion
	if version == "" {
		version = cfg.App.Version
	}

	services, err := service.NewServices(storages, ai, cfg, models.NewAppBuildInfo(version, buildDate, buildCommit), registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
