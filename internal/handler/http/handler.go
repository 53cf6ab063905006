package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/service"
)

type Handler struct {
	services *service.Services

	// registry is nil when metrics are not exported.
	registry *prometheus.Registry
	metrics  *httpMetrics

	requestTimeout time.Duration
	upgrader       websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	var registerer prometheus.Registerer
	if registry != nil {
		registerer = registry
	}

	return &Handler{
		services:       services,
		registry:       registry,
		metrics:        newHTTPMetrics(registerer),
		requestTimeout: cfg.RequestTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}
