// Package grpc exposes the standard gRPC health service of the chat server.
//
// The serving status follows the reachability of the message store: load
// balancers and orchestrators can probe it with grpc_health_probe or any
// client of grpc.health.v1.Health.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
)

// ServiceName is the health-checked service name besides the overall "".
const ServiceName = "gochatcipher.Chat"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	store  Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose status starts as NOT_SERVING
// until the first successful ping of store.
func NewHandler(store Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		store:  store,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Watch pings the store every interval and updates the serving status until
// ctx is done. On return every service is reported NOT_SERVING.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.check(ctx)

		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
		}
	}
}

func (h *Handler) check(ctx context.Context) {
	if h.store == nil {
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.store.Ping(pingCtx); err != nil {
		h.logger.Warn().Err(err).Str("func", "grpc.Handler.check").Msg("store is unreachable")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
