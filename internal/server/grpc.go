package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	myGRPC "github.com/MKhiriev/go-chat-cipher/internal/handler/grpc"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
)

// healthInterval is how often the store is pinged for the health status.
const healthInterval = 5 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	healthCtx  context.Context
	stopHealth context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))
	handler.Register(server)

	healthCtx, stopHealth := context.WithCancel(context.Background())

	return &grpcServer{
		handler:    handler,
		server:     server,
		listener:   listener,
		healthCtx:  healthCtx,
		stopHealth: stopHealth,
		logger:     logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("launching gRPC server")

	go g.handler.Watch(g.healthCtx, healthInterval)

	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.stopHealth()
	g.server.GracefulStop()
}

func loggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		event := log.Debug()
		if err != nil {
			event = log.Warn().Err(err)
		}
		event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Msg("gRPC call")

		return resp, err
	}
}
