package server

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/handler"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownOnce sync.Once
	logger       *logger.Logger
}

// NewServer creates a server for every handler present in handlers. The
// gRPC listener is bound immediately so that a busy port fails startup.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil {
		grpcServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcServer
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer launches every created server and blocks until ctx is done or
// one of them fails. The caller usually derives ctx from
// signal.NotifyContext so that SIGINT, SIGTERM and SIGQUIT stop the server.
func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 2)

	if s.httpServer != nil {
		go func() { errCh <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		go func() { errCh <- s.gRPCServer.RunServer() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		if runErr != nil {
			s.logger.Err(runErr).Str("func", "server.RunServer").Msg("server failed")
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server shutdown gracefully")

	return runErr
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		var wg sync.WaitGroup
		if s.httpServer != nil {
			wg.Go(s.httpServer.Shutdown)
		}
		if s.gRPCServer != nil {
			wg.Go(s.gRPCServer.Shutdown)
		}
		wg.Wait()
	})
}
