package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/handler"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/service"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	h, err := handler.NewHandlers(&service.Services{}, nil, cfg, prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)
	return h
}

func busyAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l.Addr().String()
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCPortBusy(t *testing.T) {
	cfg := config.Server{GRPCAddress: busyAddress(t)}

	_, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	s.Shutdown()
}

func TestServer_RunReturnsBindError(t *testing.T) {
	cfg := config.Server{HTTPAddress: busyAddress(t)}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	select {
	case err := <-runAsync(s):
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("bind error was not reported")
	}
}

func runAsync(s Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.RunServer(context.Background()) }()
	return done
}
