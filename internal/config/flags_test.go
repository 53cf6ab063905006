package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "10.0.0.1:443", expected: NetAddress{Host: "10.0.0.1", Port: 443}},
		{name: "all interfaces", input: ":9090", expected: NetAddress{Port: 9090}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-grpc-address", "localhost:9091",
		"-d", "postgres://u:p@localhost/chat",
		"-i", "/tmp/images",
		"-config", "/etc/chat.json",
		"-cipher-key", "k",
		"-rune-policy", "truncate",
		"-token-sign-key", "sign",
		"-token-issuer", "iss",
		"-token-duration", "1h",
		"-request-timeout", "5s",
		"-ai-url", "http://ai",
		"-ai-key", "ai-key",
		"-ai-model", "model",
		"-server", "http://chat",
		"-token", "bearer",
		"-peer", "7",
		"-poll-interval", "500ms",
		"-log-level", "info",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://u:p@localhost/chat", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/images", cfg.Storage.Files.ImageDir)
	assert.Equal(t, "/etc/chat.json", cfg.JSONFilePath)
	assert.Equal(t, "k", cfg.App.CipherKey)
	assert.Equal(t, "truncate", cfg.App.RunePolicy)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "http://ai", cfg.Adapter.AIBaseURL)
	assert.Equal(t, "ai-key", cfg.Adapter.AIAPIKey)
	assert.Equal(t, "model", cfg.Adapter.AIModel)
	assert.Equal(t, "http://chat", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "bearer", cfg.App.Token)
	assert.Equal(t, "7", cfg.App.PeerID)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestParseFlags_NoFlagsIsZero(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nohost"})
	assert.Error(t, err)
}
