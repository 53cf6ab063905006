// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the cipher, token and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the message database and image directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound integrations: the AI responder for the server
	// and the chat server address for the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// CipherKey is the deployment-wide key of the message stream cipher.
	// Env: APP_CIPHER_KEY
	CipherKey string `env:"CIPHER_KEY"`

	// ChatKeys overrides CipherKey for individual conversations,
	// e.g. "chat-a:key1,chat-b:key2".
	// Env: APP_CIPHER_CHAT_KEYS
	ChatKeys map[string]string `env:"CIPHER_CHAT_KEYS"`

	// RunePolicy is "strict" (reject code points above 255) or "truncate".
	// Env: APP_CIPHER_RUNE_POLICY
	RunePolicy string `env:"CIPHER_RUNE_POLICY"`

	// TransformConflictRetries is how many extra fetch-transform-write rounds
	// a bulk transform attempts after a concurrent append.
	// Env: APP_TRANSFORM_CONFLICT_RETRIES
	TransformConflictRetries int `env:"TRANSFORM_CONFLICT_RETRIES"`

	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Token is the bearer token the client presents to the server.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// PeerID is the user the client is chatting with.
	// Env: APP_PEER_ID
	PeerID string `env:"PEER_ID"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the message database connection settings.
type DB struct {
	// DSN selects the backend: "postgres://..." uses pgx, anything else is
	// a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings of the image store.
type Files struct {
	// ImageDir is where uploaded images are written.
	// Env: STORAGE_FILES_IMAGE_DIR
	ImageDir string `env:"IMAGE_DIR"`
}

// Server holds network and timeout settings for inbound transports.
type Server struct {
	// HTTPAddress is the host:port of the HTTP API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health endpoint. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound integration settings.
type Adapter struct {
	// AIBaseURL is the generative-language API endpoint.
	// Env: ADAPTER_AI_BASE_URL
	AIBaseURL string `env:"AI_BASE_URL"`

	// AIAPIKey authenticates against the AI endpoint. Empty disables the
	// AI responder.
	// Env: ADAPTER_AI_API_KEY
	AIAPIKey string `env:"AI_API_KEY"`

	// AIModel is the model name, e.g. "gemini-1.5-flash".
	// Env: ADAPTER_AI_MODEL
	AIModel string `env:"AI_MODEL"`

	// HTTPAddress is the chat server base URL used by the client.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// PollInterval is how often the client refreshes the conversation.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error loading configs: %w", err)
	}

	return cfg, nil
}
