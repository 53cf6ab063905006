package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags from args into a config layer.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health address in format [host]:[port]
//	-d database DSN
//	-i image directory
//	-c/-config json file path with configs
//	-cipher-key message cipher key
//	-rune-policy strict|truncate
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s")
//	-ai-url AI endpoint base URL
//	-ai-key AI API key
//	-ai-model AI model name
//	-server chat server URL (client)
//	-token bearer token (client)
//	-peer peer user id (client)
//	-poll-interval conversation refresh interval (client)
//	-log-level zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, imageDir, jsonConfigPath string
	var cipherKey, runePolicy string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, pollInterval time.Duration
	var aiURL, aiKey, aiModel string
	var serverURL, token, peerID, logLevel string

	fs := flag.NewFlagSet("go-chat-cipher", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&imageDir, "i", "", "Image directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cipherKey, "cipher-key", "", "Message cipher key")
	fs.StringVar(&runePolicy, "rune-policy", "", "Rune policy: strict or truncate")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&aiURL, "ai-url", "", "AI endpoint base URL")
	fs.StringVar(&aiKey, "ai-key", "", "AI API key")
	fs.StringVar(&aiModel, "ai-model", "", "AI model name")
	fs.StringVar(&serverURL, "server", "", "Chat server URL")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&peerID, "peer", "", "Peer user id")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Conversation refresh interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			CipherKey:     cipherKey,
			RunePolicy:    runePolicy,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			Token:         token,
			PeerID:        peerID,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ImageDir: imageDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			AIBaseURL:      aiURL,
			AIAPIKey:       aiKey,
			AIModel:        aiModel,
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{PollInterval: pollInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
