package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
	"github.com/MKhiriev/go-chat-cipher/internal/cipher"
	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/store"
	"github.com/MKhiriev/go-chat-cipher/models"
)

type Services struct {
	ChatService    ChatService
	Mutator        Mutator
	AuthService    AuthService
	AppInfoService AppInfoService
	Notifier       Notifier
}

// NewServices builds every server-side service. The cipher key is resolved
// here so that a missing or malformed key stops the server at startup.
func NewServices(
	storages *store.Storages,
	ai adapter.AIAdapter,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	registerer prometheus.Registerer,
	logger *logger.Logger,
) (*Services, error) {
	policy, err := cipher.ParseRunePolicy(cfg.App.RunePolicy)
	if err != nil {
		return nil, err
	}

	keys, err := cipher.NewStaticKeyProvider(cfg.App.CipherKey, cfg.App.ChatKeys, policy)
	if err != nil {
		return nil, fmt.Errorf("cipher key setup: %w", err)
	}

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics(registerer)
	notifier := NewNotifier(defaultEventBuffer)
	mutator := NewMutator(storages.ChatRepository, keys, cfg.App.TransformConflictRetries, metrics, logger)

	return &Services{
		ChatService: NewChatService(
			storages.ChatRepository,
			storages.UserChatRepository,
			storages.ImageStorage,
			mutator,
			ai,
			notifier,
			metrics,
			logger,
		),
		Mutator:        mutator,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		Notifier:       notifier,
	}, nil
}
