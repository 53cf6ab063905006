package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/tui"
	"github.com/MKhiriev/go-chat-cipher/internal/workers"
	"github.com/MKhiriev/go-chat-cipher/models"
)

// App is the terminal client of one conversation.
type App struct {
	cfg        *config.ClientConfig
	buildInfo  models.AppBuildInfo
	chatServer adapter.ChatServerAdapter
	logger     *logger.Logger
}

// NewApp builds the client from its configuration.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	chatServer, err := adapter.NewHTTPChatServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create chat server adapter: %w", err)
	}

	return &App{
		cfg:        cfg,
		buildInfo:  buildInfo,
		chatServer: chatServer,
		logger:     logger,
	}, nil
}

// Run implements [Client]. The poller stops once the UI exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui, err := tui.New(ctx, a.chatServer, a.cfg.App, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create terminal ui: %w", err)
	}

	poller := workers.NewMessagePoller(a.chatServer, ui.ChatID(), a.cfg.Workers, ui.ShowMessages, ui.ShowError, a.logger)
	background := workers.NewWorkers(poller)

	done := make(chan struct{})
	go func() {
		defer close(done)
		background.Run(ctx)
	}()

	a.logger.Info().Str("chat_id", ui.ChatID()).Str("user_id", ui.UserID()).Msg("chat client started")

	err = ui.Run()
	cancel()
	<-done

	return err
}
