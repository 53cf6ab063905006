// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/models"
)

const defaultPollInterval = 2 * time.Second

// MessagePoller periodically fetches a conversation and reports it when its
// version changes.
type MessagePoller struct {
	adapter  adapter.ChatServerAdapter
	chatID   string
	interval time.Duration

	onUpdate func(models.MessagesResponse)
	onError  func(error)

	logger *logger.Logger
}

// NewMessagePoller builds a poller for chatID. onUpdate receives every new
// version of the conversation, onError receives fetch failures. Either
// callback may be nil.
func NewMessagePoller(
	chatServer adapter.ChatServerAdapter,
	chatID string,
	cfg config.ClientWorkers,
	onUpdate func(models.MessagesResponse),
	onError func(error),
	logger *logger.Logger,
) *MessagePoller {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if onUpdate == nil {
		onUpdate = func(models.MessagesResponse) {}
	}
	if onError == nil {
		onError = func(error) {}
	}

	return &MessagePoller{
		adapter:  chatServer,
		chatID:   chatID,
		interval: interval,
		onUpdate: onUpdate,
		onError:  onError,
		logger:   logger,
	}
}

// Run implements [Worker]. The first fetch happens immediately.
func (p *MessagePoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	lastVersion := int64(-1)
	p.poll(ctx, &lastVersion)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx, &lastVersion)
		}
	}
}

func (p *MessagePoller) poll(ctx context.Context, lastVersion *int64) {
	resp, err := p.adapter.List(ctx, p.chatID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Warn().Err(err).Str("func", "MessagePoller.poll").Str("chat_id", p.chatID).Msg("fetching conversation failed")
		// force the next successful fetch to be reported
		*lastVersion = -1
		p.onError(err)
		return
	}

	if resp.Version == *lastVersion {
		return
	}
	*lastVersion = resp.Version
	p.onUpdate(resp)
}
