// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-chat-cipher/internal/cipher"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.CipherKey == "" {
		return fmt.Errorf("%w: cipher key is required", ErrInvalidAppConfigs)
	}
	for chatID, key := range cfg.App.ChatKeys {
		if key == "" {
			return fmt.Errorf("%w: empty cipher key for chat %q", ErrInvalidAppConfigs, chatID)
		}
	}
	if _, err := cipher.ParseRunePolicy(cfg.App.RunePolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.TransformConflictRetries < 0 {
		return fmt.Errorf("%w: negative transform conflict retries", ErrInvalidAppConfigs)
	}
	if err := validateToken(cfg.App); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.ImageDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Token == "" || cfg.App.PeerID == "" {
		return fmt.Errorf("%w: token and peer id are required", ErrInvalidAppConfigs)
	}

	return nil
}
