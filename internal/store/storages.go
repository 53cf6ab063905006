package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
)

// Storages groups every persistence component used by the server.
type Storages struct {
	ChatRepository     ChatRepository
	UserChatRepository UserChatRepository
	ImageStorage       ImageStorage

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// prepares the image directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("failed to apply migrations")
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	images, err := NewImageFileStorage(cfg.Files.ImageDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		ChatRepository:     NewChatRepository(db, log),
		UserChatRepository: NewUserChatRepository(db, log),
		ImageStorage:       images,
		db:                 db,
	}, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
