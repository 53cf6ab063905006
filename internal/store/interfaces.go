package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-chat-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ChatRepository stores conversations as ordered, versioned message
// sequences.
type ChatRepository interface {
	// FetchMessages returns the conversation with its messages in order.
	// It returns ErrChatNotFound when the conversation was never written.
	FetchMessages(ctx context.Context, chatID string) (models.Chat, error)

	// ReplaceMessages atomically replaces the whole sequence if the stored
	// version still equals expectedVersion and returns the new version.
	// It returns ErrVersionConflict when the version has moved.
	ReplaceMessages(ctx context.Context, chatID string, expectedVersion int64, msgs []models.Message) (int64, error)

	// EnsureChat creates an empty conversation if it does not exist yet.
	EnsureChat(ctx context.Context, chatID string) error

	// AppendMessage adds msg to the end of the conversation, creating it if
	// needed, and returns the new version.
	AppendMessage(ctx context.Context, chatID string, msg models.Message) (int64, error)
}

// UserChatRepository maintains the per-user index of conversations.
type UserChatRepository interface {
	UpsertUserChat(ctx context.Context, userChat models.UserChat) error
	ListUserChats(ctx context.Context, userID string) ([]models.UserChat, error)
}

// ImageStorage keeps uploaded images outside the database.
type ImageStorage interface {
	// Save writes the content of r and returns the public URL of the image.
	Save(ctx context.Context, fileName string, r io.Reader) (string, error)
	// Open returns the stored image by name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
