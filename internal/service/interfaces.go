package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-chat-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Mutator rewrites a whole conversation with the stream cipher.
type Mutator interface {
	// BulkTransform fetches every message of chatID, applies direction to
	// each text and writes the sequence back in one versioned replace.
	BulkTransform(ctx context.Context, chatID string, direction models.Direction) (models.TransformResult, error)
}

// ChatService is the entry point for chat inputs.
type ChatService interface {
	// SendMessage handles one typed input: a bulk transform command, an
	// ordinary message or a question for the AI responder.
	SendMessage(ctx context.Context, req models.SendRequest) (models.SendResult, error)
	// ListMessages returns the conversation; an unknown chat is empty.
	ListMessages(ctx context.Context, chatID string) (models.MessagesResponse, error)
	// ListUserChats returns the chat index of userID, most recent first.
	ListUserChats(ctx context.Context, userID string) ([]models.UserChat, error)
	// OpenImage returns a stored image by name.
	OpenImage(ctx context.Context, name string) (io.ReadCloser, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// Notifier fans chat events out to live subscribers.
type Notifier interface {
	// Subscribe returns a channel of events of chatID and a function that
	// cancels the subscription and closes the channel.
	Subscribe(chatID string) (<-chan models.ChatEvent, func())
	// Publish delivers event to current subscribers without blocking.
	Publish(event models.ChatEvent)
}
