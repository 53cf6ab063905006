// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport for the chat server and the
// terminal client.
//
// [AIAdapter] is used by the server to answer "@gemini" questions through a
// generative-language HTTP API. [ChatServerAdapter] is used by the terminal
// client to talk to the chat server REST API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AIAdapter answers free-form questions.
type AIAdapter interface {
	// Complete returns the model's answer to prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatServerAdapter defines communication of the terminal client with the
// chat server.
type ChatServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// Send posts a chat input. Images are sent as multipart form data.
	Send(ctx context.Context, req models.SendRequest) (models.SendResult, error)

	// List fetches the whole conversation.
	List(ctx context.Context, chatID string) (models.MessagesResponse, error)

	// Transform runs an explicit bulk transform of the conversation.
	Transform(ctx context.Context, chatID string, direction models.Direction) (models.TransformResult, error)

	// Version fetches the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
