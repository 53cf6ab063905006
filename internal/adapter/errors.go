package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("version conflict")
	ErrUnprocessable       = errors.New("unprocessable message")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrEmptyAIResponse is returned when the AI endpoint answered without
	// any text candidate.
	ErrEmptyAIResponse = errors.New("empty AI response")

	// ErrAIDisabled is returned when no API key is configured.
	ErrAIDisabled = errors.New("AI responder is not configured")
)
