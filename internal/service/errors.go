package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of user input.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenIsExpiredOrInvalid is returned when a bearer token fails
	// signature, issuer or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAIUnavailable is reported when the AI responder cannot answer.
	ErrAIUnavailable = errors.New("AI responder unavailable")

	// ErrEmptyAIQuestion is reported when "@gemini" is sent without a question.
	ErrEmptyAIQuestion = errors.New("empty question for AI responder")

	// ErrVersionIsNotSpecified is returned when the build carries no version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
