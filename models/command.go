package models

import (
	"fmt"
	"strings"
)

// Direction selects which half of the stream cipher a bulk transform applies.
type Direction string

const (
	DirectionEncrypt Direction = "encrypt"
	DirectionDecrypt Direction = "decrypt"
)

// Chat commands recognised in the outgoing text.
const (
	// EncryptCommand triggers a bulk encrypt of the conversation.
	EncryptCommand = "@encrypt"
	// DecryptCommand triggers a bulk decrypt of the conversation.
	DecryptCommand = "@decrypt"
	// AIPrefix marks a message as a question for the AI responder.
	AIPrefix = "@gemini"
	// AISenderID is the sender id used for AI replies.
	AISenderID = "gemini"
)

// ParseCommand reports whether text is exactly one of the bulk transform
// sentinels. The match is case-sensitive and takes no arguments, so
// "@encrypt " or "@Encrypt" are ordinary messages.
func ParseCommand(text string) (Direction, bool) {
	switch text {
	case EncryptCommand:
		return DirectionEncrypt, true
	case DecryptCommand:
		return DirectionDecrypt, true
	}
	return "", false
}

// ParseAIQuestion returns the question addressed to the AI responder when
// text starts with [AIPrefix].
func ParseAIQuestion(text string) (string, bool) {
	if !strings.HasPrefix(text, AIPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.Replace(text, AIPrefix, "", 1)), true
}

// Validate checks that d is a known direction.
func (d Direction) Validate() error {
	switch d {
	case DirectionEncrypt, DirectionDecrypt:
		return nil
	}
	return fmt.Errorf("unknown direction %q", string(d))
}
