package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-chat-cipher/models"
)

// MessageValidator checks chat inputs before they reach the store.
type MessageValidator struct {
}

// NewMessageValidator returns a [Validator] for [models.SendRequest],
// [models.TransformRequest] and [models.Direction] values.
func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SendRequest:
		return v.validateSendRequest(value, fields...)
	case *models.SendRequest:
		return v.validateSendRequest(*value, fields...)

	case models.TransformRequest:
		return v.validateDirection(value.Direction)
	case *models.TransformRequest:
		return v.validateDirection(value.Direction)

	case models.Direction:
		return v.validateDirection(value)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *MessageValidator) validateSendRequest(req models.SendRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChatID, FieldSenderID, FieldRecipientID, FieldText}
	}

	for _, field := range fields {
		switch field {
		case FieldChatID:
			if req.ChatID == "" {
				return ErrEmptyChatID
			}
		case FieldSenderID:
			if req.SenderID == "" {
				return ErrEmptySenderID
			}
		case FieldRecipientID:
			if req.RecipientID != "" && req.RecipientID == req.SenderID {
				return ErrInvalidRecipient
			}
		case FieldText:
			if req.Text == "" && req.Image == nil {
				return ErrEmptyMessage
			}
			if utf8.RuneCountInString(req.Text) > MaxMessageRunes {
				return fmt.Errorf("%w: limit is %d runes", ErrMessageTooLong, MaxMessageRunes)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *MessageValidator) validateDirection(direction models.Direction) error {
	if err := direction.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDirection, err)
	}

	return nil
}
