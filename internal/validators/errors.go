package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyChatID      = errors.New("chat id is required")
	ErrEmptySenderID    = errors.New("sender id is required")
	ErrEmptyMessage     = errors.New("message text or image is required")
	ErrMessageTooLong   = errors.New("message text is too long")
	ErrInvalidRecipient = errors.New("recipient must differ from sender")
	ErrInvalidDirection = errors.New("invalid transform direction")
)
