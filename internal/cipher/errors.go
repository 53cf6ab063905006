package cipher

import "errors"

var (
	// ErrInvalidKey is returned when the key is empty.
	ErrInvalidKey = errors.New("invalid cipher key: key must not be empty")

	// ErrDataLoss is returned under [PolicyStrict] when the text contains a
	// code point above 255 that would not survive a round trip.
	ErrDataLoss = errors.New("text contains characters outside the single-byte range")

	// ErrUnknownPolicy is returned when a rune policy name cannot be parsed.
	ErrUnknownPolicy = errors.New("unknown rune policy")

	// ErrUnknownDirection is returned by [Transformer.Transform] for a
	// direction other than encrypt or decrypt.
	ErrUnknownDirection = errors.New("unknown transform direction")
)
