package cipher

import (
	"fmt"

	"github.com/MKhiriev/go-chat-cipher/models"
)

type streamCipher struct {
	key         string
	policy      RunePolicy
	fingerprint string
}

// NewStreamCipher binds key and policy into a [Transformer].
// It fails with [ErrInvalidKey] when key is empty.
func NewStreamCipher(key string, policy RunePolicy) (Transformer, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	return &streamCipher{
		key:         key,
		policy:      policy,
		fingerprint: Fingerprint(key),
	}, nil
}

func (s *streamCipher) Transform(direction models.Direction, text string) (string, error) {
	if s.policy == PolicyStrict {
		if err := CheckRunes(text); err != nil {
			return "", err
		}
	}

	switch direction {
	case models.DirectionEncrypt:
		return Encrypt(text, s.key)
	case models.DirectionDecrypt:
		return Decrypt(text, s.key)
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, string(direction))
}

func (s *streamCipher) Fingerprint() string {
	return s.fingerprint
}
