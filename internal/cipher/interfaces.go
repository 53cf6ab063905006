package cipher

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

import "github.com/MKhiriev/go-chat-cipher/models"

// Transformer applies the stream cipher with a fixed key and rune policy.
type Transformer interface {
	// Transform encrypts or decrypts text according to direction.
	Transform(direction models.Direction, text string) (string, error)

	// Fingerprint identifies the key the transformer is bound to.
	Fingerprint() string
}

// KeyProvider resolves the cipher key for a conversation.
type KeyProvider interface {
	// TransformerFor returns the transformer bound to the key of chatID.
	TransformerFor(chatID string) (Transformer, error)
}
