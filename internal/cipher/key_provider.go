package cipher

import "fmt"

// staticKeyProvider serves a deployment-wide key with optional per-chat
// overrides. Transformers are built once at construction.
type staticKeyProvider struct {
	fallback Transformer
	perChat  map[string]Transformer
}

// NewStaticKeyProvider validates every key up front so that a bad override
// is reported at startup instead of on the first command in that chat.
func NewStaticKeyProvider(defaultKey string, chatKeys map[string]string, policy RunePolicy) (KeyProvider, error) {
	fallback, err := NewStreamCipher(defaultKey, policy)
	if err != nil {
		return nil, fmt.Errorf("default key: %w", err)
	}

	perChat := make(map[string]Transformer, len(chatKeys))
	for chatID, key := range chatKeys {
		t, err := NewStreamCipher(key, policy)
		if err != nil {
			return nil, fmt.Errorf("key for chat %q: %w", chatID, err)
		}
		perChat[chatID] = t
	}

	return &staticKeyProvider{fallback: fallback, perChat: perChat}, nil
}

func (p *staticKeyProvider) TransformerFor(chatID string) (Transformer, error) {
	if t, ok := p.perChat[chatID]; ok {
		return t, nil
	}
	return p.fallback, nil
}
