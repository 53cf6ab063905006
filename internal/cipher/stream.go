package cipher

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const modulus = 256

// Encrypt adds the repeating key to text code point by code point, modulo 256.
// The result has exactly as many runes as text. Code points above 255 are
// reduced silently; use [CheckRunes] first when that is not acceptable.
func Encrypt(text, key string) (string, error) {
	return apply(text, key, 1)
}

// Decrypt subtracts the repeating key from text code point by code point,
// modulo 256. It inverts [Encrypt] for text whose code points are all at
// most 255.
func Decrypt(text, key string) (string, error) {
	return apply(text, key, -1)
}

// CheckRunes reports the first code point of text that does not fit into a
// single byte, wrapped in [ErrDataLoss].
func CheckRunes(text string) error {
	i := 0
	for _, r := range text {
		if r >= modulus {
			return fmt.Errorf("%w: position %d has code point U+%04X", ErrDataLoss, i, r)
		}
		i++
	}
	return nil
}

func apply(text, key string, sign int) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	keyCodes := make([]int, 0, utf8.RuneCountInString(key))
	for _, r := range key {
		keyCodes = append(keyCodes, int(r)%modulus)
	}

	var b strings.Builder
	b.Grow(len(text) * 2)

	i := 0
	for _, r := range text {
		k := keyCodes[i%len(keyCodes)]
		code := (int(r) + sign*k) % modulus
		if code < 0 {
			code += modulus
		}
		b.WriteRune(rune(code))
		i++
	}

	return b.String(), nil
}
