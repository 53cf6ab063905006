// Package cipher implements the reversible, keyed stream transform applied to
// stored chat text by the "@encrypt" and "@decrypt" commands.
//
// The transform is a repeating-key additive cipher over code points reduced
// modulo 256:
//
//	Encrypt: out[i] = (cp(text[i]) + cp(key[i mod len(key)])) mod 256
//	Decrypt: out[i] = (cp(text[i]) - cp(key[i mod len(key)]) + 256) mod 256
//
// It is obfuscation, not a confidentiality primitive. Decrypt(Encrypt(t, k), k)
// equals t whenever every code point of t is at most 255; wider code points
// lose their high bits, which [Transformer] either rejects ([PolicyStrict])
// or accepts silently ([PolicyTruncate]).
package cipher
