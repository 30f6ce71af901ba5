package cipher

import "strings"

var _ Cipher = Mirror{}

// Mirror is the alphabet-reversal cipher: 'a' swaps with 'z', 'b' with 'y',
// and so on. It is self-inverse, so Encrypt and Decrypt are the same
// operation.
type Mirror struct{}

// Encrypt maps every ASCII letter to its mirror across the alphabet,
// preserving case. Every other rune passes through unchanged.
func (Mirror) Encrypt(message string) (string, error) {
	var b strings.Builder

	b.Grow(len(message))

	for _, c := range message {
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteRune('Z' - (c - 'A'))
		case c >= 'a' && c <= 'z':
			b.WriteRune('z' - (c - 'a'))
		default:
			b.WriteRune(c)
		}
	}

	return b.String(), nil
}

// Decrypt applies the same mirroring as Encrypt.
func (m Mirror) Decrypt(message string) (string, error) {
	return m.Encrypt(message)
}
