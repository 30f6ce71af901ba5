package cipher

import "strings"

var _ Cipher = Shift{}

// Shift is the fixed-offset substitution cipher. The key is normalized into
// [0, 25] at construction, so any integer, including negative values and
// values beyond 26, is a valid key.
type Shift struct {
	key int
}

// NewShift builds a Shift cipher from a raw integer key. The stored key is
// reduced with a floored modulo, so -3 and 23 produce the same cipher.
func NewShift(key int) Shift {
	return Shift{key: ((key % alphabetSize) + alphabetSize) % alphabetSize}
}

// Key returns the normalized key.
func (s Shift) Key() int {
	return s.key
}

// Encrypt moves every ASCII letter key positions forward in the alphabet,
// wrapping around. Case is preserved and every other rune passes through
// unchanged.
func (s Shift) Encrypt(message string) (string, error) {
	return s.transform(message, s.key), nil
}

// Decrypt reverses Encrypt.
func (s Shift) Decrypt(message string) (string, error) {
	return s.transform(message, alphabetSize-s.key), nil
}

func (s Shift) transform(message string, by int) string {
	var b strings.Builder

	b.Grow(len(message))

	for _, c := range message {
		b.WriteRune(shiftLetter(c, by))
	}

	return b.String()
}
