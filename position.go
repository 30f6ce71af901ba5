package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

var _ Cipher = Position{}

// Position is the letter-position codec: every letter encodes to its
// 1-based position in the alphabet as two decimal digits, and two-digit
// groups decode back into letters.
//
// Unlike the other ciphers, Position does not preserve case: positions are
// looked up case-insensitively and decoded letters are always lowercase.
type Position struct{}

// Encrypt encodes each letter as a zero-padded two-digit position, "01" for
// 'a' through "26" for 'z'. Digits and every other rune pass through
// unchanged.
func (Position) Encrypt(message string) (string, error) {
	var b strings.Builder

	b.Grow(len(message) * 2)

	for _, c := range message {
		if isLetter(c) {
			fmt.Fprintf(&b, "%02d", letterPos(c))

			continue
		}

		b.WriteRune(c)
	}

	return b.String(), nil
}

// Decrypt decodes two-digit groups back into lowercase letters. A digit
// always starts a group of exactly two digits, so a lone trailing digit, a
// group whose second rune is not a digit, or a group outside [01, 26] is
// ErrMalformedInput. Letters in the input are re-encoded to their positions
// without padding; every other rune passes through unchanged.
func (Position) Decrypt(message string) (string, error) {
	runes := []rune(message)

	var b strings.Builder

	b.Grow(len(runes))

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case isDigit(c):
			if i+1 >= len(runes) {
				return "", fmt.Errorf("%w: lone digit %q at end of input", ErrMalformedInput, string(c))
			}

			next := runes[i+1]
			if !isDigit(next) {
				return "", fmt.Errorf("%w: %q is not a two-digit group", ErrMalformedInput, string(runes[i:i+2]))
			}

			n := int(c-'0')*10 + int(next-'0')
			if n < 1 || n > alphabetSize {
				return "", fmt.Errorf("%w: position %02d is outside the alphabet", ErrMalformedInput, n)
			}

			b.WriteRune('a' + rune(n) - 1)

			i++
		case isLetter(c):
			b.WriteString(strconv.Itoa(letterPos(c)))
		default:
			b.WriteRune(c)
		}
	}

	return b.String(), nil
}
