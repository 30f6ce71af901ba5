package cipher

import (
	"fmt"
	"strings"
)

var _ Cipher = Keyword{}

// Keyword is the polyalphabetic keyword cipher. Each message rune is shifted
// by the 1-based alphabet position of the keyword rune at the same index,
// with the keyword repeating for as long as the message runs.
//
// Every message rune consumes one keyword position, letters or not: a space
// in the message advances the keyword without a visible effect. Non-letter
// keyword runes contribute a shift of zero.
type Keyword struct {
	runes []rune
}

// NewKeyword builds a Keyword cipher. The keyword must be non-empty since
// its length drives the key cycling; an empty keyword is ErrInvalidKey.
func NewKeyword(keyword string) (Keyword, error) {
	if keyword == "" {
		return Keyword{}, fmt.Errorf("%w: keyword must not be empty", ErrInvalidKey)
	}

	return Keyword{runes: []rune(keyword)}, nil
}

// Encrypt shifts every ASCII letter forward by the keyword offset at its
// position, preserving case. Every other rune passes through unchanged.
func (k Keyword) Encrypt(message string) (string, error) {
	return k.transform(message, Forward)
}

// Decrypt reverses Encrypt.
func (k Keyword) Decrypt(message string) (string, error) {
	return k.transform(message, Backward)
}

func (k Keyword) transform(message string, dir Direction) (string, error) {
	if len(k.runes) == 0 {
		return "", fmt.Errorf("%w: keyword must not be empty", ErrInvalidKey)
	}

	var b strings.Builder

	b.Grow(len(message))

	for i, c := range []rune(message) {
		by := keywordOffset(k.runes[i%len(k.runes)])
		if dir == Backward {
			by = alphabetSize - by
		}

		b.WriteRune(shiftLetter(c, by))
	}

	return b.String(), nil
}

// keywordOffset maps a keyword rune to its shift value: 'a' and 'A' are 1
// up to 'z' and 'Z' at 26, and 0 for anything that is not an ASCII letter.
func keywordOffset(c rune) int {
	if isLetter(c) {
		return letterPos(c)
	}

	return 0
}
