package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

const alphabetSize = 26

// Cipher represents a component that can apply a substitution cipher to a
// message in both directions.
//
// Implementations are immutable values: every key they need is fixed at
// construction time, transforms are pure functions of the message, and a
// single instance may be reused for any number of calls.
type Cipher interface {
	// Encrypt produces the forward-direction transform of the message.
	Encrypt(message string) (string, error)

	// Decrypt produces the inverse transform of the message.
	Decrypt(message string) (string, error)
}

// Kind identifies one of the closed set of cipher variants.
type Kind int

const (
	// KindShift is the fixed-offset substitution cipher.
	KindShift Kind = iota + 1

	// KindKeyword is the polyalphabetic keyword cipher.
	KindKeyword

	// KindPosition is the letter-position codec.
	KindPosition

	// KindMirror is the alphabet-reversal cipher.
	KindMirror
)

func (k Kind) String() string {
	switch k {
	case KindShift:
		return "shift"
	case KindKeyword:
		return "keyword"
	case KindPosition:
		return "position"
	case KindMirror:
		return "mirror"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a cipher name to its Kind. It returns ErrUnknownKind for
// anything that is not one of the four variants.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return KindShift, nil
	case "keyword":
		return KindKeyword, nil
	case "position":
		return KindPosition, nil
	case "mirror":
		return KindMirror, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New builds the cipher variant identified by kind. The key string is
// interpreted per variant: a signed integer for KindShift, a non-empty
// keyword for KindKeyword, and it must be empty for the keyless variants.
func New(kind Kind, key string) (Cipher, error) {
	switch kind {
	case KindShift:
		k, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: shift key %q is not an integer", ErrInvalidKey, key)
		}

		return NewShift(k), nil
	case KindKeyword:
		kw, err := NewKeyword(key)
		if err != nil {
			return nil, err
		}

		return kw, nil
	case KindPosition:
		if key != "" {
			return nil, fmt.Errorf("%w: the position codec takes no key", ErrInvalidKey)
		}

		return Position{}, nil
	case KindMirror:
		if key != "" {
			return nil, fmt.Errorf("%w: the mirror cipher takes no key", ErrInvalidKey)
		}

		return Mirror{}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// Direction selects which transform of a Cipher to apply.
type Direction int

const (
	// Forward applies Encrypt.
	Forward Direction = iota

	// Backward applies Decrypt.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Apply runs the transform of c selected by d over the message.
func (d Direction) Apply(c Cipher, message string) (string, error) {
	if d == Backward {
		return c.Decrypt(message)
	}

	return c.Encrypt(message)
}

// shiftLetter moves an ASCII letter `by` positions forward in the alphabet,
// wrapping around and preserving case. Anything else is returned unchanged.
// The shift must be in [0, 26]; callers express a backward shift of n as
// 26-n.
func shiftLetter(c rune, by int) rune {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A' + (c-'A'+rune(by))%alphabetSize
	case c >= 'a' && c <= 'z':
		return 'a' + (c-'a'+rune(by))%alphabetSize
	}

	return c
}

func isLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// letterPos returns the 1-based alphabet position of an ASCII letter,
// case-insensitively: 'a' and 'A' are 1, 'z' and 'Z' are 26.
func letterPos(c rune) int {
	if c >= 'A' && c <= 'Z' {
		return int(c-'A') + 1
	}

	return int(c-'a') + 1
}
