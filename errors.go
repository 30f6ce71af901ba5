package cipher

import "errors"

var (
	// ErrInvalidKey is returned when a cipher is built with a key it cannot
	// use: an empty keyword, a shift key that is not an integer, or a key
	// given to a cipher that takes none.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedInput is returned by the position codec when decoding
	// input that does not form valid two-digit groups.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownKind is returned when a cipher kind is not one of the known
	// variants.
	ErrUnknownKind = errors.New("unknown cipher kind")

	// ErrResultNotFound whenever a transform result is not found in a
	// result store.
	ErrResultNotFound = errors.New("result not found")
)
