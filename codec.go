package cipher

import "errors"

var (
	// ErrEncoding is returned by a Codec when it fails to encode a result.
	ErrEncoding = errors.New("failed to encode result")

	// ErrDecoding is returned by a Codec when it fails to decode a result.
	ErrDecoding = errors.New("failed to decode result")
)

// Codec represents a component that can serialize transform results for
// byte-oriented result stores, such as Redis or BigCache.
type Codec interface {
	// Encode converts a result to bytes. It returns ErrEncoding if the
	// result cannot be encoded.
	Encode(result string) ([]byte, error)

	// Decode converts bytes back to a result. It returns ErrDecoding if the
	// bytes cannot be decoded.
	Decode(data []byte) (string, error)
}

var _ Codec = RawCodec{}

// RawCodec stores results as their raw bytes. It is the cheapest codec and
// the right default for plain text results.
type RawCodec struct{}

// Encode converts a result to its raw bytes.
func (RawCodec) Encode(result string) ([]byte, error) {
	return []byte(result), nil
}

// Decode converts raw bytes back to a result.
func (RawCodec) Decode(data []byte) (string, error) {
	return string(data), nil
}
