package cipher

import (
	"bytes"
	"encoding/gob"
)

var _ Codec = GobCodec{}

// GobCodec is a codec that uses the gob package for encoding and decoding
// results.
type GobCodec struct{}

// Encode converts a result to its gob representation.
func (b GobCodec) Encode(result string) ([]byte, error) {
	var buff bytes.Buffer

	if err := gob.NewEncoder(&buff).Encode(result); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// Decode converts gob bytes back to a result.
func (b GobCodec) Decode(data []byte) (string, error) {
	var result string

	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&result); err != nil {
		return result, err
	}

	return result, nil
}
