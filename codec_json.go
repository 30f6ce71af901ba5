package cipher

import (
	"encoding/json"
)

var _ Codec = JSONCodec{}

// JSONCodec is a codec that uses the json package for encoding and decoding
// results. Use it when stored results must stay readable from other tools.
type JSONCodec struct{}

// Encode converts a result to its JSON representation.
func (b JSONCodec) Encode(result string) ([]byte, error) {
	return json.Marshal(result)
}

// Decode converts JSON bytes back to a result.
func (b JSONCodec) Decode(data []byte) (string, error) {
	var result string

	err := json.Unmarshal(data, &result)

	return result, err
}
