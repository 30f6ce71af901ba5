package bcache

import (
	"context"
	"errors"
	"fmt"

	"github.com/allegro/bigcache"
	"github.com/tangelo-labs/go-cipher"
)

type bigCacheStore struct {
	db      *bigcache.BigCache
	encoder cipher.Codec
}

// NewBigCacheStore adapts a BigCache instance to an implementation of the
// cipher.Store interface. The encoder serializes results before they hit
// BigCache's byte-oriented storage; cipher.RawCodec is the usual choice.
func NewBigCacheStore(db *bigcache.BigCache, encoder cipher.Codec) cipher.Store {
	return &bigCacheStore{
		db:      db,
		encoder: encoder,
	}
}

func (b bigCacheStore) Lookup(_ context.Context, dir cipher.Direction, message string) (string, error) {
	value, err := b.db.Get(cipher.StoreKey(dir, message))
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return "", fmt.Errorf("%w: no %s result for message", cipher.ErrResultNotFound, dir)
		}

		return "", err
	}

	decoded, err := b.encoder.Decode(value)
	if err != nil {
		return "", fmt.Errorf("%w: trying to decode %s result, %w", cipher.ErrDecoding, dir, err)
	}

	return decoded, nil
}

func (b bigCacheStore) Save(_ context.Context, dir cipher.Direction, message, result string) error {
	raw, err := b.encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("%w: trying to encode %s result, %w", cipher.ErrEncoding, dir, err)
	}

	if sErr := b.db.Set(cipher.StoreKey(dir, message), raw); sErr != nil {
		return sErr
	}

	return nil
}

func (b bigCacheStore) Flush(_ context.Context) error {
	return b.db.Reset()
}
