package mcache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/tangelo-labs/go-cipher"
)

type lruStore struct {
	inner *lru.Cache
}

// NewLRU creates a result store that keeps at most size results, evicting
// the least recently used ones.
func NewLRU(size int) (cipher.Store, error) {
	inner, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &lruStore{inner: inner}, nil
}

func (l *lruStore) Lookup(_ context.Context, dir cipher.Direction, message string) (string, error) {
	v, ok := l.inner.Get(cipher.StoreKey(dir, message))
	if !ok {
		return "", fmt.Errorf("%w: no %s result for message", cipher.ErrResultNotFound, dir)
	}

	return v.(string), nil
}

func (l *lruStore) Save(_ context.Context, dir cipher.Direction, message, result string) error {
	l.inner.Add(cipher.StoreKey(dir, message), result)

	return nil
}

func (l *lruStore) Flush(_ context.Context) error {
	l.inner.Purge()

	return nil
}
