package mcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v2"
	"github.com/tangelo-labs/go-cipher"
)

// UnlimitedItems can be passed as itemsLimit to NewTTL to keep the store
// unbounded.
const UnlimitedItems = -1

type ttlStore struct {
	d     time.Duration
	inner *ttlcache.Cache
	mu    sync.RWMutex
}

// NewTTL builds a result store whose entries expire after the given
// duration.
// If refreshTTLOnHit is true, the TTL will be reset on every lookup.
// If itemsLimit is greater than 0, the store holds at most that many results.
func NewTTL(ttl time.Duration, itemsLimit int, refreshTTLOnHit bool) cipher.Store {
	c := ttlcache.NewCache()
	c.SkipTTLExtensionOnHit(!refreshTTLOnHit)

	if itemsLimit > 0 {
		c.SetCacheSizeLimit(itemsLimit)
	}

	return &ttlStore{
		inner: c,
		d:     ttl,
	}
}

func (t *ttlStore) Lookup(_ context.Context, dir cipher.Direction, message string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, err := t.inner.Get(cipher.StoreKey(dir, message))
	if err != nil {
		if errors.Is(err, ttlcache.ErrNotFound) {
			return "", fmt.Errorf("%w: no %s result for message", cipher.ErrResultNotFound, dir)
		}

		return "", err
	}

	return v.(string), nil
}

func (t *ttlStore) Save(_ context.Context, dir cipher.Direction, message, result string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inner.SetWithTTL(cipher.StoreKey(dir, message), result, t.d)
}

func (t *ttlStore) Flush(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inner.Purge()
}
