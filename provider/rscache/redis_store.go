package rscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tangelo-labs/go-cipher"
)

type redisStore struct {
	client    *redis.Client
	encoder   cipher.Codec
	ttl       time.Duration
	keyPrefix string
}

// NewRedisStore builds a result store that uses Redis as a backend, which
// lets independent processes share transform results. Saved results expire
// after the given ttl, and every key is namespaced under keyPrefix.
func NewRedisStore(client *redis.Client, encoder cipher.Codec, ttl time.Duration, keyPrefix string) cipher.Store {
	return &redisStore{
		client:    client,
		encoder:   encoder,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

func (r redisStore) Lookup(ctx context.Context, dir cipher.Direction, message string) (string, error) {
	raw, err := r.client.Get(ctx, r.arrangeKey(dir, message)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: no %s result for message", cipher.ErrResultNotFound, dir)
		}

		return "", err
	}

	result, err := r.encoder.Decode([]byte(raw))
	if err != nil {
		return "", fmt.Errorf("%w: trying to decode %s result", cipher.ErrDecoding, dir)
	}

	return result, nil
}

func (r redisStore) Save(ctx context.Context, dir cipher.Direction, message, result string) error {
	raw, err := r.encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("%w: trying to encode %s result", cipher.ErrEncoding, dir)
	}

	if sErr := r.client.Set(ctx, r.arrangeKey(dir, message), raw, r.ttl).Err(); sErr != nil {
		return sErr
	}

	return nil
}

func (r redisStore) Flush(ctx context.Context) error {
	if err := r.client.FlushDB(ctx).Err(); err != nil {
		return err
	}

	return nil
}

func (r redisStore) arrangeKey(dir cipher.Direction, message string) string {
	return fmt.Sprintf("%s:%s", r.keyPrefix, cipher.StoreKey(dir, message))
}
