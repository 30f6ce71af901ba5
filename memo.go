package cipher

import (
	"context"
	"errors"
)

// Memo wraps a Cipher with a result Store. Transforms are pure and
// deterministic, so a stored result is always as good as recomputing it;
// the store only has to be faster than the transform it shadows, or shared
// between processes.
type Memo struct {
	inner Cipher
	store Store
}

// NewMemo builds a memoizing wrapper around inner backed by store.
func NewMemo(inner Cipher, store Store) *Memo {
	return &Memo{inner: inner, store: store}
}

// Encrypt returns the forward transform of message, reusing a stored result
// when the store holds one.
func (m *Memo) Encrypt(ctx context.Context, message string) (string, error) {
	return m.apply(ctx, Forward, message)
}

// Decrypt returns the backward transform of message, reusing a stored
// result when the store holds one.
func (m *Memo) Decrypt(ctx context.Context, message string) (string, error) {
	return m.apply(ctx, Backward, message)
}

func (m *Memo) apply(ctx context.Context, dir Direction, message string) (string, error) {
	stored, err := m.store.Lookup(ctx, dir, message)
	if err == nil {
		return stored, nil
	}

	if !errors.Is(err, ErrResultNotFound) {
		return "", err
	}

	result, err := dir.Apply(m.inner, message)
	if err != nil {
		return "", err
	}

	if sErr := m.store.Save(ctx, dir, message, result); sErr != nil {
		return "", sErr
	}

	return result, nil
}
