package mcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tangelo-labs/go-cipher"
	"github.com/tangelo-labs/go-cipher/provider/mcache"
)

func TestLRU(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := mcache.NewLRU(256)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, cipher.Forward, "HELLO", "KHOOR"))

	found, err := store.Lookup(ctx, cipher.Forward, "HELLO")
	require.NoError(t, err)
	require.Equal(t, "KHOOR", found)

	_, err = store.Lookup(ctx, cipher.Backward, "HELLO")
	require.ErrorIs(t, err, cipher.ErrResultNotFound)

	require.NoError(t, store.Flush(ctx))

	_, err = store.Lookup(ctx, cipher.Forward, "HELLO")
	require.ErrorIs(t, err, cipher.ErrResultNotFound)
}

func TestLRUEviction(t *testing.T) {
	ctx := context.Background()

	store, err := mcache.NewLRU(1)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, cipher.Forward, "one", "lmv"))
	require.NoError(t, store.Save(ctx, cipher.Forward, "two", "gdl"))

	_, err = store.Lookup(ctx, cipher.Forward, "one")
	require.ErrorIs(t, err, cipher.ErrResultNotFound)

	found, err := store.Lookup(ctx, cipher.Forward, "two")
	require.NoError(t, err)
	require.Equal(t, "gdl", found)
}
