package cipher_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tangelo-labs/go-cipher"
)

type mapStore struct {
	entries map[string]string
}

func newMapStore() *mapStore {
	return &mapStore{entries: map[string]string{}}
}

func (m *mapStore) Lookup(_ context.Context, dir cipher.Direction, message string) (string, error) {
	v, ok := m.entries[cipher.StoreKey(dir, message)]
	if !ok {
		return "", fmt.Errorf("%w: no %s result for message", cipher.ErrResultNotFound, dir)
	}

	return v, nil
}

func (m *mapStore) Save(_ context.Context, dir cipher.Direction, message, result string) error {
	m.entries[cipher.StoreKey(dir, message)] = result

	return nil
}

func (m *mapStore) Flush(_ context.Context) error {
	m.entries = map[string]string{}

	return nil
}

// countingCipher wraps a Cipher and counts how many transforms actually run.
type countingCipher struct {
	inner cipher.Cipher
	calls int
}

func (c *countingCipher) Encrypt(message string) (string, error) {
	c.calls++

	return c.inner.Encrypt(message)
}

func (c *countingCipher) Decrypt(message string) (string, error) {
	c.calls++

	return c.inner.Decrypt(message)
}

func TestMemo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("GIVEN a memoized shift cipher", func(t *testing.T) {
		counting := &countingCipher{inner: cipher.NewShift(3)}
		memo := cipher.NewMemo(counting, newMapStore())

		t.Run("WHEN encrypting the same message twice", func(t *testing.T) {
			first, err := memo.Encrypt(ctx, "HELLO, WORLD!")
			require.NoError(t, err)
			require.Equal(t, "KHOOR, ZRUOG!", first)

			second, err := memo.Encrypt(ctx, "HELLO, WORLD!")
			require.NoError(t, err)

			t.Run("THEN the second result comes from the store", func(t *testing.T) {
				require.Equal(t, first, second)
				require.Equal(t, 1, counting.calls)
			})
		})

		t.Run("WHEN decrypting the same text", func(t *testing.T) {
			back, err := memo.Decrypt(ctx, "KHOOR, ZRUOG!")
			require.NoError(t, err)

			t.Run("THEN directions are stored independently", func(t *testing.T) {
				require.Equal(t, "HELLO, WORLD!", back)
				require.Equal(t, 2, counting.calls)
			})
		})
	})

	t.Run("GIVEN a memoized position codec", func(t *testing.T) {
		memo := cipher.NewMemo(cipher.Position{}, newMapStore())

		t.Run("WHEN decoding malformed input THEN the error propagates and nothing is stored", func(t *testing.T) {
			_, err := memo.Decrypt(ctx, "081")
			require.ErrorIs(t, err, cipher.ErrMalformedInput)

			_, err = memo.Decrypt(ctx, "081")
			require.ErrorIs(t, err, cipher.ErrMalformedInput)
		})
	})
}
