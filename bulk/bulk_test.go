package bulk_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"github.com/tangelo-labs/go-cipher"
	"github.com/tangelo-labs/go-cipher/bulk"
)

func TestTransform(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	messages := make([]string, 200)
	for i := range messages {
		messages[i] = gofakeit.Sentence(6)
	}

	s := cipher.NewShift(7)

	got, err := bulk.Transform(ctx, s, cipher.Forward, messages, 8)
	require.NoError(t, err)
	require.Len(t, got, len(messages))

	for i, msg := range messages {
		want, wErr := s.Encrypt(msg)
		require.NoError(t, wErr)
		require.Equal(t, want, got[i], "message %d out of order", i)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	ctx := context.Background()

	messages := []string{"HELLO", "WORLD", "attack at dawn", "", "1 + 1 = 2?"}
	m := cipher.Mirror{}

	encrypted, err := bulk.Transform(ctx, m, cipher.Forward, messages, 2)
	require.NoError(t, err)

	decrypted, err := bulk.Transform(ctx, m, cipher.Backward, encrypted, 2)
	require.NoError(t, err)
	require.Equal(t, messages, decrypted)
}

func TestTransformPropagatesErrors(t *testing.T) {
	ctx := context.Background()

	// The second message has a lone trailing digit, which the position
	// codec rejects on decode.
	messages := []string{"0805121215", "081", "0126"}

	_, err := bulk.Transform(ctx, cipher.Position{}, cipher.Backward, messages, 4)
	require.ErrorIs(t, err, cipher.ErrMalformedInput)
}

func TestTransformCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bulk.Transform(ctx, cipher.NewShift(1), cipher.Forward, []string{"abc"}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTransformEmptyBatch(t *testing.T) {
	got, err := bulk.Transform(context.Background(), cipher.Mirror{}, cipher.Forward, nil, 4)
	require.NoError(t, err)
	require.Empty(t, got)
}
