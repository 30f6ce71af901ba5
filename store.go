package cipher

import "context"

// Store persists transform results keyed by direction and input message.
// Concrete backends live under provider/.
type Store interface {
	// Lookup returns the stored result of transforming message in the given
	// direction. It returns ErrResultNotFound when no result has been saved
	// yet.
	Lookup(ctx context.Context, dir Direction, message string) (value string, err error)

	// Save records the result of transforming message in the given
	// direction.
	Save(ctx context.Context, dir Direction, message string, result string) error

	// Flush deletes every saved result.
	Flush(ctx context.Context) error
}

// StoreKey builds the canonical storage key for a direction and message.
// Providers use it so that every backend keys results the same way.
func StoreKey(dir Direction, message string) string {
	return dir.String() + ":" + message
}
