// Package bulk transforms batches of independent messages concurrently.
//
// Every message is transformed by its own task on a fixed-size worker pool.
// Cipher values carry no mutable state, so a single instance is safe to
// share across workers.
package bulk

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/tangelo-labs/go-cipher"
)

// Transform applies the dir transform of c to every message on a worker
// pool of the given size, preserving input order in the returned slice.
// The first transform error, or a cancelled ctx, aborts the batch and is
// returned; workers already running are still waited for.
func Transform(ctx context.Context, c cipher.Cipher, dir cipher.Direction, messages []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}

	defer pool.Release()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	results := make([]string, len(messages))

	for i, msg := range messages {
		if cErr := ctx.Err(); cErr != nil {
			once.Do(func() { firstErr = cErr })

			break
		}

		i, msg := i, msg

		wg.Add(1)

		if sErr := pool.Submit(func() {
			defer wg.Done()

			out, tErr := dir.Apply(c, msg)
			if tErr != nil {
				once.Do(func() { firstErr = tErr })

				return
			}

			results[i] = out
		}); sErr != nil {
			wg.Done()
			once.Do(func() { firstErr = sErr })

			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}
