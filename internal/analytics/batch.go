package analytics

import "golang.org/x/sync/errgroup"

// MapConcurrent fans a computation out over items with bounded concurrency
// and fans results back in. Results keep input order regardless of goroutine
// scheduling, preserving determinism. Independent per-player computations
// have no shared state, so no locking is needed beyond the errgroup itself.
func MapConcurrent[T, R any](items []T, workers int, fn func(T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]R, len(items))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
