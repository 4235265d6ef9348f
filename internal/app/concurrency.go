package app

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// MapBatches calls fn once per batch with at most limit calls in flight
// and concatenates the outputs in batch order. The first failure cancels
// the batches still running and is returned with its batch position.
func MapBatches[In, Out any](
	ctx context.Context,
	limit int,
	batches [][]In,
	fn func(context.Context, []In) ([]Out, error),
) ([]Out, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	parts := make([][]Out, len(batches))

	for i, batch := range batches {
		g.Go(func() error {
			out, err := fn(gctx, batch)
			if err != nil {
				return fmt.Errorf("batch %d of %d: %w", i+1, len(batches), err)
			}

			parts[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(parts...), nil
}
