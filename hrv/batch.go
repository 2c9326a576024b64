package hrv

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ComputeBatch computes the descriptor set of every snapshot, running at most
// workers computations at once (unbounded when workers <= 0). Results are in
// input order. The first failure cancels the snapshots not yet started and is
// returned.
func ComputeBatch(ctx context.Context, snapshots [][]float64, cfg Config, workers int) ([]Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	out := make([]Set, len(snapshots))
	for i, ibi := range snapshots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Compute(ibi, cfg)
			if err != nil {
				return fmt.Errorf("hrv: snapshot %d: %w", i, err)
			}
			out[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
