package quadrature

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Estimate is one entry of a sweep.
type Estimate struct {
	Strategy   string
	N          int // requested subintervals
	EffectiveN int // subintervals actually used
	Value      float64
}

// Sweep integrates f over [a, b] with every strategy for every n and returns
// the estimates ordered by strategy, then by n, as given. Pairs are evaluated
// concurrently; the first error cancels the rest and is returned.
//
// f must be safe to call from multiple goroutines.
func Sweep(ctx context.Context, f Func, a, b float64, strategies []Strategy, ns []int) ([]Estimate, error) {
	for _, s := range strategies {
		if s == nil {
			return nil, ErrNoStrategy
		}
	}

	out := make([]Estimate, len(strategies)*len(ns))
	eg, egCtx := errgroup.WithContext(ctx)
	for si, s := range strategies {
		for ni, n := range ns {
			idx := si*len(ns) + ni
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				v, err := s.Integrate(f, a, b, n)
				if err != nil {
					return fmt.Errorf("sweep %s n=%d: %w", s.Name(), n, err)
				}
				out[idx] = Estimate{
					Strategy:   s.Name(),
					N:          n,
					EffectiveN: EffectivePartitions(s, n),
					Value:      v,
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
