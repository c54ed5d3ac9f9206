package quadrature

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Integrator integrates functions with one active Strategy that can be
// replaced between calls.
type Integrator struct {
	mu       sync.RWMutex
	strategy Strategy
	logger   *zap.Logger
}

// Option configures an Integrator.
type Option func(*Integrator)

// WithLogger sets the logger used for debug output. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(in *Integrator) {
		if l != nil {
			in.logger = l
		}
	}
}

// NewIntegrator creates an Integrator whose active strategy is s.
func NewIntegrator(s Strategy, opts ...Option) (*Integrator, error) {
	if s == nil {
		return nil, ErrNoStrategy
	}
	in := &Integrator{strategy: s, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

// SetStrategy replaces the active strategy. The change applies to the next
// Integrate call. SetStrategy followed by Integrate is not atomic: with
// concurrent callers, an Integrate racing a swap may run with either strategy.
func (in *Integrator) SetStrategy(s Strategy) error {
	if s == nil {
		return ErrNoStrategy
	}
	in.mu.Lock()
	prev := in.strategy
	in.strategy = s
	in.mu.Unlock()

	in.logger.Debug("integration strategy changed",
		zap.String("from", prev.Name()),
		zap.String("to", s.Name()))
	return nil
}

// Strategy returns the active strategy.
func (in *Integrator) Strategy() Strategy {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.strategy
}

// Integrate delegates to the active strategy.
func (in *Integrator) Integrate(f Func, a, b float64, n int) (float64, error) {
	s := in.Strategy()
	v, err := s.Integrate(f, a, b, n)
	if err != nil {
		return 0, fmt.Errorf("integrate: %w", err)
	}
	in.logger.Debug("integrated",
		zap.String("strategy", s.Name()),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Int("n", n),
		zap.Int("effective_n", EffectivePartitions(s, n)),
		zap.Float64("value", v))
	return v, nil
}
