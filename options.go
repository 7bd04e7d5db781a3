package lsp

import (
	"fmt"
	"math"
)

const (
	defaultBisections = 4
	defaultGridDelta  = 0.02

	// maxGridDelta keeps the coarse grid fine enough to bracket at least
	// one root per alternation on [-1, 1].
	maxGridDelta = 0.5
)

type config struct {
	bisections int
	gridDelta  float64
}

func defaultConfig() config {
	return config{
		bisections: defaultBisections,
		gridDelta:  defaultGridDelta,
	}
}

// Option configures the forward transform [LpcToLsp].
type Option func(*config) error

// WithBisections sets the number of bisection refinement steps applied to
// each bracketed root (default 4). Each step halves the bracket, so the
// refined root is within gridDelta/2^(n+1) of the true zero crossing.
func WithBisections(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("lsp: bisection count must be >= 1: %d", n)
		}

		cfg.bisections = n

		return nil
	}
}

// WithGridDelta sets the coarse grid spacing of the root search over the
// x = cos(w) domain (default 0.02). Smaller values cost more polynomial
// evaluations but reduce the risk of stepping over a close root pair.
func WithGridDelta(delta float64) Option {
	return func(cfg *config) error {
		if delta <= 0 || delta > maxGridDelta || math.IsNaN(delta) {
			return fmt.Errorf("lsp: grid delta must be in (0, %g]: %f", maxGridDelta, delta)
		}

		cfg.gridDelta = delta

		return nil
	}
}
