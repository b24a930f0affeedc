// Package contractor provides interval constraint contraction.
// This file implements the fixed-point driver: iterated application of
// a contractor until narrowing stalls.
package contractor

import (
	"context"
	"math"
)

// FixedPointConfig controls fixed-point iteration.
type FixedPointConfig struct {
	// MaxIterations caps the number of Apply calls. Values ≤ 0 fall
	// back to the default.
	MaxIterations int

	// Tolerance is the endpoint movement below which an interval is
	// considered unchanged. Negative values fall back to the default.
	Tolerance float64
}

// DefaultFixedPointConfig returns the default fixed-point parameters.
func DefaultFixedPointConfig() *FixedPointConfig {
	return &FixedPointConfig{
		MaxIterations: 100,
		Tolerance:     1e-9,
	}
}

// FixedPoint applies the contractor repeatedly until no interval
// endpoint moves by more than the configured tolerance, the box becomes
// empty, the iteration cap is reached, or ctx is cancelled. A nil
// config selects DefaultFixedPointConfig.
//
// Returns the final box and the number of Apply calls performed. The
// only error condition is context cancellation; convergence and
// inconsistency are ordinary results. Since a single Apply never
// widens, the iteration is monotone and termination at the cap is safe:
// the intermediate box is still a valid contraction.
func (c *Contractor) FixedPoint(ctx context.Context, box Box, config *FixedPointConfig) (Box, int, error) {
	if config == nil {
		config = DefaultFixedPointConfig()
	}
	maxIterations := config.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultFixedPointConfig().MaxIterations
	}
	tolerance := config.Tolerance
	if tolerance < 0 {
		tolerance = DefaultFixedPointConfig().Tolerance
	}

	current := c.restrict(box)
	for iteration := 1; iteration <= maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return current, iteration - 1, err
		}
		next := c.Apply(current)
		if next.IsEmpty() {
			return next, iteration, nil
		}
		if withinTolerance(current, next, tolerance) {
			return next, iteration, nil
		}
		current = next
	}
	return current, maxIterations, nil
}

// withinTolerance reports whether no interval endpoint moved by more
// than tol between two boxes over the same variables.
func withinTolerance(before, after Box, tol float64) bool {
	for name, b := range before {
		a, ok := after[name]
		if !ok {
			return false
		}
		if b.IsEmpty() || a.IsEmpty() {
			if b.IsEmpty() != a.IsEmpty() {
				return false
			}
			continue
		}
		if math.Abs(b.Lo-a.Lo) > tol || math.Abs(b.Hi-a.Hi) > tol {
			return false
		}
	}
	return true
}
