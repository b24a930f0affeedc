// Package contractor provides interval constraint contraction.
// This file implements the paver: parallel branch-and-prune over boxes,
// alternating contraction with bisection to cover the solution set of a
// constraint with small boxes.
package contractor

import (
	"context"
	"fmt"
	"sync"

	"github.com/gitrdm/gonarrow/internal/parallel"
)

// PaverConfig controls branch-and-prune paving.
type PaverConfig struct {
	// Precision is the widest side a box may have to be accepted
	// without further bisection. Values ≤ 0 fall back to the default.
	Precision float64

	// MaxBoxes caps the total number of boxes in the paving. When the
	// cap is hit, remaining frontier boxes are accepted coarsely
	// instead of being split further. Values ≤ 0 fall back to the
	// default.
	MaxBoxes int

	// Workers is the size of the contraction worker pool.
	// Values ≤ 0 select one worker per CPU core.
	Workers int
}

// DefaultPaverConfig returns the default paving parameters.
func DefaultPaverConfig() *PaverConfig {
	return &PaverConfig{
		Precision: 0.1,
		MaxBoxes:  4096,
	}
}

// Paver covers the part of a box consistent with a contractor's
// constraint using branch-and-prune: contract a box, discard it if
// empty, accept it if small enough, otherwise bisect it along its
// widest variable and recurse on both halves.
//
// Contraction of independent boxes only reads the contractor's immutable
// compiled program, so each frontier wave is contracted in parallel on a
// worker pool.
type Paver struct {
	contractor *Contractor
	config     *PaverConfig
}

// NewPaver creates a paver over the given contractor. A nil config
// selects DefaultPaverConfig. Returns an error if contractor is nil.
func NewPaver(contractor *Contractor, config *PaverConfig) (*Paver, error) {
	if contractor == nil {
		return nil, fmt.Errorf("Paver: contractor cannot be nil")
	}
	if config == nil {
		config = DefaultPaverConfig()
	}
	resolved := *config
	if resolved.Precision <= 0 {
		resolved.Precision = DefaultPaverConfig().Precision
	}
	if resolved.MaxBoxes <= 0 {
		resolved.MaxBoxes = DefaultPaverConfig().MaxBoxes
	}
	return &Paver{contractor: contractor, config: &resolved}, nil
}

// paveOutcome is the classification of one contracted frontier box.
type paveOutcome struct {
	accepted *Box
	children []Box
}

// Pave covers the consistent part of box with boxes no wider than the
// configured precision. Returns the accepted boxes; an inconsistent
// input yields an empty slice. The only error conditions are context
// cancellation and pool shutdown.
func (p *Paver) Pave(ctx context.Context, box Box) ([]Box, error) {
	pool := parallel.NewWorkerPool(p.config.Workers)
	defer pool.Shutdown()

	var accepted []Box
	frontier := []Box{box}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return accepted, err
		}

		// Budget exhausted: keep the remaining frontier coarse rather
		// than splitting it further.
		if len(accepted)+len(frontier) >= p.config.MaxBoxes {
			for _, b := range frontier {
				narrowed := p.contractor.Apply(b)
				if !narrowed.IsEmpty() {
					accepted = append(accepted, narrowed)
				}
			}
			return accepted, nil
		}

		outcomes := make([]paveOutcome, len(frontier))
		var wg sync.WaitGroup
		for i, b := range frontier {
			wg.Add(1)
			err := pool.Submit(ctx, func() {
				defer wg.Done()
				outcomes[i] = p.process(b)
			})
			if err != nil {
				wg.Done()
				wg.Wait()
				return accepted, err
			}
		}
		wg.Wait()

		var next []Box
		for _, outcome := range outcomes {
			if outcome.accepted != nil {
				accepted = append(accepted, *outcome.accepted)
			}
			next = append(next, outcome.children...)
		}
		frontier = next
	}

	return accepted, nil
}

// process contracts one frontier box and classifies it: dropped when
// inconsistent, accepted when small enough, bisected otherwise.
func (p *Paver) process(box Box) paveOutcome {
	narrowed := p.contractor.Apply(box)
	if narrowed.IsEmpty() {
		return paveOutcome{}
	}
	name, width := widestVariable(narrowed)
	if name == "" || width <= p.config.Precision {
		return paveOutcome{accepted: &narrowed}
	}
	left, right := bisect(narrowed, name)
	return paveOutcome{children: []Box{left, right}}
}

// widestVariable returns the variable with the largest interval width,
// breaking ties by sorted name order for determinism.
func widestVariable(box Box) (string, float64) {
	widest := ""
	width := 0.0
	for _, name := range box.Names() {
		if w := box[name].Width(); w > width {
			widest = name
			width = w
		}
	}
	return widest, width
}

// bisect splits a box into two halves along the named variable at its
// interval midpoint.
func bisect(box Box, name string) (Box, Box) {
	iv := box[name]
	mid := iv.Mid()
	left := box.Clone()
	right := box.Clone()
	left[name] = Interval{Lo: iv.Lo, Hi: mid}
	right[name] = Interval{Lo: mid, Hi: iv.Hi}
	return left, right
}
