// Package contractor provides interval constraint contraction.
// This file implements the fresh-name generator used by the forward
// unfolder to allocate temporary variables.
package contractor

import "fmt"

// SymbolGenerator produces fresh, human-readable temporary names from a
// monotonic counter: prefix "t" yields t1, t2, t3, ... Output is
// deterministic for a given prefix and starting counter, which keeps
// unfolding reproducible.
//
// Each Build call owns its own generator, so temporaries are unique
// within one unfolding run without any cross-call coordination. A
// generator is not safe for concurrent use; it is only ever driven by
// the single unfold pass that owns it.
type SymbolGenerator struct {
	prefix  string
	counter int
}

// NewSymbolGenerator creates a generator with the given prefix and a
// counter starting at zero. An empty prefix defaults to "t".
func NewSymbolGenerator(prefix string) *SymbolGenerator {
	if prefix == "" {
		prefix = "t"
	}
	return &SymbolGenerator{prefix: prefix}
}

// Next returns a name distinct from every name this generator has
// produced before: the prefix followed by the incremented counter.
func (g *SymbolGenerator) Next() string {
	g.counter++
	return fmt.Sprintf("%s%d", g.prefix, g.counter)
}

// Count returns how many names have been generated.
func (g *SymbolGenerator) Count() int {
	return g.counter
}
