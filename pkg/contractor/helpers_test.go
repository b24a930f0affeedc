package contractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertIntervalInDelta asserts both endpoints match within delta,
// for results computed through irrational operations (roots).
func assertIntervalInDelta(t *testing.T, want, got Interval, delta float64) {
	t.Helper()
	require.False(t, got.IsEmpty(), "got empty interval, want %s", want)
	assert.InDelta(t, want.Lo, got.Lo, delta, "lo endpoint")
	assert.InDelta(t, want.Hi, got.Hi, delta, "hi endpoint")
}

// assertSubset asserts that inner ⊆ outer.
func assertSubset(t *testing.T, inner, outer Interval) {
	t.Helper()
	if inner.IsEmpty() {
		return
	}
	assert.True(t, inner.Lo >= outer.Lo && inner.Hi <= outer.Hi,
		"%s is not a subset of %s", inner, outer)
}
