// Package contractor provides interval constraint contraction.
// This file implements the closed-interval arithmetic the forward and
// reverse passes evaluate against.
package contractor

import (
	"fmt"
	"math"
)

// Interval represents a closed interval [Lo, Hi] of real numbers.
// Endpoints may be infinite. An interval with Lo > Hi is empty; Empty()
// returns the canonical empty interval and IsEmpty recognizes every
// inverted pair, so arithmetic results can be tested uniformly.
//
// The arithmetic here is outward-conservative at the set level (results
// always contain the exact image) but does not perform directed rounding;
// endpoint computations use ordinary float64 operations.
//
// Intervals are immutable values. All methods return new intervals.
type Interval struct {
	Lo float64
	Hi float64
}

// NewInterval creates the interval [lo, hi].
// Returns an error if either endpoint is NaN or lo > hi; use Empty()
// directly when an empty interval is intended.
func NewInterval(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Empty(), fmt.Errorf("Interval: endpoint is NaN")
	}
	if lo > hi {
		return Empty(), fmt.Errorf("Interval: lo (%g) must be ≤ hi (%g)", lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval {
	return Interval{Lo: v, Hi: v}
}

// Empty returns the canonical empty interval.
func Empty() Interval {
	return Interval{Lo: math.Inf(1), Hi: math.Inf(-1)}
}

// Entire returns the interval covering the whole real line.
func Entire() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// IsEmpty reports whether the interval contains no points.
func (iv Interval) IsEmpty() bool {
	return iv.Lo > iv.Hi || math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi)
}

// IsEntire reports whether the interval is the whole real line.
func (iv Interval) IsEntire() bool {
	return math.IsInf(iv.Lo, -1) && math.IsInf(iv.Hi, 1)
}

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v float64) bool {
	return !iv.IsEmpty() && iv.Lo <= v && v <= iv.Hi
}

// Width returns Hi - Lo, 0 for empty intervals.
func (iv Interval) Width() float64 {
	if iv.IsEmpty() {
		return 0
	}
	return iv.Hi - iv.Lo
}

// Mid returns the midpoint of the interval.
// For half-bounded intervals the finite endpoint is returned; for the
// entire line (or an empty interval) the result is 0.
func (iv Interval) Mid() float64 {
	if iv.IsEmpty() || iv.IsEntire() {
		return 0
	}
	if math.IsInf(iv.Lo, -1) {
		return iv.Hi
	}
	if math.IsInf(iv.Hi, 1) {
		return iv.Lo
	}
	return iv.Lo + (iv.Hi-iv.Lo)/2
}

// Equal reports whether two intervals are the same set.
// All empty intervals compare equal regardless of representation.
func (iv Interval) Equal(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return iv.IsEmpty() && other.IsEmpty()
	}
	return iv.Lo == other.Lo && iv.Hi == other.Hi
}

// Intersect returns the intersection of two intervals.
//
// Intersection is the fundamental narrowing step: every reverse operator
// and the injected constraint reduce to intersections, which is what makes
// contraction monotone (the result is always a subset of the receiver).
func (iv Interval) Intersect(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	lo := math.Max(iv.Lo, other.Lo)
	hi := math.Min(iv.Hi, other.Hi)
	if lo > hi {
		return Empty()
	}
	return Interval{Lo: lo, Hi: hi}
}

// Hull returns the smallest interval containing both operands
// (the convex hull of their union).
func (iv Interval) Hull(other Interval) Interval {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	return Interval{Lo: math.Min(iv.Lo, other.Lo), Hi: math.Max(iv.Hi, other.Hi)}
}

// Add returns the interval sum [a+c, b+d].
func (iv Interval) Add(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: iv.Lo + other.Lo, Hi: iv.Hi + other.Hi}
}

// Sub returns the interval difference [a-d, b-c].
func (iv Interval) Sub(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: iv.Lo - other.Hi, Hi: iv.Hi - other.Lo}
}

// mulEndpoint multiplies two endpoints, resolving the 0·∞ indeterminate
// form to 0 (the set-level convention: 0 times any real is 0).
func mulEndpoint(x, y float64) float64 {
	if x == 0 || y == 0 {
		return 0
	}
	return x * y
}

// Mul returns the interval product.
// The result is the min/max over the four endpoint products, with the
// 0·∞ indeterminate form resolved to 0.
func (iv Interval) Mul(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	p1 := mulEndpoint(iv.Lo, other.Lo)
	p2 := mulEndpoint(iv.Lo, other.Hi)
	p3 := mulEndpoint(iv.Hi, other.Lo)
	p4 := mulEndpoint(iv.Hi, other.Hi)
	return Interval{
		Lo: math.Min(math.Min(p1, p2), math.Min(p3, p4)),
		Hi: math.Max(math.Max(p1, p2), math.Max(p3, p4)),
	}
}

// divEndpoint divides two endpoints, resolving 0/y to 0 and the ∞/∞
// indeterminate form to a signed infinity (conservative outer bound).
func divEndpoint(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	if math.IsInf(x, 0) && math.IsInf(y, 0) {
		return math.Copysign(math.Inf(1), x) * math.Copysign(1, y)
	}
	return x / y
}

// Div returns the interval quotient iv / other using generalized
// (hull) interval division.
//
// When the divisor contains zero the quotient follows the relational
// reading of z·other ∋ iv, whose solution set may be a union of two
// half-lines; this method returns its convex hull, which keeps the
// result a single interval at the cost of precision:
//   - dividend and divisor both contain zero → Entire (z·0 = 0 holds
//     for every z)
//   - divisor is [0,0] and the dividend avoids zero → Empty
//   - divisor strictly straddles zero → Entire
//   - divisor touches zero on one side → a half-line
func (iv Interval) Div(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	if !other.Contains(0) {
		q1 := divEndpoint(iv.Lo, other.Lo)
		q2 := divEndpoint(iv.Lo, other.Hi)
		q3 := divEndpoint(iv.Hi, other.Lo)
		q4 := divEndpoint(iv.Hi, other.Hi)
		return Interval{
			Lo: math.Min(math.Min(q1, q2), math.Min(q3, q4)),
			Hi: math.Max(math.Max(q1, q2), math.Max(q3, q4)),
		}
	}
	// Divisor contains zero. A dividend containing zero pairs with the
	// divisor's zero point, so no quotient can be excluded; narrowing a
	// consistent triple to empty here would be unsound.
	if iv.Contains(0) {
		return Entire()
	}
	if other.Lo == 0 && other.Hi == 0 {
		return Empty()
	}
	if other.Lo < 0 && other.Hi > 0 {
		return Entire()
	}
	if other.Lo == 0 { // other = [0, hi], hi > 0
		switch {
		case iv.Lo > 0:
			return Interval{Lo: iv.Lo / other.Hi, Hi: math.Inf(1)}
		case iv.Hi < 0:
			return Interval{Lo: math.Inf(-1), Hi: iv.Hi / other.Hi}
		default:
			return Entire()
		}
	}
	// other = [lo, 0], lo < 0
	switch {
	case iv.Lo > 0:
		return Interval{Lo: math.Inf(-1), Hi: iv.Lo / other.Lo}
	case iv.Hi < 0:
		return Interval{Lo: iv.Hi / other.Lo, Hi: math.Inf(1)}
	default:
		return Entire()
	}
}

// Pow returns the interval raised to the integer power n.
//
// Even powers fold the interval through zero ([−2,1]² = [0,4]); odd powers
// are monotone; n = 0 yields [1,1]; negative n is computed as the
// reciprocal of the positive power.
func (iv Interval) Pow(n int) Interval {
	if iv.IsEmpty() {
		return Empty()
	}
	switch {
	case n == 0:
		return Point(1)
	case n < 0:
		return Point(1).Div(iv.Pow(-n))
	case n%2 == 1:
		return Interval{Lo: math.Pow(iv.Lo, float64(n)), Hi: math.Pow(iv.Hi, float64(n))}
	default:
		hi := math.Max(math.Abs(iv.Lo), math.Abs(iv.Hi))
		if iv.Contains(0) {
			return Interval{Lo: 0, Hi: math.Pow(hi, float64(n))}
		}
		lo := math.Min(math.Abs(iv.Lo), math.Abs(iv.Hi))
		return Interval{Lo: math.Pow(lo, float64(n)), Hi: math.Pow(hi, float64(n))}
	}
}

// Root returns the principal (non-negative) n-th root of the
// non-negative part of the interval, Empty if the interval has no
// non-negative points. n must be positive.
func (iv Interval) Root(n int) Interval {
	nn := iv.Intersect(Interval{Lo: 0, Hi: math.Inf(1)})
	if nn.IsEmpty() {
		return Empty()
	}
	inv := 1 / float64(n)
	return Interval{Lo: math.Pow(nn.Lo, inv), Hi: math.Pow(nn.Hi, inv)}
}

// Neg returns the mirror image [-Hi, -Lo].
func (iv Interval) Neg() Interval {
	if iv.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: -iv.Hi, Hi: -iv.Lo}
}

// String returns a human-readable representation, "∅" for empty intervals.
func (iv Interval) String() string {
	if iv.IsEmpty() {
		return "∅"
	}
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}
