// Package contractor provides interval constraint contraction.
// This file implements the operation registry: the static table pairing
// each forward operator with its reverse (contracting) counterpart.
//
// Reverse operators follow the HC4-revise scheme from interval constraint
// propagation: for a relation v = op(a, b), each of v, a, b is narrowed
// by intersection with the values the relation permits given the other
// two. Intersections only ever shrink intervals, so every reverse
// operator is a contraction; an empty result signals inconsistency.
package contractor

import "math"

// forwardFn evaluates a binary operator on two intervals.
type forwardFn func(a, b Interval) Interval

// reverseFn contracts the triple of a relation v = op(a, b): given the
// current intervals it returns possibly-narrower intervals for all
// three. Implementations narrow a from v and b, then b from v and the
// narrowed a, then v from the narrowed operands.
type reverseFn func(v, a, b Interval) (Interval, Interval, Interval)

// operation pairs an operator's forward evaluator with its reverse
// contractor. The table below is populated once at process start and
// never mutated; lookups during Build resolve function references so
// Apply performs no dispatch.
type operation struct {
	forward forwardFn
	reverse reverseFn
}

var operations = map[Operator]operation{
	OpAdd: {forward: Interval.Add, reverse: reverseAdd},
	OpSub: {forward: Interval.Sub, reverse: reverseSub},
	OpMul: {forward: Interval.Mul, reverse: reverseMul},
	OpDiv: {forward: Interval.Div, reverse: reverseDiv},
	OpPow: {forward: forwardPow, reverse: reversePow},
}

// forwardOf returns the forward evaluator for op.
func forwardOf(op Operator) (forwardFn, error) {
	entry, ok := operations[op]
	if !ok {
		return nil, &UnsupportedOperatorError{Op: op}
	}
	return entry.forward, nil
}

// reverseOf returns the reverse (contracting) operator for op.
func reverseOf(op Operator) (reverseFn, error) {
	entry, ok := operations[op]
	if !ok {
		return nil, &UnsupportedOperatorError{Op: op}
	}
	return entry.reverse, nil
}

// reverseAdd contracts v = a + b.
func reverseAdd(v, a, b Interval) (Interval, Interval, Interval) {
	a = a.Intersect(v.Sub(b))
	b = b.Intersect(v.Sub(a))
	v = v.Intersect(a.Add(b))
	return v, a, b
}

// reverseSub contracts v = a - b.
func reverseSub(v, a, b Interval) (Interval, Interval, Interval) {
	a = a.Intersect(v.Add(b))
	b = b.Intersect(a.Sub(v))
	v = v.Intersect(a.Sub(b))
	return v, a, b
}

// reverseMul contracts v = a * b.
// Division by an interval containing zero hulls to a half-line or the
// entire line, which simply yields no narrowing for that operand.
func reverseMul(v, a, b Interval) (Interval, Interval, Interval) {
	a = a.Intersect(v.Div(b))
	b = b.Intersect(v.Div(a))
	v = v.Intersect(a.Mul(b))
	return v, a, b
}

// reverseDiv contracts v = a / b.
func reverseDiv(v, a, b Interval) (Interval, Interval, Interval) {
	a = a.Intersect(v.Mul(b))
	b = b.Intersect(a.Div(v))
	v = v.Intersect(a.Div(b))
	return v, a, b
}

// forwardPow evaluates a ^ b for a constant integer exponent operand.
// A non-integer or non-degenerate exponent cannot be produced by the
// Pow constructor; if one appears the evaluation stays sound by
// returning the entire line.
func forwardPow(a, b Interval) Interval {
	n, ok := integerExponent(b)
	if !ok {
		if a.IsEmpty() || b.IsEmpty() {
			return Empty()
		}
		return Entire()
	}
	return a.Pow(n)
}

// reversePow contracts v = a ^ n for a constant integer exponent.
// The base is narrowed to the preimage of v under x ↦ xⁿ: a signed root
// for odd n, and for even n the hull of the intersections with the
// negative and positive root branches (tighter than hulling the branches
// first). The exponent operand is a constant and is never narrowed.
func reversePow(v, a, b Interval) (Interval, Interval, Interval) {
	n, ok := integerExponent(b)
	if !ok {
		return v, a, b
	}
	switch {
	case n == 0:
		// a ^ 0 = 1 regardless of a; only v can be narrowed.
		v = v.Intersect(Point(1))
		if v.IsEmpty() {
			return Empty(), Empty(), b
		}
		return v, a, b
	case n < 0:
		// a ^ n = 1 / a ^ (-n): contract through the reciprocal.
		recip := Point(1).Div(v)
		_, a, _ = reversePow(recip, a, Point(float64(-n)))
	case n%2 == 1:
		a = a.Intersect(signedRoot(v, n))
	default:
		root := v.Root(n)
		neg := a.Intersect(root.Neg())
		pos := a.Intersect(root)
		a = neg.Hull(pos)
	}
	v = v.Intersect(a.Pow(n))
	return v, a, b
}

// integerExponent extracts a degenerate integer exponent from an
// interval operand.
func integerExponent(b Interval) (int, bool) {
	if b.IsEmpty() || b.Lo != b.Hi {
		return 0, false
	}
	n := math.Round(b.Lo)
	if n != b.Lo || math.IsInf(n, 0) {
		return 0, false
	}
	return int(n), true
}

// signedRoot returns the odd-root preimage of v: the interval of all x
// with xⁿ ∈ v, for odd positive n.
func signedRoot(v Interval, n int) Interval {
	if v.IsEmpty() {
		return Empty()
	}
	inv := 1 / float64(n)
	return Interval{Lo: oddRoot(v.Lo, inv), Hi: oddRoot(v.Hi, inv)}
}

// oddRoot computes the real n-th root of x for odd n, preserving sign.
func oddRoot(x, inv float64) float64 {
	if x < 0 {
		return -math.Pow(-x, inv)
	}
	return math.Pow(x, inv)
}
