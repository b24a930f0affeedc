// Package contractor provides interval constraint contraction.
// This file defines the error taxonomy for the build pipeline.
//
// Both error types abort Build. Apply itself never returns an error:
// numeric inconsistency is reported as an empty box, a valid result.
package contractor

import "fmt"

// MalformedExpressionError reports an expression tree the unfolder cannot
// process: a nil node or child, an Expr implementation outside Leaf/Call,
// an unknown leaf kind, or a leaf variable whose name collides with a
// generated temporary.
type MalformedExpressionError struct {
	Reason string
}

// Error returns a human-readable description of the malformed expression.
func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("contractor: malformed expression: %s", e.Reason)
}

// malformedf constructs a MalformedExpressionError with a formatted reason.
func malformedf(format string, args ...interface{}) error {
	return &MalformedExpressionError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedOperatorError reports an operator with no registered reverse
// (contracting) counterpart. Detected when the backward pass is compiled,
// so no partial Contractor ever escapes Build.
type UnsupportedOperatorError struct {
	Op Operator
}

// Error returns a human-readable description of the unsupported operator.
func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("contractor: unsupported operator %s: no reverse operation registered", e.Op)
}
