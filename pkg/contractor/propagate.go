// Package contractor provides interval constraint contraction.
// This file implements the backward propagator: compiling a forward
// statement sequence into the reverse program executed by Apply.
package contractor

import "fmt"

// ReverseCall is one step of a reverse program: the same three names as
// the corresponding forward statement, paired with the contracting
// function resolved from the operation registry at build time. The
// injected narrowing statement reverses to a re-intersection with its
// bound.
type ReverseCall struct {
	Kind   StatementKind
	Result string
	Op     Operator
	Left   Operand
	Right  Operand
	Bound  Interval

	contract reverseFn // resolved contracting function, nil for narrow calls
}

// String returns the reverse call in relational notation.
func (rc ReverseCall) String() string {
	if rc.Kind == StatementNarrow {
		return fmt.Sprintf("%s = %s ∩ %s", rc.Result, rc.Result, rc.Bound)
	}
	return fmt.Sprintf("(%s, %s, %s) = reverse[%s](%s, %s, %s)",
		rc.Result, rc.Left, rc.Right, rc.Op, rc.Result, rc.Left, rc.Right)
}

// Propagate compiles a forward statement sequence into its reverse
// program: one reverse call per statement, in strictly reverse order.
// Walking backwards is what makes contraction flow from the injected
// output constraint down to the original leaf variables: each
// statement's operands are narrowed before the statements defining
// those operands are processed in turn.
//
// Fails atomically with an UnsupportedOperatorError if any statement's
// operator has no registered reverse: no partial reverse program is
// returned.
func Propagate(statements []Statement) ([]ReverseCall, error) {
	calls := make([]ReverseCall, 0, len(statements))
	for i := len(statements) - 1; i >= 0; i-- {
		stmt := statements[i]
		call := ReverseCall{
			Kind:   stmt.Kind,
			Result: stmt.Result,
			Op:     stmt.Op,
			Left:   stmt.Left,
			Right:  stmt.Right,
			Bound:  stmt.Bound,
		}
		if stmt.Kind == StatementApply {
			contract, err := reverseOf(stmt.Op)
			if err != nil {
				return nil, err
			}
			call.contract = contract
		}
		calls = append(calls, call)
	}
	return calls, nil
}
