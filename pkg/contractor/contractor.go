// Package contractor provides interval constraint contraction.
// This file implements the top-level orchestrator: Build wires the
// unfolder, constraint injector, and backward propagator into a
// reusable Contractor whose Apply narrows boxes.
package contractor

// forwardStep is a forward statement with its evaluator resolved from
// the operation registry, so Apply performs no lookups.
type forwardStep struct {
	stmt Statement
	eval forwardFn // nil for narrow steps
}

// Contractor narrows boxes against the constraint "expression ∈ target".
//
// A Contractor is built once per (expression, target) pair: Build runs
// the forward unfolder, injects the target constraint, and compiles the
// reverse program, so Apply does pure interval evaluation with no
// structural work. After Build a Contractor is immutable and safe for
// concurrent Apply calls with distinct boxes.
//
// Apply is a contraction: for every leaf variable the returned interval
// is a subset of (or equal to) the input interval. A single Apply is not
// generally idempotent (drive FixedPoint for iterated narrowing), but
// re-applying never widens.
type Contractor struct {
	expr   Expr
	target Interval
	leaves []string

	forward []forwardStep
	reverse []ReverseCall

	// Constant-rooted expressions produce no statements; consistency
	// with the target is decided once here.
	constRoot       bool
	constConsistent bool
}

// Build constructs a Contractor for the constraint "expr ∈ target".
//
// All structural validation happens here: Build fails with a
// MalformedExpressionError for trees the unfolder cannot process and
// with an UnsupportedOperatorError when any operator lacks a registered
// reverse. On error no partial Contractor is returned.
//
// Each Build call owns a fresh symbol generator, so temporary numbering
// always starts at t1 and concurrent builds never interfere.
func Build(expr Expr, target Interval) (*Contractor, error) {
	gen := NewSymbolGenerator("t")
	result, statements, err := Unfold(expr, gen)
	if err != nil {
		return nil, err
	}

	temps := make(map[string]bool, len(statements))
	for _, stmt := range statements {
		temps[stmt.Result] = true
	}
	leaves := Variables(expr)
	for _, leaf := range leaves {
		if temps[leaf] {
			return nil, malformedf("variable %q collides with a generated temporary", leaf)
		}
	}

	c := &Contractor{
		expr:   expr,
		target: target,
		leaves: leaves,
	}

	if !result.IsVar() {
		// Constant expression: nothing to narrow, only a consistency check.
		c.constRoot = true
		c.constConsistent = !Point(result.Value).Intersect(target).IsEmpty()
		return c, nil
	}

	statements = Constrain(statements, result, target)

	c.forward = make([]forwardStep, len(statements))
	for i, stmt := range statements {
		step := forwardStep{stmt: stmt}
		if stmt.Kind == StatementApply {
			eval, err := forwardOf(stmt.Op)
			if err != nil {
				return nil, err
			}
			step.eval = eval
		}
		c.forward[i] = step
	}

	reverse, err := Propagate(statements)
	if err != nil {
		return nil, err
	}
	c.reverse = reverse

	return c, nil
}

// Apply narrows box against the contractor's constraint and returns the
// result restricted to the expression's leaf variables. The input box is
// never mutated; leaf variables absent from it are treated as unbounded.
//
// The forward statements are evaluated first to seed every temporary,
// then the injected constraint is applied; if it empties the result
// variable the whole box is inconsistent and an all-empty box over the
// leaves is returned without running the reverse pass. Otherwise every
// reverse call contracts its three variables in sequence, with the same
// empty short-circuit.
//
// Inconsistency is reported through the leaf intervals, so for an
// expression with no leaf variables the returned box has no entries and
// its emptiness carries no signal: a contradicted constant expression
// yields the same zero-entry box as a satisfied one. Callers that need
// the distinction should check the constant against Target themselves.
func (c *Contractor) Apply(box Box) Box {
	if c.constRoot {
		if !c.constConsistent {
			return EmptyBox(c.leaves)
		}
		return c.restrict(box)
	}

	working := make(Box, len(box)+len(c.forward))
	for _, leaf := range c.leaves {
		if iv, ok := box[leaf]; ok {
			working[leaf] = iv
		} else {
			working[leaf] = Entire()
		}
	}

	// Forward pass: seed temporaries, then apply the target constraint.
	for _, step := range c.forward {
		if step.stmt.Kind == StatementNarrow {
			narrowed := working[step.stmt.Result].Intersect(step.stmt.Bound)
			if narrowed.IsEmpty() {
				return EmptyBox(c.leaves)
			}
			working[step.stmt.Result] = narrowed
			continue
		}
		working[step.stmt.Result] = step.eval(readOperand(step.stmt.Left, working), readOperand(step.stmt.Right, working))
	}

	// Backward pass: contract each statement's triple, last statement first.
	for _, call := range c.reverse {
		if call.Kind == StatementNarrow {
			narrowed := working[call.Result].Intersect(call.Bound)
			if narrowed.IsEmpty() {
				return EmptyBox(c.leaves)
			}
			working[call.Result] = narrowed
			continue
		}
		v, a, b := call.contract(
			working[call.Result],
			readOperand(call.Left, working),
			readOperand(call.Right, working),
		)
		if v.IsEmpty() || a.IsEmpty() || b.IsEmpty() {
			return EmptyBox(c.leaves)
		}
		working[call.Result] = v
		writeOperand(call.Left, a, working)
		writeOperand(call.Right, b, working)
	}

	return c.restrict(working)
}

// restrict projects a box onto the contractor's leaf variables,
// dropping temporaries. Leaves missing from the source are unbounded.
func (c *Contractor) restrict(box Box) Box {
	out := make(Box, len(c.leaves))
	for _, leaf := range c.leaves {
		if iv, ok := box[leaf]; ok {
			out[leaf] = iv
		} else {
			out[leaf] = Entire()
		}
	}
	return out
}

// readOperand resolves an operand against the working box: constants
// read as point intervals.
func readOperand(o Operand, working Box) Interval {
	if o.Kind == OperandConst {
		return Point(o.Value)
	}
	return working[o.Name]
}

// writeOperand stores a contracted interval back into the working box.
// Constant operands are immutable; a contradiction on one is caught by
// the caller's emptiness check before this point.
func writeOperand(o Operand, iv Interval, working Box) {
	if o.Kind == OperandVar {
		working[o.Name] = iv
	}
}

// Expression returns the expression tree this contractor was built from.
func (c *Contractor) Expression() Expr {
	return c.expr
}

// Target returns the target interval the expression is constrained to.
func (c *Contractor) Target() Interval {
	return c.target
}

// Leaves returns the expression's leaf variable names in sorted order.
// The returned slice is a copy.
func (c *Contractor) Leaves() []string {
	out := make([]string, len(c.leaves))
	copy(out, c.leaves)
	return out
}

// Forward returns a copy of the compiled forward statement sequence,
// including the injected narrowing statement.
func (c *Contractor) Forward() []Statement {
	out := make([]Statement, len(c.forward))
	for i, step := range c.forward {
		out[i] = step.stmt
	}
	return out
}

// Reverse returns a copy of the compiled reverse program.
func (c *Contractor) Reverse() []ReverseCall {
	out := make([]ReverseCall, len(c.reverse))
	copy(out, c.reverse)
	return out
}

// String returns a human-readable summary of the contractor.
func (c *Contractor) String() string {
	return "Contractor{" + c.expr.String() + " ∈ " + c.target.String() + "}"
}
