// Package contractor provides interval constraint contraction.
// This file implements the forward unfolder: flattening an expression
// tree into a sequence of single-operation assignment statements over
// fresh temporaries, plus the constraint injector that appends the
// target-interval narrowing statement.
package contractor

import "fmt"

// OperandKind distinguishes the two kinds of statement operand.
type OperandKind int

const (
	// OperandVar references a variable: an original leaf or an earlier
	// statement's temporary.
	OperandVar OperandKind = iota
	// OperandConst is a numeric literal carried through from a Leaf.
	OperandConst
)

// Operand is a statement argument: a variable reference or a constant.
// Constants evaluate as point intervals and are never narrowed by the
// reverse pass; a contradiction on a constant empties the whole box.
type Operand struct {
	Kind  OperandKind
	Name  string  // valid when Kind == OperandVar
	Value float64 // valid when Kind == OperandConst
}

// VarOperand creates an operand referencing the named variable.
func VarOperand(name string) Operand {
	return Operand{Kind: OperandVar, Name: name}
}

// ConstOperand creates a numeric-literal operand.
func ConstOperand(v float64) Operand {
	return Operand{Kind: OperandConst, Value: v}
}

// IsVar reports whether the operand references a variable.
func (o Operand) IsVar() bool {
	return o.Kind == OperandVar
}

// String returns the variable name or the literal value.
func (o Operand) String() string {
	if o.Kind == OperandConst {
		return fmt.Sprintf("%g", o.Value)
	}
	return o.Name
}

// StatementKind distinguishes the two statement forms in a forward
// program.
type StatementKind int

const (
	// StatementApply computes Result = Op(Left, Right).
	StatementApply StatementKind = iota
	// StatementNarrow intersects Result with Bound. Exactly one such
	// statement exists per program: the injected target constraint,
	// always last in forward order.
	StatementNarrow
)

// Statement is one step of a forward program. Ordering is significant:
// every operand is either an original leaf variable or the result of an
// earlier statement (the data-dependency invariant the unfolder
// maintains by emitting children before parents).
type Statement struct {
	Kind   StatementKind
	Result string
	Op     Operator // valid when Kind == StatementApply
	Left   Operand  // valid when Kind == StatementApply
	Right  Operand  // valid when Kind == StatementApply
	Bound  Interval // valid when Kind == StatementNarrow
}

// String returns the statement in assignment notation.
func (s Statement) String() string {
	if s.Kind == StatementNarrow {
		return fmt.Sprintf("%s = %s ∩ %s", s.Result, s.Result, s.Bound)
	}
	return fmt.Sprintf("%s = %s %s %s", s.Result, s.Left, s.Op, s.Right)
}

// Unfold flattens an expression tree into an ordered sequence of
// single-operation statements, returning the operand holding the final
// result. Temporary names come from gen, one per Call node, so a tree
// with n Call nodes yields exactly n statements.
//
// Traversal is deterministic: a Call's left child is fully unfolded
// before its right child, and the Call's own statement is appended last.
// A bare Leaf unfolds to its operand and no statements.
//
// Returns a MalformedExpressionError for nil nodes or Expr
// implementations other than *Leaf and *Call.
func Unfold(expr Expr, gen *SymbolGenerator) (Operand, []Statement, error) {
	if gen == nil {
		gen = NewSymbolGenerator("t")
	}
	return unfold(expr, gen, nil)
}

func unfold(expr Expr, gen *SymbolGenerator, statements []Statement) (Operand, []Statement, error) {
	switch node := expr.(type) {
	case *Leaf:
		switch node.Kind {
		case LeafVar:
			return VarOperand(node.Name), statements, nil
		case LeafConst:
			return ConstOperand(node.Value), statements, nil
		default:
			return Operand{}, nil, malformedf("unknown leaf kind %d", int(node.Kind))
		}
	case *Call:
		if node.Left == nil || node.Right == nil {
			return Operand{}, nil, malformedf("call %s has a nil child", node.Op)
		}
		left, statements, err := unfold(node.Left, gen, statements)
		if err != nil {
			return Operand{}, nil, err
		}
		right, statements, err := unfold(node.Right, gen, statements)
		if err != nil {
			return Operand{}, nil, err
		}
		result := gen.Next()
		statements = append(statements, Statement{
			Kind:   StatementApply,
			Result: result,
			Op:     node.Op,
			Left:   left,
			Right:  right,
		})
		return VarOperand(result), statements, nil
	case nil:
		return Operand{}, nil, malformedf("nil expression node")
	default:
		return Operand{}, nil, malformedf("unknown expression node type %T", expr)
	}
}

// Constrain appends the single narrowing statement
// "result = result ∩ target" to the statement sequence. Earlier
// statements are not altered. The result operand must reference a
// variable; constant-rooted expressions are handled by the contractor
// directly and never reach this injector.
func Constrain(statements []Statement, result Operand, target Interval) []Statement {
	return append(statements, Statement{
		Kind:   StatementNarrow,
		Result: result.Name,
		Bound:  target,
	})
}
