// Package contractor provides interval constraint contraction.
// This file defines the expression tree consumed by the forward unfolder:
// a tagged variant with exactly two node kinds, Leaf and Call.
package contractor

import (
	"fmt"
	"sort"
)

// Operator enumerates the binary operators the pipeline understands.
// Every Operator a tree may contain must have forward and reverse
// functions registered in the operation table (see registry.go);
// Build rejects trees using anything else.
type Operator int

const (
	// OpAdd is addition: v = a + b.
	OpAdd Operator = iota
	// OpSub is subtraction: v = a - b.
	OpSub
	// OpMul is multiplication: v = a * b.
	OpMul
	// OpDiv is division: v = a / b.
	OpDiv
	// OpPow is integer power: v = a ^ n, with n a constant integer.
	OpPow
)

// String returns the operator's conventional symbol.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Expr is an immutable arithmetic expression tree. The interface is
// sealed: the only implementations are *Leaf and *Call, and consumers
// switch exhaustively over those two cases.
type Expr interface {
	exprNode()

	// String returns the expression in infix notation.
	String() string
}

// LeafKind distinguishes the two kinds of leaf node.
type LeafKind int

const (
	// LeafVar is a named input variable.
	LeafVar LeafKind = iota
	// LeafConst is a numeric literal.
	LeafConst
)

// Leaf is a terminal expression node: a named variable or a numeric
// constant, tagged by Kind.
type Leaf struct {
	Kind  LeafKind
	Name  string  // valid when Kind == LeafVar
	Value float64 // valid when Kind == LeafConst
}

func (*Leaf) exprNode() {}

// String returns the variable name or the literal value.
func (l *Leaf) String() string {
	if l.Kind == LeafConst {
		return fmt.Sprintf("%g", l.Value)
	}
	return l.Name
}

// Call is a binary operator application over two child expressions.
// This core supports binary operators only; unary negation is expressed
// as subtraction from zero and constants fold into Leaf nodes.
type Call struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (*Call) exprNode() {}

// String returns the call in fully parenthesized infix notation.
func (c *Call) String() string {
	left, right := "?", "?"
	if c.Left != nil {
		left = c.Left.String()
	}
	if c.Right != nil {
		right = c.Right.String()
	}
	return fmt.Sprintf("(%s %s %s)", left, c.Op, right)
}

// Var creates a variable leaf.
func Var(name string) *Leaf {
	return &Leaf{Kind: LeafVar, Name: name}
}

// Const creates a numeric-literal leaf.
func Const(v float64) *Leaf {
	return &Leaf{Kind: LeafConst, Value: v}
}

// Add creates the expression l + r.
func Add(l, r Expr) *Call {
	return &Call{Op: OpAdd, Left: l, Right: r}
}

// Sub creates the expression l - r.
func Sub(l, r Expr) *Call {
	return &Call{Op: OpSub, Left: l, Right: r}
}

// Mul creates the expression l * r.
func Mul(l, r Expr) *Call {
	return &Call{Op: OpMul, Left: l, Right: r}
}

// Div creates the expression l / r.
func Div(l, r Expr) *Call {
	return &Call{Op: OpDiv, Left: l, Right: r}
}

// Pow creates the expression base ^ n for a constant integer exponent.
func Pow(base Expr, n int) *Call {
	return &Call{Op: OpPow, Left: base, Right: Const(float64(n))}
}

// Variables returns the distinct variable names appearing in the
// expression, in sorted order. Unknown node kinds are ignored here; the
// unfolder is responsible for rejecting them.
func Variables(expr Expr) []string {
	seen := make(map[string]bool)
	collectVariables(expr, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(expr Expr, seen map[string]bool) {
	switch node := expr.(type) {
	case *Leaf:
		if node.Kind == LeafVar {
			seen[node.Name] = true
		}
	case *Call:
		collectVariables(node.Left, seen)
		collectVariables(node.Right, seen)
	}
}
