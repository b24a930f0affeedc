package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/gitrdm/gonarrow/pkg/contractor"
)

// problem is the YAML description of a contraction problem: a
// structured expression tree (not a text formula; trees are given,
// parsing is out of scope), a target interval, and the starting box.
//
//	expression:
//	  op: add
//	  left: {op: pow, left: {var: x}, right: {const: 2}}
//	  right: {op: pow, left: {var: y}, right: {const: 2}}
//	target: [0, 1]
//	box:
//	  x: [-2, 2]
//	  y: [-2, 2]
type problem struct {
	Expression *exprNode            `yaml:"expression"`
	Target     []float64            `yaml:"target"`
	Box        map[string][]float64 `yaml:"box"`
}

// exprNode is one YAML expression-tree node: exactly one of Var, Const,
// or Op (with Left and Right) must be set.
type exprNode struct {
	Var   string    `yaml:"var,omitempty"`
	Const *float64  `yaml:"const,omitempty"`
	Op    string    `yaml:"op,omitempty"`
	Left  *exprNode `yaml:"left,omitempty"`
	Right *exprNode `yaml:"right,omitempty"`
}

// loadProblem reads and validates a YAML problem file, returning the
// built contractor and the starting box.
func loadProblem(path string) (*contractor.Contractor, contractor.Box, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var p problem
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if p.Expression == nil {
		return nil, nil, fmt.Errorf("%s: missing expression", path)
	}
	expr, err := p.Expression.build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	target, err := toInterval(p.Target)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: target: %w", path, err)
	}

	box := contractor.NewBox()
	for name, bounds := range p.Box {
		iv, err := toInterval(bounds)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: box variable %s: %w", path, name, err)
		}
		box[name] = iv
	}

	c, err := contractor.Build(expr, target)
	if err != nil {
		return nil, nil, err
	}
	return c, box, nil
}

// build converts a YAML node into an expression tree.
func (n *exprNode) build() (contractor.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("missing expression node")
	}
	switch {
	case n.Var != "":
		return contractor.Var(n.Var), nil
	case n.Const != nil:
		return contractor.Const(*n.Const), nil
	case n.Op != "":
		op, err := parseOperator(n.Op)
		if err != nil {
			return nil, err
		}
		left, err := n.Left.build()
		if err != nil {
			return nil, err
		}
		right, err := n.Right.build()
		if err != nil {
			return nil, err
		}
		return &contractor.Call{Op: op, Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("expression node needs one of var, const, or op")
	}
}

// parseOperator maps YAML operator names to Operator values. Both the
// word form ("add") and the symbol form ("+") are accepted.
func parseOperator(name string) (contractor.Operator, error) {
	switch name {
	case "add", "+":
		return contractor.OpAdd, nil
	case "sub", "-":
		return contractor.OpSub, nil
	case "mul", "*":
		return contractor.OpMul, nil
	case "div", "/":
		return contractor.OpDiv, nil
	case "pow", "^":
		return contractor.OpPow, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", name)
	}
}

// toInterval converts a YAML bounds pair [lo, hi] (or singleton [v])
// into an interval.
func toInterval(bounds []float64) (contractor.Interval, error) {
	switch len(bounds) {
	case 1:
		return contractor.Point(bounds[0]), nil
	case 2:
		return contractor.NewInterval(bounds[0], bounds[1])
	default:
		return contractor.Interval{}, fmt.Errorf("expected [lo, hi], got %v", bounds)
	}
}
