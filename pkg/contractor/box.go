// Package contractor provides interval constraint contraction.
// This file defines the Box: the mutable runtime state a contractor
// narrows, mapping variable names to intervals.
package contractor

import (
	"fmt"
	"sort"
	"strings"
)

// Box maps variable names to intervals, describing a hyper-rectangular
// region of variable-space. Boxes are owned by the caller: Apply works on
// a private copy and never mutates its argument.
//
// A box is inconsistent (empty) when any of its intervals is empty; an
// inconsistent box represents the empty region regardless of its other
// entries.
type Box map[string]Interval

// NewBox creates an empty (zero-variable) box.
func NewBox() Box {
	return make(Box)
}

// Clone returns an independent copy of the box.
func (b Box) Clone() Box {
	out := make(Box, len(b))
	for name, iv := range b {
		out[name] = iv
	}
	return out
}

// Get returns the interval for name and whether it is present.
func (b Box) Get(name string) (Interval, bool) {
	iv, ok := b[name]
	return iv, ok
}

// IsEmpty reports whether the box is inconsistent, i.e. whether any
// variable's interval is empty. A zero-variable box is not empty: it
// represents the unconstrained region.
func (b Box) IsEmpty() bool {
	for _, iv := range b {
		if iv.IsEmpty() {
			return true
		}
	}
	return false
}

// Equal reports whether two boxes bind the same variables to equal
// intervals.
func (b Box) Equal(other Box) bool {
	if len(b) != len(other) {
		return false
	}
	for name, iv := range b {
		o, ok := other[name]
		if !ok || !iv.Equal(o) {
			return false
		}
	}
	return true
}

// Names returns the box's variable names in sorted order.
func (b Box) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a human-readable representation with variables in
// sorted order, e.g. "{x: [-1, 1], y: [0, 2]}".
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range b.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", name, b[name])
	}
	sb.WriteString("}")
	return sb.String()
}

// EmptyBox returns a box binding every given name to the empty interval.
// This is the canonical inconsistent result: a contractor that detects a
// contradiction reports it by emptying every leaf variable.
func EmptyBox(names []string) Box {
	out := make(Box, len(names))
	for _, name := range names {
		out[name] = Empty()
	}
	return out
}
