// Package contractor provides forward-backward interval constraint
// propagation for arithmetic expressions.
//
// Version: 0.1.0
//
// Given an arithmetic expression over real variables and a target interval
// for its value, the package builds a Contractor: a reusable procedure that
// narrows a box (a mapping from variable names to intervals) to a sub-box
// containing every point still consistent with the constraint. Contraction
// never discards a consistent point and never widens an interval.
//
// The pipeline has three build-time stages:
//
//  1. Forward unfolding: the expression tree is flattened into a sequence
//     of single-operation assignments over fresh temporary variables
//     (x^2 + y^2 becomes t1 = x^2; t2 = y^2; t3 = t1 + t2).
//  2. Constraint injection: one narrowing statement intersecting the final
//     result with the target interval is appended.
//  3. Backward compilation: the statement list is walked in reverse order
//     and each forward operation is paired with its registered reverse
//     (contracting) operator, producing the reverse program.
//
// All structural errors (malformed trees, operators without a registered
// reverse) surface at Build time. Apply never fails: an inconsistent box is
// reported as an empty box, which is a first-class result, not an error.
//
// Example:
//
//	c, err := contractor.Build(
//	    contractor.Add(
//	        contractor.Pow(contractor.Var("x"), 2),
//	        contractor.Pow(contractor.Var("y"), 2),
//	    ),
//	    contractor.Interval{Lo: 0, Hi: 1},
//	)
//	if err != nil {
//	    panic(err)
//	}
//	box := contractor.Box{
//	    "x": {Lo: -2, Hi: 2},
//	    "y": {Lo: -2, Hi: 2},
//	}
//	narrowed := c.Apply(box) // x ∈ [-1,1], y ∈ [-1,1]
package contractor

// Version is the current version of the gonarrow contraction library.
const Version = "0.1.0"

// VersionInfo provides detailed version information.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: "1.25+",
	}
}
