package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gonarrow/pkg/contractor"
)

func init() {
	var (
		fixedPoint    bool
		maxIterations int
		tolerance     float64
	)

	cmd := &cobra.Command{
		Use:   "contract PROBLEM_FILE",
		Short: "Narrow a box against a constraint",
		Long: `Contract loads a YAML problem file (expression, target interval,
starting box), builds a contractor, and prints the narrowed box.
With --fixed-point the contractor is re-applied until no interval
moves by more than the tolerance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, box, err := loadProblem(args[0])
			if err != nil {
				return err
			}

			var result contractor.Box
			if fixedPoint {
				config := &contractor.FixedPointConfig{
					MaxIterations: maxIterations,
					Tolerance:     tolerance,
				}
				var iterations int
				result, iterations, err = c.FixedPoint(cmd.Context(), box, config)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "iterations: %d\n", iterations)
			} else {
				result = c.Apply(box)
			}

			if result.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "inconsistent: no values satisfy the constraint")
				return nil
			}
			for _, name := range result.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s ∈ %s\n", name, result[name])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fixedPoint, "fixed-point", false, "iterate contraction to a fixed point")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", contractor.DefaultFixedPointConfig().MaxIterations, "fixed-point iteration cap")
	cmd.Flags().Float64Var(&tolerance, "tolerance", contractor.DefaultFixedPointConfig().Tolerance, "endpoint movement treated as converged")

	argparser.AddCommand(cmd)
}
