package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gonarrow/pkg/contractor"
)

func init() {
	var (
		precision float64
		maxBoxes  int
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "pave PROBLEM_FILE",
		Short: "Cover a constraint's solution set with small boxes",
		Long: `Pave runs branch-and-prune over the problem's starting box:
each box is contracted, discarded when inconsistent, accepted when
its widest side is below the precision, and bisected otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, box, err := loadProblem(args[0])
			if err != nil {
				return err
			}

			paver, err := contractor.NewPaver(c, &contractor.PaverConfig{
				Precision: precision,
				MaxBoxes:  maxBoxes,
				Workers:   workers,
			})
			if err != nil {
				return err
			}

			boxes, err := paver.Pave(cmd.Context(), box)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "boxes: %d\n", len(boxes))
			for _, b := range boxes {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&precision, "precision", contractor.DefaultPaverConfig().Precision, "widest side an accepted box may have")
	cmd.Flags().IntVar(&maxBoxes, "max-boxes", contractor.DefaultPaverConfig().MaxBoxes, "cap on the number of boxes in the paving")
	cmd.Flags().IntVar(&workers, "workers", 0, "contraction workers (0 = one per CPU core)")

	argparser.AddCommand(cmd)
}
