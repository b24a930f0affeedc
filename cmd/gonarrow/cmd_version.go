package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gonarrow/pkg/contractor"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the gonarrow version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gonarrow %s\n", contractor.GetVersion())
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
