// Command gonarrow contracts and paves boxes against interval
// constraints described by a YAML problem file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var argparser = &cobra.Command{
	Use:   "gonarrow {[flags]|SUBCOMMAND...}",
	Short: "Forward-backward interval constraint contraction",

	SilenceErrors: true, // main() handles errors after ExecuteContext() returns
	SilenceUsage:  true,
}

func main() {
	ctx := context.Background()

	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(argparser.ErrOrStderr(), "%s: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
