package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errColor.Fprintln(os.Stderr, "bigcalc:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Exact arbitrary-precision integer calculator",
		Long: `bigcalc evaluates exact integer arithmetic on operands of any size.
Negative operands must follow a "--" separator so they are not read as flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Int("base", 10, "numeric base for operands and results (2-36)")

	root.AddCommand(newAddCmd())
	root.AddCommand(newSubCmd())
	root.AddCommand(newMulCmd())
	root.AddCommand(newCmpCmd())
	root.AddCommand(newNegCmd())
	return root
}
