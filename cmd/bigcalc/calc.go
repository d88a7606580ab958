package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yex33/bigint/bigint"
)

type binaryOp func(z, x, y *bigint.Int) *bigint.Int

func newAddCmd() *cobra.Command {
	return newBinaryCmd("add a b", "Print the exact sum a + b",
		func(z, x, y *bigint.Int) *bigint.Int { return z.Add(x, y) })
}

func newSubCmd() *cobra.Command {
	return newBinaryCmd("sub a b", "Print the exact difference a - b",
		func(z, x, y *bigint.Int) *bigint.Int { return z.Sub(x, y) })
}

func newMulCmd() *cobra.Command {
	return newBinaryCmd("mul a b", "Print the exact product a * b",
		func(z, x, y *bigint.Int) *bigint.Int { return z.Mul(x, y) })
}

func newBinaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, x, y, err := binaryOperands(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), op(new(bigint.Int), x, y).Text(base))
			return nil
		},
	}
}

func newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp a b",
		Short: "Print -1, 0 or 1 as a is less than, equal to or greater than b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, x, y, err := binaryOperands(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x.Cmp(y))
			return nil
		},
	}
}

func newNegCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neg a",
		Short: "Print the negation of a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := operandBase(cmd)
			if err != nil {
				return err
			}
			x, err := parseOperand(args[0], base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), new(bigint.Int).Neg(x).Text(base))
			return nil
		},
	}
}

func binaryOperands(cmd *cobra.Command, args []string) (int, *bigint.Int, *bigint.Int, error) {
	base, err := operandBase(cmd)
	if err != nil {
		return 0, nil, nil, err
	}
	x, err := parseOperand(args[0], base)
	if err != nil {
		return 0, nil, nil, err
	}
	y, err := parseOperand(args[1], base)
	if err != nil {
		return 0, nil, nil, err
	}
	return base, x, y, nil
}

func operandBase(cmd *cobra.Command) (int, error) {
	base, err := cmd.Root().PersistentFlags().GetInt("base")
	if err != nil {
		return 0, fmt.Errorf("failed to get base flag: %w", err)
	}
	return base, nil
}

func parseOperand(s string, base int) (*bigint.Int, error) {
	v, err := bigint.NewFromString(s, base)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", s, err)
	}
	return v, nil
}
