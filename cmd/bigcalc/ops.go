package main

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/integer"
)

type op struct {
	name  string
	short string
	fn    func(a, b integer.Int) (integer.Int, error)
}

var ops = []op{
	{"add", "Print A + B", func(a, b integer.Int) (integer.Int, error) { return a.Add(b), nil }},
	{"sub", "Print A - B", func(a, b integer.Int) (integer.Int, error) { return a.Sub(b), nil }},
	{"mul", "Print A * B", func(a, b integer.Int) (integer.Int, error) { return a.Mult(b), nil }},
	{"div", "Print A / B truncated toward zero", integer.Int.Div},
	{"rem", "Print the remainder of A / B (sign of A)", integer.Int.Rem},
	{"mod", "Print A modulo B (sign of B)", integer.Int.Mod},
	{"exp", "Print A raised to the power B", integer.Int.Exp},
	{"cmp", "Print -1, 0 or 1 as A is less than, equal to or greater than B", func(a, b integer.Int) (integer.Int, error) {
		return integer.New(int64(a.Cmp(b))), nil
	}},
}

func newOpCmd(a *app, o op) *cobra.Command {
	return &cobra.Command{
		Use:   o.name + " A B",
		Short: o.short,
		Long: o.short + `.

Separate negative operands from the command with --:

  bigcalc ` + o.name + ` -- -7 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := integer.Parse(args[0])
			if err != nil {
				return err
			}

			y, err := integer.Parse(args[1])
			if err != nil {
				return err
			}

			z, err := o.fn(x, y)
			if err != nil {
				return err
			}

			return a.out.Int(z)
		},
	}
}
