package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rational/src/math/rational"
)

type binaryOp struct {
	name  string
	short string
	fn    func(a, b rational.Rational) rational.Rational
}

var binaryOps = []binaryOp{
	{"add", "Add two fractions", rational.Rational.Add},
	{"sub", "Subtract the second fraction from the first", rational.Rational.Sub},
	{"mul", "Multiply two fractions", rational.Rational.Mul},
	{"div", "Divide the first fraction by the second", rational.Rational.Div},
	{"mod", "Remainder of a truncating division", rational.Rational.Mod},
}

func (a *app) newBinaryCmd(op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s N1 D1 N2 D2", op.name),
		Short: op.short,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFraction(args[0], args[1])
			if err != nil {
				return err
			}
			y, err := parseFraction(args[2], args[3])
			if err != nil {
				return err
			}

			var r rational.Rational
			if err := rational.Try(func() { r = op.fn(x, y) }); err != nil {
				a.logger.Error().Err(err).Str("op", op.name).Object("a", x).Object("b", y).Msg("failed")
				return err
			}
			a.logger.Debug().Str("op", op.name).Object("a", x).Object("b", y).Object("result", r).Msg("evaluated")
			return a.print(cmd, r)
		},
	}
}
