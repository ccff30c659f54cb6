package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"rational/src/math/rational"
)

func (a *app) newFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float VALUE",
		Short: "Convert a float64 into a fraction (may lose precision)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			r, err := rational.TryFromFloat64(f)
			if err != nil {
				return err
			}
			a.logger.Debug().Float64("float", f).Object("rational", r).Msg("converted")
			return a.print(cmd, r)
		},
	}
}

func (a *app) newFloat32Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float32 VALUE",
		Short: "Convert a float32 into a fraction (may lose precision)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return err
			}
			r, err := rational.TryFromFloat32(float32(f))
			if err != nil {
				return err
			}
			a.logger.Debug().Float32("float", float32(f)).Object("rational", r).Msg("converted")
			return a.print(cmd, r)
		},
	}
}

func (a *app) newDecimalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decimal VALUE",
		Short: "Convert a decimal literal into a fraction exactly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("decimal %q: %w", args[0], err)
			}
			r, err := rational.FromDecimal(d)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("decimal", d.String()).Object("rational", r).Msg("converted")
			return a.print(cmd, r)
		},
	}
}
