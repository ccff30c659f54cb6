package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new NUMERATOR DENOMINATOR",
		Short: "Reduce a fraction to lowest terms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseFraction(args[0], args[1])
			if err != nil {
				return err
			}
			a.logger.Debug().Object("rational", r).Msg("reduced")
			return a.print(cmd, r)
		},
	}
}

func (a *app) newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp N1 D1 N2 D2",
		Short: "Print -1, 0 or 1 as N1/D1 is less than, equal to or greater than N2/D2",
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
			c := x.Cmp(y)
			a.logger.Debug().Object("a", x).Object("b", y).Int("cmp", c).Msg("compared")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	}
}

func (a *app) newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash NUMERATOR DENOMINATOR",
		Short: "Print the hash of a fraction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseFraction(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", r.Hash())
			return err
		},
	}
}
