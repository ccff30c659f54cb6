package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rational/src/math/rational"
)

// app holds what PersistentPreRunE resolves for the subcommands.
type app struct {
	config Config
	logger zerolog.Logger
}

// NewRootCmd builds the ratcalc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{config: DefaultConfig(), logger: zerolog.Nop()}
	defaults := DefaultConfig()

	cmd := &cobra.Command{
		Use:          "ratcalc",
		Short:        "Exact arithmetic on int64 fractions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), conf.LogLevel)
			if err != nil {
				return err
			}
			a.config, a.logger = conf, logger
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (toml, yaml or json)")
	flags.String(flagOutput, defaults.Output, "output format: text or json")
	flags.String(flagLogLevel, defaults.LogLevel, "log level")
	flags.Int32(flagPlaces, defaults.Places, "decimal places in json output")

	cmd.AddCommand(
		a.newNewCmd(),
		a.newFloatCmd(),
		a.newFloat32Cmd(),
		a.newDecimalCmd(),
		a.newCmpCmd(),
		a.newHashCmd(),
		newVersionCmd(),
	)
	for _, op := range binaryOps {
		cmd.AddCommand(a.newBinaryCmd(op))
	}
	return cmd
}

type result struct {
	Rational rational.Rational `json:"rational"`
	Text     string            `json:"text"`
	Float    float64           `json:"float"`
	Decimal  string            `json:"decimal"`
}

func (a *app) print(cmd *cobra.Command, r rational.Rational) error {
	out := cmd.OutOrStdout()
	if a.config.Output != outputJSON {
		_, err := fmt.Fprintln(out, r)
		return err
	}

	b, err := json.Marshal(result{
		Rational: r,
		Text:     r.String(),
		Float:    r.Float64(),
		Decimal:  r.Decimal(a.config.Places).String(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

func parseFraction(num, den string) (rational.Rational, error) {
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("numerator %q: %w", num, err)
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("denominator %q: %w", den, err)
	}
	return rational.TryNew(n, d)
}
