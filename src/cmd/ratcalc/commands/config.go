package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig   = "config"
	flagOutput   = "output"
	flagLogLevel = "log-level"
	flagPlaces   = "places"

	outputText = "text"
	outputJSON = "json"

	envPrefix = "RATCALC"
)

// Config is resolved from flags, RATCALC_* environment variables and an
// optional config file, in that order of precedence.
type Config struct {
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log-level"`
	Places   int32  `mapstructure:"places"`
}

func DefaultConfig() Config {
	return Config{
		Output:   outputText,
		LogLevel: "info",
		Places:   8,
	}
}

// ValidateBasic performs basic validation.
func (c Config) ValidateBasic() error {
	switch c.Output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Places < 0 {
		return errors.New("places can't be negative")
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}
	if file := v.GetString(flagConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	conf := DefaultConfig()
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := conf.ValidateBasic(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return conf, nil
}
