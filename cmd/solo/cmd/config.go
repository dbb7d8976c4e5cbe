package cmd

import (
	"github.com/oneconcern/solo/pkg/dlogger"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
//
// Values from the config file or environment (SOLO_LOGLEVEL, SOLO_FORMAT, SOLO_INPUT)
// apply whenever the corresponding flag is not set.
type CLIConfig struct {
	LogLevel string `json:"loglevel" yaml:"loglevel" mapstructure:"loglevel"`
	Format   string `json:"format" yaml:"format" mapstructure:"format"`
	Input    string `json:"input" yaml:"input" mapstructure:"input"`
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	return &config, nil
}

func (c *CLIConfig) setParams(flags *paramsT) {
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = dlogger.LogLevelWarn
	}
	if flags.sort.format == "" {
		flags.sort.format = c.Format
	}
	if flags.sort.input == "" {
		flags.sort.input = c.Input
	}
}
