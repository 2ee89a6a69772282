package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the run configuration. Precedence: flags > A2C_* environment
// variables > config file > defaults.
type Config struct {
	SwapSign  bool   `mapstructure:"swap_sign"`
	LogLevel  string `mapstructure:"log_level"`
	Extension string `mapstructure:"extension"`
}

// Build loads the configuration. cfgFile may be empty, in which case an
// optional config.yaml in the working directory is used. flags may be nil.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// A local .env is picked up before viper reads the environment.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("swap_sign", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("extension", ".pdf")

	v.SetEnvPrefix("a2c")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// The default config file is optional.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Bound flags only take precedence when set on the command line; their
	// defaults rank below env and config file values.
	if flags != nil {
		flags.VisitAll(func(f *pflag.Flag) {
			_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
