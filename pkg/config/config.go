// Package config loads harness defaults from an aria.yaml config file and
// ARIA_* environment variables. Command-line flags take precedence and are
// applied by the CLI layer on top of what LoadConfig returns.
package config

import (
	"github.com/spf13/viper"

	"aria-go/pkg/appdir"
	"aria-go/pkg/benchmark"
)

type Config struct {
	Iterations  int    `mapstructure:"iterations"`
	KeySizeBits int    `mapstructure:"key_size_bits"`
	Seed        uint64 `mapstructure:"seed"`
	Output      string `mapstructure:"output"`
	LogDB       string `mapstructure:"log_db"`
}

func DefaultConfig() *Config {
	return &Config{
		Iterations:  1000000,
		KeySizeBits: 256,
		Seed:        benchmark.DefaultSeed,
	}
}

// LoadConfig merges, in order of precedence: environment variables
// (ARIA_ITERATIONS, ...), the first aria.yaml found in the working
// directory or ~/.aria-go, and the built-in defaults. A missing config
// file is not an error.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("aria")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(appdir.AppDir())
	v.SetEnvPrefix("ARIA")
	v.AutomaticEnv()

	// Register every key so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("iterations", cfg.Iterations)
	v.SetDefault("key_size_bits", cfg.KeySizeBits)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("log_db", cfg.LogDB)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
