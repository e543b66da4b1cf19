// Package config holds runtime settings, layered viper-style: defaults,
// then an optional crossfill.yml, then CROSSFILL_* environment variables,
// then command-line flags.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v    *viper.Viper
	args []string
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("parallel", 0)
	v.SetDefault("batch", "")
	v.SetDefault("output", "")
	v.SetEnvPrefix("crossfill")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load parses flags and the optional config file. Positional arguments are
// kept for the caller (structure/words paths in one-shot mode).
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("crossfill", pflag.ContinueOnError)
	fs.Bool("debug", false, "enable debug logging")
	fs.String("batch", "", "batch manifest to run instead of a single puzzle")
	fs.Int("parallel", 0, "max concurrent batch fills (0 means one per CPU)")
	fs.String("output", "", "write the solution to this PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}

	c.v.SetConfigName("crossfill")
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// Set overrides a setting at runtime (the shell's `set` command).
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}
