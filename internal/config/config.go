// Package config provides configuration management for countdown.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "COUNTDOWN"

// Banner kinds.
const (
	BannerPlain  = "plain"
	BannerBlock  = "block"
	BannerFiglet = "figlet"
)

// keys lists every configuration key; flags are named after them with
// dashes in place of underscores.
var keys = []string{"no_bell", "notify", "banner", "paused_color", "frame", "log_file"}

// Config holds all configuration for a countdown run.
type Config struct {
	NoBell        bool          `mapstructure:"no_bell"`
	Notify        bool          `mapstructure:"notify"`
	Banner        string        `mapstructure:"banner"`
	PausedColor   string        `mapstructure:"paused_color"`
	FrameInterval time.Duration `mapstructure:"frame"`
	LogFile       string        `mapstructure:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		NoBell:        false,
		Notify:        false,
		Banner:        BannerPlain,
		PausedColor:   "2",
		FrameInterval: 16 * time.Millisecond,
	}
}

// Load builds the configuration from defaults, COUNTDOWN_* environment
// variables and the given flags, in increasing order of precedence. Flag
// names are mapped to keys by replacing dashes with underscores.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for _, key := range keys {
			f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", f.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Banner {
	case BannerPlain, BannerBlock, BannerFiglet:
	default:
		return fmt.Errorf("invalid banner %q: must be one of %s, %s, %s", c.Banner, BannerPlain, BannerBlock, BannerFiglet)
	}

	if c.FrameInterval <= 0 {
		return fmt.Errorf("invalid frame interval %v: must be positive", c.FrameInterval)
	}

	return nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("no_bell", defaults.NoBell)
	v.SetDefault("notify", defaults.Notify)
	v.SetDefault("banner", defaults.Banner)
	v.SetDefault("paused_color", defaults.PausedColor)
	v.SetDefault("frame", defaults.FrameInterval.String())
	v.SetDefault("log_file", defaults.LogFile)
}
