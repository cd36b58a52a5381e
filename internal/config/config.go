// Package config loads settings for the evictkv command from flags,
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. EVICTKV_CAPACITY.
const EnvPrefix = "EVICTKV"

// ErrInvalid is returned when a loaded setting fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the store and logging settings.
type Config struct {
	Capacity int       `mapstructure:"capacity"`
	Strict   bool      `mapstructure:"strict"`
	Log      LogConfig `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing else is set:
// an unbounded store and info-level console logs.
func Default() Config {
	return Config{
		Capacity: 0,
		Strict:   false,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration. Precedence, highest first: flags that were
// set explicitly, environment, config file, defaults. An empty file path
// searches the working directory for evictkv.{toml,yaml,json}; a missing
// file is not an error in that case.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("capacity", d.Capacity)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"capacity":   "capacity",
			"strict":     "strict",
			"log.level":  "log-level",
			"log.format": "log-format",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("evictkv")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the store cannot use.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative, got %d", ErrInvalid, c.Capacity)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
