package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config collects the settings shared by every mailcheck command.
type Config struct {
	// Env is the runtime environment, "dev" or "prod". It only affects how
	// logs are encoded.
	Env string `mapstructure:"env"`

	// LogLevel is the zap level name logs are filtered at.
	LogLevel string `mapstructure:"log_level"`

	// Scores names a YAML score table file to load. Empty means the
	// built-in table, which scores every domain the same.
	Scores string `mapstructure:"scores"`

	// Workers caps the goroutines a batch check may use. Values of one or
	// less keep batches serial.
	Workers int `mapstructure:"workers"`

	// JSON switches output from human-readable lines to JSON.
	JSON bool `mapstructure:"json"`
}

func configKeys() []string {
	return []string{"env", "log_level", "scores", "workers", "json"}
}

// LoadConfig merges settings for a command run. Precedence, highest first:
// explicitly set flags, MAILCHECK_* environment variables, an optional
// mailcheck.yaml in the working directory, and finally the built-in
// defaults. A .env file is honored if present, though real environment
// variables still win over it.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MAILCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, k := range configKeys() {
		_ = v.BindEnv(k)
	}

	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("scores", "")
	v.SetDefault("workers", 1)
	v.SetDefault("json", false)

	v.SetConfigName("mailcheck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read mailcheck.yaml: %w", err)
		}
	}

	// Flag names use dashes, config keys use underscores. Only flags the
	// user actually set are bound, so unset flags cannot mask the
	// environment or the config file.
	if flags != nil {
		flags.Visit(func(f *pflag.Flag) {
			_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return &cfg, nil
}
