package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.Scores)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.JSON)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("MAILCHECK_LOG_LEVEL", "debug")
	t.Setenv("MAILCHECK_WORKERS", "7")
	t.Setenv("MAILCHECK_JSON", "true")
	t.Setenv("MAILCHECK_SCORES", "scores.yaml")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7, cfg.Workers)
	assert.True(t, cfg.JSON)
	assert.Equal(t, "scores.yaml", cfg.Scores)
}

func TestLoadConfigFlagsBeatEnv(t *testing.T) {
	t.Setenv("MAILCHECK_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Int("workers", 1, "")
	require.NoError(t, flags.Set("log-level", "debug"))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)

	// The flag that was set wins; the one left alone does not mask the
	// defaults.
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Workers)
}
