package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.GenerationDelay)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.InitialWait)
	assert.Equal(t, 10*time.Second, cfg.Retry.MaxWait)
	assert.Equal(t, 2.0, cfg.Retry.Multiplier)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SkipWelcome)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LEARNYST_GENERATION_DELAY", "250ms")
	t.Setenv("LEARNYST_GENERATION_TIMEOUT", "5s")
	t.Setenv("LEARNYST_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("LEARNYST_RETRY_MULTIPLIER", "1.5")
	t.Setenv("LEARNYST_LOG_FILE", "/tmp/learnyst.log")
	t.Setenv("LEARNYST_LOG_LEVEL", "debug")
	t.Setenv("LEARNYST_SKIP_WELCOME", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.GenerationDelay)
	assert.Equal(t, 5*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 1.5, cfg.Retry.Multiplier)
	assert.Equal(t, "/tmp/learnyst.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.SkipWelcome)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "LEARNYST_GENERATION_DELAY", "soon"},
		{"negative delay", "LEARNYST_GENERATION_DELAY", "-1s"},
		{"zero attempts", "LEARNYST_RETRY_MAX_ATTEMPTS", "0"},
		{"shrinking backoff", "LEARNYST_RETRY_MULTIPLIER", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LEARNYST_GENERATION_DELAY=0s\n"), 0o600))

	// godotenv does not override variables that are already set, so make
	// sure the key starts out unset and is cleaned up afterwards.
	t.Setenv("LEARNYST_GENERATION_DELAY", "")
	require.NoError(t, os.Unsetenv("LEARNYST_GENERATION_DELAY"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.GenerationDelay)
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("")
	assert.NoError(t, err)
}

func TestLoad_MissingNamedFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGeneration(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	g := cfg.Generation()
	assert.Equal(t, cfg.GenerationDelay, g.Delay)
	assert.Equal(t, cfg.GenerationTimeout, g.Timeout)
	assert.Equal(t, cfg.Retry.MaxAttempts, g.Retry.MaxAttempts)
	assert.Equal(t, cfg.Retry.MaxWait, g.Retry.MaxWait)
}
