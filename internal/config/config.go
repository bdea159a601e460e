package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/learnyst/learnyst/internal/learnpath"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LEARNYST_"

// Config holds all application configuration.
type Config struct {
	// Generation settings
	GenerationDelay   time.Duration `env:"GENERATION_DELAY" envDefault:"2s"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"30s"`

	Retry RetryConfig `envPrefix:"RETRY_"`

	// Logging goes to a file because the TUI owns the terminal.
	// Empty disables logging.
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SkipWelcome opens the dashboard directly.
	SkipWelcome bool `env:"SKIP_WELCOME" envDefault:"false"`
}

// RetryConfig holds retry settings for learning path requests.
type RetryConfig struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"INITIAL_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"MULTIPLIER" envDefault:"2.0"`
}

// DefaultEnvFile is read when no dotenv file is named.
const DefaultEnvFile = ".env"

// Load reads a dotenv file and then parses the environment. An empty
// envFile reads DefaultEnvFile if it exists; a named file must exist.
func Load(envFile string) (Config, error) {
	optional := envFile == ""
	if optional {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv parses the environment into a Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.GenerationDelay < 0 {
		return fmt.Errorf("%sGENERATION_DELAY must not be negative", EnvPrefix)
	}
	if c.GenerationTimeout < 0 {
		return fmt.Errorf("%sGENERATION_TIMEOUT must not be negative", EnvPrefix)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%sRETRY_MAX_ATTEMPTS must be at least 1", EnvPrefix)
	}
	if c.Retry.Multiplier < 1 {
		return fmt.Errorf("%sRETRY_MULTIPLIER must be at least 1", EnvPrefix)
	}
	return nil
}

// Generation converts the settings for the learnpath package.
func (c Config) Generation() learnpath.Config {
	return learnpath.Config{
		Delay:   c.GenerationDelay,
		Timeout: c.GenerationTimeout,
		Retry: learnpath.RetryConfig{
			MaxAttempts: c.Retry.MaxAttempts,
			InitialWait: c.Retry.InitialWait,
			MaxWait:     c.Retry.MaxWait,
			Multiplier:  c.Retry.Multiplier,
		},
	}
}
