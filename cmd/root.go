package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnyst/learnyst/internal/config"
	"github.com/learnyst/learnyst/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "learnyst",
	Short: "AI learning dashboard",
	Long:  "Learnyst AI turns a syllabus into a structured learning path and tracks progress across subjects.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Path to a dotenv file (default .env)")
	rootCmd.PersistentFlags().Duration("delay", 0, "Simulated learning path latency (overrides LEARNYST_GENERATION_DELAY)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Learning path request timeout (overrides LEARNYST_GENERATION_TIMEOUT)")
	rootCmd.Flags().Bool("skip-welcome", false, "Open the dashboard directly")

	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the dotenv file and environment, then applies flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("delay") {
		cfg.GenerationDelay, _ = cmd.Flags().GetDuration("delay")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.GenerationTimeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if f := cmd.Flags().Lookup("skip-welcome"); f != nil && f.Changed {
		cfg.SkipWelcome, _ = cmd.Flags().GetBool("skip-welcome")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
