package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnyst/learnyst/internal/app"
	"github.com/learnyst/learnyst/internal/config"
	"github.com/learnyst/learnyst/internal/creation"
	"github.com/learnyst/learnyst/internal/learnpath"
	"github.com/learnyst/learnyst/internal/subject"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, creator := newWorkflow(cfg, logger)
	logger.Info("starting dashboard",
		zap.Int("subjects", store.Len()),
		zap.Duration("generation_delay", cfg.GenerationDelay),
	)

	if err := app.Run(app.Options{
		Store:       store,
		Creator:     creator,
		SkipWelcome: cfg.SkipWelcome,
	}); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// newWorkflow creates a seeded store and a creator wired to the
// configured learning path generator.
func newWorkflow(cfg config.Config, logger *zap.Logger) (*subject.Store, *creation.Creator) {
	store := subject.NewStore()
	store.Initialize()

	generator := learnpath.New(cfg.Generation(), logger)
	creator := creation.NewCreator(store, generator, creation.WithLogger(logger))
	return store, creator
}
