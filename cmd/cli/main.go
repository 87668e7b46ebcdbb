package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/cmd/cli/commands"
	"github.com/ojbennett/fpl-squad-picker/internal/config"
	"github.com/ojbennett/fpl-squad-picker/pkg/clients/fixturesclient"
	"github.com/ojbennett/fpl-squad-picker/pkg/predictions"
	"github.com/ojbennett/fpl-squad-picker/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "FPL Squad Picker - Select the best squad from gameweek predictions",
		Long:  `A CLI tool for picking a budget-constrained FPL squad from an external model's score predictions.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.SelectTeamCmd(appContext()))
	rootCmd.AddCommand(commands.TopPlayersCmd(appContext()))
	rootCmd.AddCommand(commands.FixturesCmd(appContext()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appContext returns the shared AppContext, allocated before initApp runs
// so commands can capture it at registration time
func appContext() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{Ctx: context.Background()}
	}
	return app
}

// initApp sets up logger, config, prediction source and fixtures client
func initApp() error {
	ctx := appContext()

	var err error
	ctx.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	ctx.Logger.Info("Loading configuration")
	ctx.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx.Logger.Debug("Configuration loaded successfully")

	// Prediction source reads the CSV the scoring pipeline writes
	ctx.Source = predictions.NewCSVSource(ctx.Cfg.PredictionsPath)
	ctx.Logger.Debug("Prediction source initialized",
		zap.String("path", ctx.Cfg.PredictionsPath))

	// Fixtures client for match-schedule lookups
	ctx.FixturesClient = fixturesclient.NewClient(
		ctx.Cfg.APIConfig.URL,
		config.APIKey(),
		ctx.Cfg.TeamNameMapping,
	)
	ctx.Logger.Debug("Fixtures client initialized",
		zap.String("base_url", ctx.Cfg.APIConfig.URL))

	return nil
}
