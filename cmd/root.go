package cmd

import (
	"fmt"
	"os"

	"github.com/chxlky/taskboard-api/internal/config"
	"github.com/chxlky/taskboard-api/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Board and task resource server",
	Long: `taskboard serves a JSON API for boards and the tasks that belong to them.

Examples:
  # Start the HTTP server using ./config.toml
  taskboard serve

  # Create or update the database schema and exit
  taskboard migrate --config /etc/taskboard/config.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command. Without a subcommand the server is started.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default ./config.toml)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}
