package cmd

import (
	"github.com/chxlky/taskboard-api/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Init(cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		zap.L().Info("Migration completed successfully")
		return nil
	},
}
