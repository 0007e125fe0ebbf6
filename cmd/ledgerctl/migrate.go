package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledgr/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		applied, err := database.Migrate(cmd.Context(), db)
		if err != nil {
			return err
		}

		slog.Info("migrations applied", "count", applied)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
