package main

import (
	"github.com/spf13/cobra"

	"github.com/lukk-cs/attribo-backend/internal/db"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, closePool, err := openGateway(cmd.Context())
		if err != nil {
			return err
		}
		defer closePool()

		dir := cfg.MigrationsDir
		if migrationsDir != "" {
			dir = migrationsDir
		}
		return db.RunMigrations(cmd.Context(), gw, dir, logger)
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "", "migrations directory (default $MIGRATIONS_DIR)")
}
