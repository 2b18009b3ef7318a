package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lukk-cs/attribo-backend/internal/config"
	"github.com/lukk-cs/attribo-backend/internal/db"
)

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "attribo-admin",
	Short: "Operator commands for the attribo backend",
	Long: `attribo-admin runs one-off operator tasks against the attribo database:
applying migrations and creating creator accounts.

Connection settings come from the same environment (and .env file) as the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger, err = zc.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if cfg, err = config.Load(); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(migrateCmd, userCmd)
}

// openGateway connects to Postgres; the returned func closes the pool.
func openGateway(ctx context.Context) (*db.Gateway, func(), error) {
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, db.DefaultPoolConfig(), logger)
	if err != nil {
		return nil, nil, err
	}
	return db.NewGateway(pool, logger), pool.Close, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
