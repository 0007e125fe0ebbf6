package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledgr/internal/app"
	"github.com/MrJamesThe3rd/ledgr/internal/config"
	"github.com/MrJamesThe3rd/ledgr/internal/database"
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Administer the ledgr accounting engine",
	Long: `ledgerctl runs maintenance and period-end jobs against the ledgr database.

It reads the same environment as the API server (DB_*, PERIOD_*), and also
loads a .env file from the working directory when one exists.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().String("tenant", "", "Tenant ID the command runs for")
}

// env is an open database with the services built over it.
type env struct {
	cfg      *config.Config
	db       *sql.DB
	services *app.Services
}

func (e *env) Close() {
	e.db.Close()
}

// openDB connects to Postgres. The memory driver is refused: nothing a
// command writes there would outlive the process.
func openDB() (*config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.DB.Driver != config.DriverPostgres {
		return nil, nil, fmt.Errorf("ledgerctl needs DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.DB.Driver)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

func openEnv() (*env, error) {
	cfg, db, err := openDB()
	if err != nil {
		return nil, err
	}

	periodCfg, err := cfg.PeriodConfig()
	if err != nil {
		db.Close()
		return nil, err
	}

	return &env{
		cfg:      cfg,
		db:       db,
		services: app.New(app.Postgres(db), periodCfg, nil, slog.Default()),
	}, nil
}

func tenantFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("tenant")
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--tenant is required")
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("--tenant must be a tenant UUID, got %q", raw)
	}

	return id, nil
}

// withTenant opens the environment and runs fn for the --tenant flag.
func withTenant(cmd *cobra.Command, fn func(ctx context.Context, e *env, tenantID uuid.UUID) error) error {
	tenantID, err := tenantFlag(cmd)
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	return fn(cmd.Context(), e, tenantID)
}
