package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledgr/internal/app"
	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/cache"
	"github.com/MrJamesThe3rd/ledgr/internal/config"
	"github.com/MrJamesThe3rd/ledgr/internal/database"
	"github.com/MrJamesThe3rd/ledgr/internal/store/memory"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("app", cfg.App.Name)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var backend app.Backend

	switch cfg.DB.Driver {
	case config.DriverMemory:
		slog.Warn("using in-memory storage, data is lost on restart")
		backend = app.Memory(memory.New())
	default:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if cfg.DB.Migrate {
			applied, err := database.Migrate(ctx, db)
			if err != nil {
				slog.Error("failed to migrate database", "error", err)
				os.Exit(1)
			}

			slog.Info("migrations applied", "count", applied)
		}

		backend = app.Postgres(db)
	}

	var reports bill.ReportCache

	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Warn("report cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			defer client.Close()
			reports = cache.NewReports(client, cfg.Redis.TTL)
		}
	}

	periodCfg, err := cfg.PeriodConfig()
	if err != nil {
		slog.Error("invalid period config", "error", err)
		os.Exit(1)
	}

	services := app.New(backend, periodCfg, reports, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           services.Router(cfg.Server.CorsAllowedOrigins, cfg.Server.Timeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "addr", server.Addr, "driver", cfg.DB.Driver)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
