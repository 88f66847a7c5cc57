package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledgerline/paycore/internal/api"
	"github.com/ledgerline/paycore/internal/api/handler"
	"github.com/ledgerline/paycore/internal/app"
	"github.com/ledgerline/paycore/internal/config"
	"github.com/ledgerline/paycore/internal/migrate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appCtx, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to build application context", "error", err)
		os.Exit(1)
	}

	if cfg.RunMigrations {
		if err := runMigrations(ctx, appCtx); err != nil {
			slog.Error("migrations failed", "error", err)
			closeAppContext(appCtx)
			os.Exit(1)
		}
	}

	appCtx.StartPoolMetrics(ctx)

	pingers := make([]handler.DatabasePinger, 0, 6)
	for _, db := range appCtx.Databases() {
		pingers = append(pingers, db)
	}

	router := api.NewRouter(api.RouterDeps{
		Databases: pingers,
		Version:   cfg.Version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting paycore server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		exitCode = 1
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		exitCode = 1
	}

	cancel()
	closeAppContext(appCtx)

	if exitCode == 0 {
		slog.Info("server stopped gracefully")
	}
	os.Exit(exitCode)
}

// runMigrations applies the schema for the databases this service owns.
func runMigrations(ctx context.Context, appCtx *app.Context) error {
	if err := migrate.Up(ctx, appCtx.PayinMainDB, "payinmaindb"); err != nil {
		return err
	}
	if err := migrate.Up(ctx, appCtx.PayinPaymentDB, "payinpaymentdb"); err != nil {
		return err
	}
	return migrate.Up(ctx, appCtx.PayoutMainDB, "payoutmaindb")
}

func closeAppContext(appCtx *app.Context) {
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer closeCancel()

	if err := appCtx.Close(closeCtx); err != nil {
		slog.Error("application context shutdown reported errors", "error", err)
	}
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
