package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dferrao/lendtrack-backend/internal/adapter/httpapi"
	"github.com/dferrao/lendtrack-backend/internal/adapter/repository/postgres"
	"github.com/dferrao/lendtrack-backend/internal/config"
	"github.com/dferrao/lendtrack-backend/internal/usecase/portfolio"
	"github.com/dferrao/lendtrack-backend/internal/usecase/reminder"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Setup database and store
	db, err := postgres.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := postgres.NewPortfolioStore(db)

	// 3. Initialize the portfolio service with real clock and identity source
	ctx := context.Background()
	clock := portfolio.SystemClock{}
	service := portfolio.NewService(ctx, store, clock, portfolio.UUIDGenerator{}, logger)

	// 4. Start the reminder scheduler
	job := reminder.NewJob(service, clock, cfg.ReminderWindowDays, logger)
	scheduler := reminder.NewScheduler(job, cfg.ReminderSchedule, logger)
	scheduler.Start()

	// 5. Start HTTP server
	handler := httpapi.NewHandler(service, clock, cfg.DefaultProjectionYears)
	router := httpapi.NewRouter(handler, cfg.APIToken)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("http server listening", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(server, scheduler, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the
// server and the reminder scheduler
func waitForShutdown(server *http.Server, scheduler *reminder.Scheduler, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutdown signal received", "signal", sig.String())

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}
