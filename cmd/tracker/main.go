package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"tracker/internal/cli"
	"tracker/internal/core"
	apphttp "tracker/internal/http"
	"tracker/internal/insights"
	"tracker/internal/ledger"
	"tracker/internal/log"
	"tracker/internal/service"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	db := cli.InitBolt(logger, cfg.BoltDBPath)
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slot, err := ledger.NewBoltSlot(db)
	if err != nil {
		logger.Error("Failed to initialize ledger slot", log.FieldError, err)
		return
	}
	store := ledger.NewStore(slot, nil)
	if err := store.Load(ctx); err != nil {
		logger.Error("Failed to load ledger", log.FieldError, err)
		return
	}

	tracker := service.NewTracker(
		store,
		insights.NewGenerator(core.Money{Cents: cfg.IncomeBaselineCents}),
		time.Now,
	)

	srv := apphttp.NewServer(":"+cfg.Port, tracker)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting tracker server", "port", cfg.Port, "db_path", cfg.BoltDBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err)
		return
	}
	logger.Info("Server stopped gracefully")
}
