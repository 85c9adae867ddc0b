package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conectacare/conectacare-api/api/handlers"
	"github.com/conectacare/conectacare-api/api/scheduler"
	"github.com/conectacare/conectacare-api/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "conectacare-api",
		Short: "Home-care patient and caretaker records API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	rootCmd.AddCommand(serveCmd(), ensureIndexesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func ensureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the unique indexes and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.New()
			if err != nil {
				return err
			}
			a := handlers.App{Config: *conf}
			// Initialize creates the indexes once connected
			if err := a.Initialize(cmd.Context()); err != nil {
				return err
			}
			zap.S().Infow("indexes are in place", "database", conf.DatabaseName)
			return a.Close(context.Background())
		},
	}
}

func serve(ctx context.Context) error {
	conf, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := handlers.App{Config: *conf}
	if err := a.Initialize(ctx); err != nil {
		return err
	}

	jobs := scheduler.NewScheduler(a.Patients, a.Caretakers)
	if err := jobs.Start(conf.StatsSchedule); err != nil {
		_ = a.Close(context.Background())
		return err
	}

	srv := &http.Server{
		Addr:              ":" + conf.Port,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		zap.S().Infow("conectacare-api is up and running",
			"port", conf.Port,
			"url", conf.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err = <-errc:
		zap.S().Errorw("server failed", "error", err)
	case <-ctx.Done():
		zap.S().Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		zap.S().Errorw("server shutdown failed", "error", serr)
	}
	jobs.Stop()
	if cerr := a.Close(shutdownCtx); cerr != nil {
		zap.S().Errorw("failed to disconnect from database", "error", cerr)
	}
	zap.S().Info("server stopped")
	return err
}
