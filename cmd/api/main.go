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

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	"github.com/BruksfildServices01/home-listing/internal/config"
	dbpkg "github.com/BruksfildServices01/home-listing/internal/db"
	"github.com/BruksfildServices01/home-listing/internal/infra/cache"
	"github.com/BruksfildServices01/home-listing/internal/infra/storage"
	"github.com/BruksfildServices01/home-listing/internal/logging"
	"github.com/BruksfildServices01/home-listing/internal/routes"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "api",
		Short:        "Home listing HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Load()
			logging.Setup(cfg)

			if err := dbpkg.Migrate(dbpkg.NewDB(cfg)); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logrus.Info("schema up to date")
			return nil
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()
	logging.Setup(cfg)

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)
	if err := dbpkg.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	opts := routes.Options{Audit: dispatcher}

	if cfg.CacheEnabled() {
		rdb, err := cache.NewClient(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, home cache disabled")
		} else {
			defer rdb.Close()
			opts.HomeCache = cache.NewHomeRedisCache(rdb, cfg.HomeCacheTTL)
		}
	}

	if cfg.UploadsEnabled() {
		opts.Uploader = storage.NewS3Uploader(cfg)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, cfg, opts)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"cache":   opts.HomeCache != nil,
			"uploads": opts.Uploader != nil,
		}).Info("server running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
