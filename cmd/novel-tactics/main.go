package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/ericogr/novel-tactics/internal/api"
	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/logging"
	"github.com/ericogr/novel-tactics/internal/version"
)

func main() {
	cfg := loadConfigOrExit()
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Warn("unknown log level, keeping info", err, logging.Fields{"level": cfg.LogLevel})
	}
	defer logging.Sync()

	repo := createRepositoryOrExit(cfg)
	settings := serviceSettings(cfg)
	secret, err := api.NarrativeSecret(cfg.NarrativeSecret)
	if err != nil {
		logging.Fatal("Failed to prepare narrative secret", err, nil)
	}
	if cfg.NarrativeSecret == "" {
		logging.Warn("No narrative secret configured, using a per-process development secret", nil, logging.Fields{"var": constants.EnvNarrativeSecret})
	}

	hub := api.NewStreamHub()
	handler := api.NewEncounterHandler(repo, settings, hub)

	router := gin.Default()
	api.RegisterRoutes(router, handler, api.NarrativeAuthRequired(secret))

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runPacer(ctx, repo, hub, settings, cfg.Pacing, workerID(cfg))
		return nil
	})
	g.Go(func() error {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: srv.Addr, "version": version.Version})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Fatal("Server stopped with an error", err, nil)
	}
	logging.Info("Server stopped", nil)
}
