package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/pagetrim/internal/api"
	"github.com/dgallion1/pagetrim/internal/config"
	"github.com/dgallion1/pagetrim/internal/tokens"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Pick the token counter. The estimator needs no encoding data, so it
	// also serves as the fallback when the encoding cannot be loaded.
	var counter tokens.Counter = tokens.Estimator{}
	if cfg.TokenCounter == "tiktoken" {
		tk, err := tokens.NewTiktoken(cfg.TokenEncoding)
		if err != nil {
			log.Error("tiktoken unavailable, falling back to estimator", "error", err)
		} else {
			counter = tk
		}
	}

	srv := api.NewServer(counter, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting pagetrim", "port", cfg.Port, "counter", cfg.TokenCounter)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
