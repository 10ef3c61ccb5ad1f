// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/luxbin/cliparse"
	"github.com/danielhkuo/luxbin/db"
	"github.com/danielhkuo/luxbin/emitter"
	"github.com/danielhkuo/luxbin/middleware"
	"github.com/danielhkuo/luxbin/router"
	"github.com/danielhkuo/luxbin/translator"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests
const shutdownTimeout = 5 * time.Second

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

func run(cfg cliparse.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var deps router.Deps

	// Transmission log
	if cfg.DatabaseType != cliparse.DatabaseNone {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			return err
		}
		deps.Store = db.NewStore(dbConn, cfg.DatabaseType)
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	} else {
		slog.Info("Transmission log disabled")
	}

	// Pre-translation
	if cfg.GeminiAPIKey != "" {
		tr, err := translator.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.TranslateTimeout)
		if err != nil {
			return err
		}
		deps.Translator = tr
		slog.Info("Translation enabled", "model", cfg.GeminiModel, "timeout", cfg.TranslateTimeout)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Light emitter
	if cfg.MQTTBroker != "" {
		client, err := emitter.NewClient(emitter.ClientConfig{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Username: cfg.MQTTUsername,
			Password: cfg.MQTTPassword,
		})
		if err != nil {
			return err
		}
		defer client.Close()

		em := emitter.New(client, cfg.MQTTTopic, emitter.DefaultQueueSize)
		deps.Emitter = em
		g.Go(func() error {
			em.Start(gctx)
			return nil
		})
	}

	// Create server
	server := &http.Server{
		Handler:           middleware.CORS(router.NewRouter(deps, cfg)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %d: %w", cfg.Port, err)
		}
		return nil
	})

	g.Go(func() error {
		// Wait for Ctrl-C or a failed listener
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
