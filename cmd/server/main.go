// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

// Package main is the entry point for the Rolodex server.
//
// Rolodex is a contacts management REST backend. Users register and log
// in with opaque bearer tokens, then manage their own contacts and the
// addresses attached to each contact.
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, ROLODEX_* env vars (Koanf v2)
//  2. Logging: zerolog, console or JSON format
//  3. Database: SQLite with foreign keys enforced
//  4. Services: user, contact, and address domain services
//  5. HTTP server: Chi router with the REST API, /ping, and /metrics
//
// Shutdown is graceful on SIGINT and SIGTERM: the listener stops
// accepting connections and in-flight requests get cfg.Server.ShutdownTimeout
// to complete before the database is closed.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rolodex-api/rolodex/internal/api"
	"github.com/rolodex-api/rolodex/internal/auth"
	"github.com/rolodex-api/rolodex/internal/config"
	"github.com/rolodex-api/rolodex/internal/database"
	"github.com/rolodex-api/rolodex/internal/logging"
	"github.com/rolodex-api/rolodex/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Rolodex")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	users := service.NewUserService(db, hasher)
	contacts := service.NewContactService(db)
	addresses := service.NewAddressService(db)

	handler := api.NewHandler(users, contacts, addresses)
	router := api.NewRouter(handler, auth.NewMiddleware(db), &cfg.Server)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
