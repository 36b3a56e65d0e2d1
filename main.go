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

	"github.com/spf13/pflag"

	"github.com/codewithtanvir/railsheba-premium/clock"
	"github.com/codewithtanvir/railsheba-premium/config"
	"github.com/codewithtanvir/railsheba-premium/database"
	"github.com/codewithtanvir/railsheba-premium/handlers"
	"github.com/codewithtanvir/railsheba-premium/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "railsheba: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var envFile, port, store string
	var jsonLogs bool

	flagSet := pflag.NewFlagSet("railsheba", pflag.ContinueOnError)
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	flagSet.StringVar(&port, "port", "", "HTTP port (overrides SERVER_PORT)")
	flagSet.StringVar(&store, "store", "", "storage backend: sqlite, postgres or memory (overrides STORE_BACKEND)")
	flagSet.BoolVar(&jsonLogs, "json-logs", false, "write JSON log records instead of text")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	// Load configuration
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagSet.Changed("port") {
		cfg.ServerPort = port
	}
	if flagSet.Changed("store") {
		cfg.StoreBackend = store
	}

	options := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var logger *slog.Logger
	if jsonLogs {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, options))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, options))
	}
	slog.SetDefault(logger)

	logger.Info("starting RailSheba booking service", "store", cfg.StoreBackend, "port", cfg.ServerPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the store
	kv, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.StoreBackend, err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("closing store", "error", err)
		}
	}()

	catalog, err := services.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded", "stations", len(catalog.Stations), "trains", len(catalog.Trains))

	state := services.NewStateStore(kv, logger)
	history := services.NewBookingHistory(ctx, state, logger)
	notifications := services.NewNotificationService(ctx, state, services.NewLocalizer(), logger)
	gateway := services.NewSimulatedGateway(clock.Real(), services.Delays{
		Login:   cfg.LoginDelay,
		Signup:  cfg.SignupDelay,
		NID:     cfg.NIDDelay,
		Payment: cfg.PaymentDelay,
		Confirm: cfg.ConfirmDelay,
	})

	session := services.NewController(ctx, services.ControllerDeps{
		Catalog:       catalog,
		Gateway:       gateway,
		Tickets:       services.NewTicketFactory(nil),
		History:       history,
		Notifications: notifications,
		State:         state,
		Logger:        logger,
	})

	router := handlers.NewRouter(handlers.New(session, history, logger), cfg.GinMode)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal for graceful shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
