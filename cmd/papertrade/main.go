package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	"github.com/svmehta/papertrade/internal/catalog"
	"github.com/svmehta/papertrade/internal/config"
	"github.com/svmehta/papertrade/internal/engine"
	"github.com/svmehta/papertrade/internal/handler"
	"github.com/svmehta/papertrade/internal/ledger"
	"github.com/svmehta/papertrade/internal/service"
	"github.com/svmehta/papertrade/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Process-wide state: catalog (read-only), stores, and ledger.
	instruments := catalog.New(catalog.DefaultInstruments())
	orderStore := store.NewOrderStore()
	tradeStore := store.NewTradeStore()
	portfolio := ledger.New()

	// Engine.
	eng := engine.New(orderStore, tradeStore, portfolio)

	// Services.
	instrumentSvc := service.NewInstrumentService(instruments)
	orderSvc := service.NewOrderService(instruments, orderStore, eng)
	portfolioSvc := service.NewPortfolioService(portfolio, tradeStore, instruments)

	// Router, wrapped with CORS.
	router := handler.NewRouter(instrumentSvc, orderSvc, portfolioSvc, cfg.AuthToken, logger)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}).Handler(router)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.Int("instruments", instruments.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

// newLogger builds the slog JSON logger. When AUDIT_LOG_FILE is set,
// log output additionally goes to an append-only file; failure to open
// the file logs a warning and the server runs with stdout only, so
// logging problems never affect request handling.
func newLogger(cfg *config.Config) *slog.Logger {
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	var openErr error
	if cfg.AuditLogFile != "" {
		f, err := os.OpenFile(cfg.AuditLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			openErr = err
		} else {
			out = io.MultiWriter(os.Stdout, f)
		}
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: logLevel,
	}))
	if openErr != nil {
		logger.Warn("failed to open audit log file, continuing with stdout only",
			slog.String("path", cfg.AuditLogFile),
			slog.String("error", openErr.Error()),
		)
	}
	return logger
}
