package main

//
//  @title           quotepulse API
//  @version         1.0
//  @description     Session-aware stock quote resolution across pre-market, regular, after-market and closed hours.
//  @termsOfService  https://github.com/guttosm/quotepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/quotepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        quote
//  @tag.description Session-aware quote resolution
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/quotepulse/config"
	_ "github.com/guttosm/quotepulse/docs" // swagger docs
	"github.com/guttosm/quotepulse/internal/app"
	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//   - writeTimeout (time.Duration): Must outlast the API request deadline.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string, writeTimeout time.Duration) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., pooled HTTP connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// serverWriteTimeout leaves the response write a few seconds past the
// request deadline, never going below 30s.
func serverWriteTimeout(requestBudget time.Duration) time.Duration {
	return max(30*time.Second, requestBudget+5*time.Second)
}

// runQuote resolves one symbol and writes the response DTO as indented JSON.
func runQuote(ctx context.Context, svc service.QuoteService, symbol string, w io.Writer) error {
	q, err := svc.GetQuote(ctx, symbol)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewQuoteResponse(q))
}

// main is the entry point of the quotepulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API serving /api/v1/quote.
//   - quote: Resolves --symbol once, prints it as JSON and exits
//     (non-zero when no quote is available).
//
// Flags:
//   - --mode:   Execution mode ("api" or "quote"). Default: "api".
//   - --symbol: Symbol for quote mode (e.g., "TSLA").
//   - --port:   Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or quote")
	symbol := flag.String("symbol", "", "Symbol to resolve in quote mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "quote":
		comps, err := app.BuildComponents(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer comps.Cleanup()

		qctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runQuote(qctx, comps.Service, *symbol, os.Stdout); err != nil {
			logger.L().Error().Err(err).Str("symbol", *symbol).Msg("quote failed")
			stop()
			comps.Cleanup()
			os.Exit(1)
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port, serverWriteTimeout(app.RequestBudget(config.AppConfig)))
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
