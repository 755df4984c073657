package main

//
//  @title           finpulse API
//  @version         1.0
//  @description     Daily financial time-series ingestion & query service.
//  @termsOfService  https://github.com/guttosm/finpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/finpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        financial_data
//  @tag.description Paginated daily open/close/volume records
//
//  @tag.name        statistics
//  @tag.description Average prices and volume per symbol and date range
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goose "github.com/pressly/goose/v3"

	"github.com/guttosm/finpulse/config"
	_ "github.com/guttosm/finpulse/docs" // swagger docs
	"github.com/guttosm/finpulse/internal/app"
	"github.com/guttosm/finpulse/internal/ingestion"
	"github.com/guttosm/finpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
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
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
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

// main is the entry point of the finpulse application.
//
// Modes (selected via --mode flag):
//   - ingest:  Fetches the daily series for the configured tickers and upserts them.
//   - api:     Starts the REST API exposing financial data and statistics.
//   - migrate: Applies pending database migrations and exits.
//
// Flags:
//   - --mode:     Execution mode ("ingest", "api", or "migrate"). Default: "api".
//   - --tickers:  Comma-separated ticker override for ingest mode. Default: from config (TICKERS).
//   - --parallel: Concurrent symbol fetches in ingest mode (0 = auto).
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api, ingest, or migrate")
	tickers := flag.String("tickers", "", "Comma-separated tickers to ingest (default: from config)")
	parallel := flag.Int("parallel", 0, "How many symbols to fetch concurrently (0=auto, max 4)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		// Ingestion mode: fetch provider series and upsert records
		logger.L().Info().Msg("running ingestion")

		symbols := config.AppConfig.Provider.Tickers
		if *tickers != "" {
			symbols = nil
			for _, t := range strings.Split(*tickers, ",") {
				if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
					symbols = append(symbols, t)
				}
			}
		}

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		client := ingestion.NewAlphaVantageClient(
			config.AppConfig.Provider.BaseURL,
			config.AppConfig.Provider.APIKey,
		)

		if err := ingestion.Run(ctx, db, client, symbols, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "migrate":
		// Migration mode: apply goose migrations and exit
		logger.L().Info().Msg("applying migrations")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := goose.SetDialect("postgres"); err != nil {
			logger.L().Fatal().Err(err).Msg("migration dialect error")
		}
		if err := goose.Up(db, "db/migrations"); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Msg("migrations applied")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
