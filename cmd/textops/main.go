package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/localrivet/textops/internal/analyzer"
	"github.com/localrivet/textops/internal/config"
	"github.com/localrivet/textops/internal/dispatch"
	"github.com/localrivet/textops/internal/errortypes"
	"github.com/localrivet/textops/internal/logger"
	"github.com/localrivet/textops/internal/server"
	"github.com/localrivet/textops/internal/telemetry"
)

func main() {
	// Initialize logging first thing
	appLogger := setupLogging()

	appLogger.Info("TextOps MCP Server - Starting...")

	// Load configuration
	cfg, err := config.InitGlobal(config.DefaultConfigFilename)
	if err != nil {
		appLogger.Error("Failed to load configuration: %v", err)
		appLogger.Fatal("Failed to load configuration")
	}

	// Configure logging based on config
	if cfg.Logging.Level != "" {
		appLogger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
		appLogger.Info("Log level set to %s", cfg.Logging.Level)
	}

	if cfg.Logging.Format == "json" {
		appLogger.SetFormat(logger.JSON)
		appLogger.Info("Log format set to JSON")
	}

	// Initialize the analyzer
	a := analyzer.NewHeuristicAnalyzer()
	analyzerLogger := appLogger.WithContext("analyzer")

	if err := a.Initialize(); err != nil {
		errortypes.LogError(nil, errortypes.ConfigError(err, "Failed to initialize analyzer"))
		appLogger.Fatal("Failed to initialize analyzer")
	}
	analyzerLogger.Info("Heuristic analyzer initialized")

	// Initialize the metrics collector
	metrics := telemetry.NewMetricsCollector()

	// Initialize the MCP server
	defaults := dispatch.Params{
		MaxSentences: cfg.Analyzer.DefaultMaxSentences,
		TopN:         cfg.Analyzer.DefaultTopN,
	}
	srv := server.NewTextToolServer(a, metrics, defaults)
	srvLogger := appLogger.WithContext("server")

	if err := srv.Initialize(); err != nil {
		errortypes.LogError(nil, errortypes.ConfigError(err, "Failed to initialize MCP server"))
		appLogger.Fatal("Failed to initialize MCP server")
	}
	srvLogger.Info("MCP server initialized")

	// Handle graceful shutdown
	setupSignalHandler(metrics, appLogger)

	// Start the MCP server (this will block until server is terminated)
	srvLogger.Info("Starting MCP server...")
	if err := srv.Start(); err != nil {
		errortypes.LogError(nil, errortypes.APIError(err, "MCP server failed"))
		appLogger.Fatal("Failed to start MCP server")
	}
}

// setupLogging configures and returns the application logger
func setupLogging() *logger.Logger {
	// Create default configuration
	config := logger.DefaultConfig()

	// Try to get log level from environment variable
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		config.Level = logger.ParseLevel(levelStr)
	}

	// Create and return logger
	appLogger := logger.New(config)
	logger.SetDefaultLogger(appLogger)

	return appLogger
}

// setupSignalHandler sets up a signal handler for graceful shutdown.
func setupSignalHandler(metrics *telemetry.MetricsCollector, log *logger.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Received shutdown signal, terminating gracefully...")

		// Dump collected metrics before exiting
		log.Info("Final metrics:\n%s", metrics.GetReport())

		log.Info("Shutdown complete")
		os.Exit(0)
	}()
}
