// Package textops exposes heuristic text-analysis operations (word counting,
// extractive summarization, keyword extraction) as an embeddable MCP tool
// service.
package textops

import (
	"log/slog"

	"github.com/localrivet/textops/internal/analyzer"
	"github.com/localrivet/textops/internal/config"
	"github.com/localrivet/textops/internal/dispatch"
	"github.com/localrivet/textops/internal/errortypes"
	"github.com/localrivet/textops/internal/server"
	"github.com/localrivet/textops/internal/telemetry"
)

// Config represents the configuration for the TextOps service.
type Config = config.Config

// Server represents the TextOps service.
type Server struct {
	config     *config.Config
	analyzer   analyzer.TextAnalyzer
	metrics    *telemetry.MetricsCollector
	toolServer server.TextToolServer
	logger     *slog.Logger
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new TextOps Server with the given options.
// If opts.Config is provided, it will be used directly.
// Otherwise, if opts.ConfigPath is provided, configuration will be loaded from that path.
// If neither is provided, DefaultConfig() will be used.
// If opts.Logger is nil, slog.Default() will be used.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		logger.Info("Using provided Config object for server initialization")
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for server initialization", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			logger.Error("Failed to load configuration from path", "path", opts.ConfigPath, "error", err)
			return nil, errortypes.ConfigError(err, "Failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		logger.Warn("No Config object or ConfigPath provided, using default configuration for server initialization")
		cfg = DefaultConfig()
	}

	a, metrics, err := CreateComponents(cfg, logger)
	if err != nil {
		logger.Error("Failed to create components during server initialization", "error", err)
		return nil, err
	}

	logger.Info("Initializing text tool server component")
	toolServer := server.NewTextToolServer(a, metrics, paramsFromConfig(cfg))
	if err := toolServer.Initialize(); err != nil {
		logger.Error("Failed to initialize MCP text tool server component", "error", err)
		return nil, errortypes.ConfigError(err, "Failed to initialize MCP text tool server component")
	}

	logger.Info("TextOps server successfully initialized")
	return &Server{
		config:     cfg,
		analyzer:   a,
		metrics:    metrics,
		toolServer: toolServer,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the TextOps service.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// Start starts the TextOps service.
func (s *Server) Start() error {
	s.logger.Info("Starting TextOps service")
	return s.toolServer.Start()
}

// Stop stops the TextOps service.
func (s *Server) Stop() error {
	s.logger.Info("Stopping TextOps service")
	if err := s.toolServer.Stop(); err != nil {
		s.logger.Error("Error stopping tool server", "error", err)
		return err
	}

	s.logger.Info("TextOps service stopped")
	return nil
}

// WordCount counts the whitespace-delimited words in text.
func (s *Server) WordCount(text string) int {
	s.logger.Debug("Counting words", "text_length", len(text))
	return s.analyzer.WordCount(text)
}

// Summarize returns the first maxSentences sentences of text. A maxSentences
// of zero or less selects the configured default.
func (s *Server) Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = s.config.Analyzer.DefaultMaxSentences
	}
	s.logger.Debug("Summarizing text", "text_length", len(text), "max_sentences", maxSentences)
	return s.analyzer.Summarize(text, maxSentences)
}

// Keywords returns up to topN keyword candidates from text, most frequent
// first. A topN of zero or less selects the configured default.
func (s *Server) Keywords(text string, topN int) []string {
	if topN <= 0 {
		topN = s.config.Analyzer.DefaultTopN
	}
	s.logger.Debug("Extracting keywords", "text_length", len(text), "top_n", topN)
	return s.analyzer.Keywords(text, topN)
}

// Analyze routes a case-insensitive action name ("count", "summary" or
// "keywords") to the matching operation and returns its result as a map with
// exactly one key named for the action. Unknown actions return a validation
// error naming the allowed values.
func (s *Server) Analyze(action string, text string) (map[string]any, error) {
	s.logger.Debug("Dispatching action", "action", action, "text_length", len(text))
	result, err := dispatch.Dispatch(s.analyzer, action, text, paramsFromConfig(s.config))
	if err != nil {
		errortypes.LogError(s.logger, err)
		return nil, err
	}
	return result, nil
}

// GetAnalyzer returns the analyzer instance used by the server.
func (s *Server) GetAnalyzer() analyzer.TextAnalyzer {
	return s.analyzer
}

// GetMetrics returns the metrics collector used by the server.
func (s *Server) GetMetrics() *telemetry.MetricsCollector {
	return s.metrics
}

// CreateComponents creates and initializes the components of the TextOps
// service without creating a server instance. This is useful for hosts that
// need direct access to the analyzer and metrics collector.
func CreateComponents(cfg *Config, logger *slog.Logger) (analyzer.TextAnalyzer, *telemetry.MetricsCollector, error) {
	if logger == nil {
		logger = slog.Default()
		logger.Debug("CreateComponents called with nil logger, defaulting to slog.Default()")
	}

	logger.Info("Initializing heuristic analyzer",
		"default_top_n", cfg.Analyzer.DefaultTopN,
		"default_max_sentences", cfg.Analyzer.DefaultMaxSentences)
	a := analyzer.NewHeuristicAnalyzer()
	if err := a.Initialize(); err != nil {
		logger.Error("Failed to initialize analyzer in CreateComponents", "error", err)
		return nil, nil, errortypes.ConfigError(err, "Failed to initialize analyzer")
	}

	metrics := telemetry.NewMetricsCollector()

	logger.Info("Components successfully initialized via CreateComponents")
	return a, metrics, nil
}

// paramsFromConfig builds the dispatch defaults from the analyzer section of
// the configuration.
func paramsFromConfig(cfg *Config) dispatch.Params {
	p := dispatch.DefaultParams()
	if cfg.Analyzer.DefaultMaxSentences > 0 {
		p.MaxSentences = cfg.Analyzer.DefaultMaxSentences
	}
	if cfg.Analyzer.DefaultTopN > 0 {
		p.TopN = cfg.Analyzer.DefaultTopN
	}
	return p
}
