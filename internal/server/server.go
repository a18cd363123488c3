// Package server provides the MCP server implementation for the TextOps service.
package server

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/localrivet/gomcp/server"
	"github.com/localrivet/textops/internal/analyzer"
	"github.com/localrivet/textops/internal/dispatch"
	"github.com/localrivet/textops/internal/errortypes"
	"github.com/localrivet/textops/internal/telemetry"
	"github.com/localrivet/textops/internal/tools"
	"github.com/localrivet/textops/internal/util"
)

// Common server error types
var (
	ErrServerNotInitialized = errors.New("server not initialized")
	ErrMissingDependencies  = errors.New("one or more required dependencies are nil")
)

// logPreviewLen caps the text preview length in log fields.
const logPreviewLen = 80

// MCPTextToolServer implements the TextToolServer interface for handling
// MCP tool calls that run the heuristic text operations.
type MCPTextToolServer struct {
	analyzer  analyzer.TextAnalyzer
	metrics   *telemetry.MetricsCollector
	defaults  dispatch.Params
	mcpServer server.Server
}

// NewTextToolServer creates a new MCPTextToolServer instance. Zero fields in
// defaults fall back to the analyzer defaults.
func NewTextToolServer(a analyzer.TextAnalyzer, metrics *telemetry.MetricsCollector, defaults dispatch.Params) *MCPTextToolServer {
	if defaults.MaxSentences <= 0 {
		defaults.MaxSentences = analyzer.DefaultMaxSentences
	}
	if defaults.TopN <= 0 {
		defaults.TopN = analyzer.DefaultTopN
	}
	return &MCPTextToolServer{
		analyzer: a,
		metrics:  metrics,
		defaults: defaults,
	}
}

// Initialize initializes the server with dependencies and configurations.
func (s *MCPTextToolServer) Initialize() error {
	slog.Info("Initializing MCP Text Tool Server")

	if s.analyzer == nil || s.metrics == nil {
		return errortypes.ConfigError(ErrMissingDependencies, "server initialization failed")
	}

	// Create the MCP server
	srv := server.NewServer("textops")

	// Register the combined text_tool entry point
	srv = srv.Tool(tools.ToolTextTool, "Run a text operation: count, summary or keywords",
		s.handleTextTool)

	// Register the per-operation convenience tools
	srv = srv.Tool(tools.ToolWordCount, "Count whitespace-delimited words in text",
		s.handleWordCount)

	srv = srv.Tool(tools.ToolSummary, "Produce an extractive summary of the first sentences of text",
		s.handleSummary)

	srv = srv.Tool(tools.ToolKeywords, "Extract the most frequent keyword candidates from text",
		s.handleKeywords)

	s.mcpServer = srv
	slog.Info("MCP Text Tool Server initialized successfully", "tool_count", 4)
	return nil
}

// Start starts the MCP server on the specified transport.
func (s *MCPTextToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(ErrServerNotInitialized, "cannot start server")
	}

	slog.Info("Starting MCP Text Tool Server")

	// Start the server using stdio transport
	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPTextToolServer) Stop() error {
	slog.Info("Stopping MCP Text Tool Server")
	// The server will exit when stdin is closed
	return nil
}

// params merges request parameters with the configured defaults. A zero value
// means the caller omitted the parameter; negative values pass through.
func (s *MCPTextToolServer) params(maxSentences, topN int) dispatch.Params {
	p := s.defaults
	if maxSentences != 0 {
		p.MaxSentences = maxSentences
	}
	if topN != 0 {
		p.TopN = topN
	}
	return p
}

// handleTextTool handles the combined text_tool MCP tool call.
func (s *MCPTextToolServer) handleTextTool(ctx *server.Context, req tools.TextToolRequest) (tools.TextToolResponse, error) {
	slog.Info("Processing text_tool request",
		"action", req.Action,
		"text_length", len(req.Text),
		"text_preview", util.Preview(req.Text, logPreviewLen))
	started := time.Now()
	s.metrics.IncrementCounter(telemetry.MetricToolCalls, 1)

	response := tools.TextToolResponse{
		Status: "success",
	}

	result, err := dispatch.Dispatch(s.analyzer, req.Action, req.Text, s.params(req.MaxSentences, req.TopN))
	if err != nil {
		err = errortypes.ValidationError(err, "invalid text_tool request").
			WithField("action", req.Action)
		errortypes.LogError(nil, err)
		s.metrics.IncrementCounter(telemetry.MetricInvalidAction, 1)

		response.Status = "error"
		response.Error = err.Error()
		return response, nil
	}

	s.metrics.IncrementCounter(telemetry.MetricForAction(strings.ToLower(req.Action)), 1)
	s.metrics.SetGauge(telemetry.MetricLastInputBytes, float64(len(req.Text)))
	s.metrics.RecordTimer(telemetry.MetricResponseTime, time.Since(started))

	response.Result = result
	slog.Info("Successfully processed text_tool request", "action", strings.ToLower(req.Action))
	return response, nil
}

// handleWordCount handles the text_word_count MCP tool call.
func (s *MCPTextToolServer) handleWordCount(ctx *server.Context, req tools.WordCountRequest) (tools.WordCountResponse, error) {
	slog.Debug("Processing text_word_count request", "text_length", len(req.Text))
	s.metrics.IncrementCounter(telemetry.MetricActionCount, 1)

	return tools.WordCountResponse{
		Status:    "success",
		WordCount: s.analyzer.WordCount(req.Text),
	}, nil
}

// handleSummary handles the text_summary MCP tool call.
func (s *MCPTextToolServer) handleSummary(ctx *server.Context, req tools.SummaryRequest) (tools.SummaryResponse, error) {
	slog.Debug("Processing text_summary request",
		"text_length", len(req.Text),
		"max_sentences", req.MaxSentences)
	s.metrics.IncrementCounter(telemetry.MetricActionSummary, 1)

	maxSentences := req.MaxSentences
	if maxSentences == 0 {
		maxSentences = s.defaults.MaxSentences
	}

	return tools.SummaryResponse{
		Status:  "success",
		Summary: s.analyzer.Summarize(req.Text, maxSentences),
	}, nil
}

// handleKeywords handles the text_keywords MCP tool call.
func (s *MCPTextToolServer) handleKeywords(ctx *server.Context, req tools.KeywordsRequest) (tools.KeywordsResponse, error) {
	slog.Debug("Processing text_keywords request",
		"text_length", len(req.Text),
		"top_n", req.TopN)
	s.metrics.IncrementCounter(telemetry.MetricActionKeywords, 1)

	topN := req.TopN
	if topN == 0 {
		topN = s.defaults.TopN
	}

	keywords := s.analyzer.Keywords(req.Text, topN)
	if keywords == nil {
		keywords = []string{}
	}

	return tools.KeywordsResponse{
		Status:   "success",
		Keywords: keywords,
	}, nil
}
