package server

import (
	"reflect"
	"strings"
	"testing"

	"github.com/localrivet/textops/internal/analyzer"
	"github.com/localrivet/textops/internal/dispatch"
	"github.com/localrivet/textops/internal/telemetry"
	"github.com/localrivet/textops/internal/tools"
)

// MockAnalyzer implements the analyzer.TextAnalyzer interface for testing
type MockAnalyzer struct {
	WordCountCalls []string
	SummarizeCalls []struct {
		Text         string
		MaxSentences int
	}
	KeywordsCalls []struct {
		Text string
		TopN int
	}

	WordCountResult int
	SummarizeResult string
	KeywordsResult  []string
}

func (m *MockAnalyzer) Initialize() error {
	return nil
}

func (m *MockAnalyzer) WordCount(text string) int {
	m.WordCountCalls = append(m.WordCountCalls, text)
	return m.WordCountResult
}

func (m *MockAnalyzer) Summarize(text string, maxSentences int) string {
	m.SummarizeCalls = append(m.SummarizeCalls, struct {
		Text         string
		MaxSentences int
	}{text, maxSentences})
	return m.SummarizeResult
}

func (m *MockAnalyzer) Keywords(text string, topN int) []string {
	m.KeywordsCalls = append(m.KeywordsCalls, struct {
		Text string
		TopN int
	}{text, topN})
	return m.KeywordsResult
}

func newTestServer(mock *MockAnalyzer, t *testing.T) (*MCPTextToolServer, *telemetry.MetricsCollector) {
	t.Helper()

	metrics := telemetry.NewMetricsCollector()
	srv := NewTextToolServer(mock, metrics, dispatch.DefaultParams())
	if err := srv.Initialize(); err != nil {
		t.Fatalf("Failed to initialize server: %v", err)
	}
	return srv, metrics
}

// TestInitializeMissingDependencies verifies that missing dependencies are rejected
func TestInitializeMissingDependencies(t *testing.T) {
	srv := NewTextToolServer(nil, nil, dispatch.DefaultParams())
	if err := srv.Initialize(); err == nil {
		t.Fatal("Initialize succeeded with nil dependencies, want error")
	}
}

// TestTextToolCount tests the count action of the text_tool handler
func TestTextToolCount(t *testing.T) {
	mock := &MockAnalyzer{WordCountResult: 3}
	srv, metrics := newTestServer(mock, t)

	req := tools.TextToolRequest{
		Action: "COUNT",
		Text:   "a b c",
	}

	response, err := srv.handleTextTool(nil, req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}

	want := map[string]any{dispatch.KeyWordCount: 3}
	if !reflect.DeepEqual(response.Result, want) {
		t.Errorf("Expected result %v, got %v", want, response.Result)
	}

	if len(mock.WordCountCalls) != 1 || mock.WordCountCalls[0] != "a b c" {
		t.Errorf("Analyzer called with %v, want [a b c]", mock.WordCountCalls)
	}

	if got := metrics.GetCounter(telemetry.MetricActionCount); got != 1 {
		t.Errorf("count action counter = %d, want 1", got)
	}
	if got := metrics.GetCounter(telemetry.MetricToolCalls); got != 1 {
		t.Errorf("tool calls counter = %d, want 1", got)
	}
}

// TestTextToolSummaryDefaults tests that omitted parameters fall back to defaults
func TestTextToolSummaryDefaults(t *testing.T) {
	mock := &MockAnalyzer{SummarizeResult: "A summary."}
	srv, _ := newTestServer(mock, t)

	req := tools.TextToolRequest{
		Action: "summary",
		Text:   "A summary. With more. And more.",
	}

	response, err := srv.handleTextTool(nil, req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if response.Result[dispatch.KeySummary] != "A summary." {
		t.Errorf("Expected summary 'A summary.', got '%v'", response.Result[dispatch.KeySummary])
	}

	if len(mock.SummarizeCalls) != 1 {
		t.Fatalf("Expected 1 summarize call, got %d", len(mock.SummarizeCalls))
	}
	if got := mock.SummarizeCalls[0].MaxSentences; got != analyzer.DefaultMaxSentences {
		t.Errorf("MaxSentences = %d, want default %d", got, analyzer.DefaultMaxSentences)
	}
}

// TestTextToolKeywordsParams tests that top_n is forwarded to the analyzer
func TestTextToolKeywordsParams(t *testing.T) {
	mock := &MockAnalyzer{KeywordsResult: []string{"cat", "dog"}}
	srv, _ := newTestServer(mock, t)

	req := tools.TextToolRequest{
		Action: "keywords",
		Text:   "cat dog cat bird dog cat",
		TopN:   2,
	}

	response, err := srv.handleTextTool(nil, req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	keywords, ok := response.Result[dispatch.KeyKeywords].([]string)
	if !ok {
		t.Fatalf("result keywords is %T, want []string", response.Result[dispatch.KeyKeywords])
	}
	if !reflect.DeepEqual(keywords, []string{"cat", "dog"}) {
		t.Errorf("keywords = %v, want [cat dog]", keywords)
	}

	if len(mock.KeywordsCalls) != 1 {
		t.Fatalf("Expected 1 keywords call, got %d", len(mock.KeywordsCalls))
	}
	if mock.KeywordsCalls[0].TopN != 2 {
		t.Errorf("TopN = %d, want 2", mock.KeywordsCalls[0].TopN)
	}
}

// TestTextToolInvalidAction tests the error response for an unsupported action
func TestTextToolInvalidAction(t *testing.T) {
	mock := &MockAnalyzer{}
	srv, metrics := newTestServer(mock, t)

	req := tools.TextToolRequest{
		Action: "bogus",
		Text:   "text",
	}

	response, err := srv.handleTextTool(nil, req)

	// We expect no direct error from the handler
	if err != nil {
		t.Fatalf("Handler should not return error: %v", err)
	}

	if response.Status != "error" {
		t.Errorf("Expected status 'error', got '%s'", response.Status)
	}
	if response.Error == "" {
		t.Fatal("Expected non-empty error message")
	}
	for _, name := range dispatch.AllowedActions() {
		if !strings.Contains(response.Error, name) {
			t.Errorf("Error message %q does not name allowed action %q", response.Error, name)
		}
	}
	if response.Result != nil {
		t.Errorf("Expected nil result on error, got %v", response.Result)
	}

	if got := metrics.GetCounter(telemetry.MetricInvalidAction); got != 1 {
		t.Errorf("invalid action counter = %d, want 1", got)
	}

	// No operation may run on an invalid action
	if len(mock.WordCountCalls)+len(mock.SummarizeCalls)+len(mock.KeywordsCalls) != 0 {
		t.Error("Analyzer was called despite invalid action")
	}
}

// TestWordCountTool tests the text_word_count handler
func TestWordCountTool(t *testing.T) {
	mock := &MockAnalyzer{WordCountResult: 2}
	srv, _ := newTestServer(mock, t)

	response, err := srv.handleWordCount(nil, tools.WordCountRequest{Text: "  hello   world  "})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if response.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", response.WordCount)
	}
}

// TestSummaryTool tests the text_summary handler
func TestSummaryTool(t *testing.T) {
	mock := &MockAnalyzer{SummarizeResult: "First. Second."}
	srv, _ := newTestServer(mock, t)

	response, err := srv.handleSummary(nil, tools.SummaryRequest{
		Text:         "First. Second. Third.",
		MaxSentences: 2,
	})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Summary != "First. Second." {
		t.Errorf("Summary = %q, want %q", response.Summary, "First. Second.")
	}
	if len(mock.SummarizeCalls) != 1 || mock.SummarizeCalls[0].MaxSentences != 2 {
		t.Errorf("Summarize calls = %v, want one call with MaxSentences 2", mock.SummarizeCalls)
	}
}

// TestKeywordsToolEmptyResult tests that an empty keyword list is never nil
func TestKeywordsToolEmptyResult(t *testing.T) {
	mock := &MockAnalyzer{KeywordsResult: nil}
	srv, _ := newTestServer(mock, t)

	response, err := srv.handleKeywords(nil, tools.KeywordsRequest{Text: "a b"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Keywords == nil {
		t.Error("Keywords is nil, want empty slice")
	}
	if len(response.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty", response.Keywords)
	}

	// Omitted top_n falls back to the configured default
	if len(mock.KeywordsCalls) != 1 {
		t.Fatalf("Expected 1 keywords call, got %d", len(mock.KeywordsCalls))
	}
	if got := mock.KeywordsCalls[0].TopN; got != analyzer.DefaultTopN {
		t.Errorf("TopN = %d, want default %d", got, analyzer.DefaultTopN)
	}
}

// TestTextToolIdempotent verifies repeated identical calls yield identical results
func TestTextToolIdempotent(t *testing.T) {
	metrics := telemetry.NewMetricsCollector()
	real := NewTextToolServer(analyzer.NewHeuristicAnalyzer(), metrics, dispatch.DefaultParams())
	if err := real.Initialize(); err != nil {
		t.Fatalf("Failed to initialize server: %v", err)
	}

	req := tools.TextToolRequest{Action: "keywords", Text: "cat dog cat bird dog cat", TopN: 2}

	first, err := real.handleTextTool(nil, req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	second, err := real.handleTextTool(nil, req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if !reflect.DeepEqual(first.Result, second.Result) {
		t.Errorf("Results differ across identical calls: %v vs %v", first.Result, second.Result)
	}
}
