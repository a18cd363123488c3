// Package tools defines the tool names and request/response schemas
// for the TextOps service.
package tools

const (
	// ToolTextTool is the name of the combined text_tool MCP tool
	ToolTextTool = "text_tool"

	// ToolWordCount is the name of the text_word_count MCP tool
	ToolWordCount = "text_word_count"

	// ToolSummary is the name of the text_summary MCP tool
	ToolSummary = "text_summary"

	// ToolKeywords is the name of the text_keywords MCP tool
	ToolKeywords = "text_keywords"
)

// TextToolRequest defines the input schema for the text_tool tool
type TextToolRequest struct {
	// Action selects the operation to run: "count", "summary" or
	// "keywords". Matching is case-insensitive.
	Action string `json:"action"`

	// Text is the input text to analyze
	Text string `json:"text,omitempty"`

	// TopN is the number of keywords to return for the keywords action.
	// If not specified, the analyzer default is used.
	TopN int `json:"top_n,omitempty"`

	// MaxSentences is the number of sentences to return for the summary
	// action. If not specified, the analyzer default is used.
	MaxSentences int `json:"max_sentences,omitempty"`
}

// TextToolResponse defines the output schema for the text_tool tool
type TextToolResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Result holds the operation result under exactly one key named for
	// the action: "word_count", "summary" or "keywords"
	Result map[string]any `json:"result,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// WordCountRequest defines the input schema for the text_word_count tool
type WordCountRequest struct {
	// Text is the input text to count words in
	Text string `json:"text,omitempty"`
}

// WordCountResponse defines the output schema for the text_word_count tool
type WordCountResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// WordCount is the number of whitespace-delimited words in the text
	WordCount int `json:"word_count"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// SummaryRequest defines the input schema for the text_summary tool
type SummaryRequest struct {
	// Text is the input text to summarize
	Text string `json:"text,omitempty"`

	// MaxSentences is the number of sentences to return.
	// If not specified, the analyzer default is used.
	MaxSentences int `json:"max_sentences,omitempty"`
}

// SummaryResponse defines the output schema for the text_summary tool
type SummaryResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Summary is the extractive summary of the text
	Summary string `json:"summary"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// KeywordsRequest defines the input schema for the text_keywords tool
type KeywordsRequest struct {
	// Text is the input text to extract keywords from
	Text string `json:"text,omitempty"`

	// TopN is the number of keywords to return.
	// If not specified, the analyzer default is used.
	TopN int `json:"top_n,omitempty"`
}

// KeywordsResponse defines the output schema for the text_keywords tool
type KeywordsResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Keywords are the extracted keywords, most frequent first
	Keywords []string `json:"keywords"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}
