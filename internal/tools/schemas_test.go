package tools

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTextToolRequestDefaultsWhenOmitted(t *testing.T) {
	// A minimal client payload leaves the tunables at their zero values,
	// which the server treats as "use the default".
	var req TextToolRequest
	if err := json.Unmarshal([]byte(`{"action":"keywords","text":"cat dog"}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}

	if req.Action != "keywords" {
		t.Errorf("Action = %q, want keywords", req.Action)
	}
	if req.TopN != 0 || req.MaxSentences != 0 {
		t.Errorf("Omitted parameters should be zero, got top_n=%d max_sentences=%d",
			req.TopN, req.MaxSentences)
	}
}

func TestTextToolResponseErrorOmittedOnSuccess(t *testing.T) {
	resp := TextToolResponse{
		Status: "success",
		Result: map[string]any{"word_count": 3},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	if strings.Contains(string(data), `"error"`) {
		t.Errorf("Expected error field to be omitted on success, got %s", data)
	}
	if !strings.Contains(string(data), `"word_count":3`) {
		t.Errorf("Expected word_count in result, got %s", data)
	}
}

func TestKeywordsResponseKeepsEmptyList(t *testing.T) {
	resp := KeywordsResponse{
		Status:   "success",
		Keywords: []string{},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	if !strings.Contains(string(data), `"keywords":[]`) {
		t.Errorf("Expected empty keywords list to serialize as [], got %s", data)
	}
}
