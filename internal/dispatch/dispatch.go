// Package dispatch routes symbolic action names to the heuristic text
// operations provided by the analyzer package.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/localrivet/textops/internal/analyzer"
	"github.com/localrivet/textops/internal/errortypes"
)

// Action identifies one of the supported text operations.
type Action string

// Supported actions. Matching is case-insensitive.
const (
	ActionCount    Action = "count"
	ActionSummary  Action = "summary"
	ActionKeywords Action = "keywords"
)

// Result keys, one per action. A dispatch result contains exactly one of
// these keys.
const (
	KeyWordCount = "word_count"
	KeySummary   = "summary"
	KeyKeywords  = "keywords"
)

// AllowedActions lists the valid action names for error messages.
func AllowedActions() []string {
	return []string{string(ActionCount), string(ActionSummary), string(ActionKeywords)}
}

// ParseAction converts a case-insensitive action name into an Action.
// Unknown names yield a validation error naming the allowed actions.
func ParseAction(name string) (Action, error) {
	switch Action(strings.ToLower(name)) {
	case ActionCount:
		return ActionCount, nil
	case ActionSummary:
		return ActionSummary, nil
	case ActionKeywords:
		return ActionKeywords, nil
	}
	return "", errortypes.ValidationError(
		fmt.Errorf("unsupported action %q", name),
		"action must be one of "+strings.Join(AllowedActions(), ", "))
}

// Params carries the tunable parameters of a dispatch call. A zero value
// means the parameter was not supplied and the default applies; negative
// values pass through to the underlying operation unchanged.
type Params struct {
	// MaxSentences is the sentence budget for the summary action.
	MaxSentences int

	// TopN is the keyword budget for the keywords action.
	TopN int
}

// DefaultParams returns the default dispatch parameters.
func DefaultParams() Params {
	return Params{
		MaxSentences: analyzer.DefaultMaxSentences,
		TopN:         analyzer.DefaultTopN,
	}
}

// Dispatch routes the named action to the matching analyzer operation and
// wraps its result in a map with exactly one key named for the action.
// Parameters not relevant to the chosen action are ignored. Dispatch has no
// side effects; all failures are validation errors from action parsing.
func Dispatch(a analyzer.TextAnalyzer, name string, text string, params Params) (map[string]any, error) {
	action, err := ParseAction(name)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionCount:
		return map[string]any{KeyWordCount: a.WordCount(text)}, nil

	case ActionSummary:
		maxSentences := params.MaxSentences
		if maxSentences == 0 {
			maxSentences = analyzer.DefaultMaxSentences
		}
		return map[string]any{KeySummary: a.Summarize(text, maxSentences)}, nil

	case ActionKeywords:
		topN := params.TopN
		if topN == 0 {
			topN = analyzer.DefaultTopN
		}
		keywords := a.Keywords(text, topN)
		if keywords == nil {
			// Keep the JSON shape stable: an empty list, never null.
			keywords = []string{}
		}
		return map[string]any{KeyKeywords: keywords}, nil
	}

	// Unreachable: ParseAction only produces the actions handled above.
	return nil, errortypes.InternalError(
		fmt.Errorf("unhandled action %q", action), "dispatch fell through")
}
