package llm

import (
	"encoding/json"
	"strconv"
)

// Usage tracks token consumption for a single request.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Providers name their usage counters differently (OpenAI-style
// prompt_tokens/completion_tokens, Anthropic-style input_tokens/
// output_tokens, Gemini REST promptTokenCount/candidatesTokenCount).
// Each counter is read through its alias list in order; the first
// present field wins and absent fields default to 0. This is the only
// place usage field names are interpreted.
var (
	promptTokenAliases     = []string{"prompt_tokens", "input_tokens", "promptTokenCount"}
	completionTokenAliases = []string{"completion_tokens", "output_tokens", "candidatesTokenCount"}
	totalTokenAliases      = []string{"total_tokens", "totalTokenCount"}
)

// UsageFromMap normalizes a raw usage payload into Usage. It never
// fails; unreadable or missing fields count as 0.
func UsageFromMap(raw map[string]any) Usage {
	u := Usage{
		PromptTokens:     intField(raw, promptTokenAliases),
		CompletionTokens: intField(raw, completionTokenAliases),
		TotalTokens:      intField(raw, totalTokenAliases),
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.PromptTokens + u.CompletionTokens
	}
	return u
}

// NewUsage builds a Usage from already-typed counters.
func NewUsage(promptTokens, completionTokens int) Usage {
	return Usage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
}

func intField(raw map[string]any, aliases []string) int {
	for _, name := range aliases {
		v, ok := raw[name]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return int(i)
			}
		case string:
			if i, err := strconv.Atoi(n); err == nil {
				return i
			}
		}
	}
	return 0
}
