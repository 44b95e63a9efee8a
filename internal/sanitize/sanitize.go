// Package sanitize coerces raw, untrusted request fields into bounded,
// well-typed values with deterministic defaults. Nothing here ever
// fails, and every function is idempotent.
package sanitize

import (
	"strconv"
	"strings"
)

const (
	// DefaultTopic is used when the client sends no topic at all.
	DefaultTopic = "general knowledge"

	MaxTopicLen   = 80
	MaxSnippetLen = 500

	DefaultCount = 5
	MinCount     = 1
	MaxCount     = 15

	// requestCountPadding is how many extra questions are requested
	// from the model beyond the user's count, to absorb the attrition
	// of structural validation. The padded total is capped.
	requestCountPadding = 3
	maxRequestCount     = 20
)

// Topic trims, defaults and bounds the quiz/explanation topic.
func Topic(raw string) string {
	topic := strings.TrimSpace(raw)
	if topic == "" {
		return DefaultTopic
	}
	return truncate(topic, MaxTopicLen)
}

// Count parses the requested question count from whatever JSON value the
// client sent (number, numeric string, anything else) and clamps it to
// [MinCount, MaxCount].
func Count(raw any) int {
	count := DefaultCount
	switch v := raw.(type) {
	case float64:
		count = int(v)
	case int:
		count = v
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			count = n
		}
	}

	if count < MinCount {
		return MinCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// RequestCount returns how many questions to ask the model for: the
// sanitized count plus padding for expected validation attrition.
func RequestCount(count int) int {
	padded := count + requestCountPadding
	if padded > maxRequestCount {
		return maxRequestCount
	}
	return padded
}

// Snippet trims and bounds the highlighted text for the explanation
// pipeline. Blank-snippet rejection is the caller's concern.
func Snippet(raw string) string {
	return truncate(strings.TrimSpace(raw), MaxSnippetLen)
}

// truncate cuts s to at most n runes. Not word-aware.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
