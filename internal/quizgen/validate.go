package quizgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidJSON means the model's output could not be parsed at
	// all. Terminal for the request; there is no repair attempt.
	ErrInvalidJSON = errors.New("model response is not valid JSON")

	// ErrNoValidQuestions means the output parsed but every element
	// failed structural validation.
	ErrNoValidQuestions = errors.New("model response contained no valid questions")
)

// ValidateQuestions turns the model's raw text output into a cleaned,
// schema-conformant question list.
//
// Elements without question text or without exactly 4 options are
// dropped silently, never repaired. Survivors are normalized: string
// coercion for text fields, a positional fallback id (1-based over the
// surviving list) when the model omitted one, and "A" when
// correctOption is not one of A-D.
func ValidateQuestions(raw string) ([]Question, error) {
	clean := stripFences(raw)

	var items []map[string]any
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	questions := make([]Question, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(asString(item["question"]))
		rawOpts, ok := item["options"].([]any)
		if text == "" || !ok || len(rawOpts) != 4 {
			continue
		}

		options := make([]string, len(rawOpts))
		for i, opt := range rawOpts {
			options[i] = asString(opt)
		}

		id := strings.TrimSpace(asString(item["id"]))
		if id == "" {
			id = "q" + strconv.Itoa(len(questions)+1)
		}

		questions = append(questions, Question{
			ID:            id,
			Question:      text,
			Options:       options,
			CorrectOption: normalizeCorrectOption(asString(item["correctOption"])),
			Explanation:   asString(item["explanation"]),
		})
	}

	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return questions, nil
}

func normalizeCorrectOption(raw string) string {
	opt := strings.ToUpper(strings.TrimSpace(raw))
	switch opt {
	case "A", "B", "C", "D":
		return opt
	}
	return "A"
}

// stripFences removes a surrounding markdown code fence. Models wrap
// JSON in ```json fences even when told not to.
func stripFences(s string) string {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}

// asString coerces whatever JSON value the model produced into text.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
