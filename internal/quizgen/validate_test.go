package quizgen

import (
	"errors"
	"testing"
)

func TestValidateQuestions_MixedBatch(t *testing.T) {
	raw := `[
		{"id": "intro", "question": "What is Go?", "options": ["A language", "A database", "An editor", "An OS"], "correctOption": "A", "explanation": "Go is a programming language."},
		{"question": "", "options": ["a", "b", "c", "d"], "correctOption": "B"},
		{"question": "Too few options", "options": ["a", "b", "c"], "correctOption": "B"},
		{"question": "Who maintains Go?", "options": ["Google", "Apple", "Mozilla", "Oracle"], "correctOption": "Z"},
		{"question": "Missing options entirely", "correctOption": "C"}
	]`

	questions, err := ValidateQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 surviving questions, got %d", len(questions))
	}

	if questions[0].ID != "intro" {
		t.Errorf("expected original id kept, got %q", questions[0].ID)
	}
	if questions[0].CorrectOption != "A" {
		t.Errorf("expected correctOption A, got %q", questions[0].CorrectOption)
	}

	// Fallback id is positional within the surviving list, not the raw one.
	if questions[1].ID != "q2" {
		t.Errorf("expected fallback id q2, got %q", questions[1].ID)
	}
	// Invalid correctOption defaults to A.
	if questions[1].CorrectOption != "A" {
		t.Errorf("expected default correctOption A, got %q", questions[1].CorrectOption)
	}
	if questions[1].Explanation != "" {
		t.Errorf("expected empty explanation, got %q", questions[1].Explanation)
	}
}

func TestValidateQuestions_LowercaseCorrectOption(t *testing.T) {
	raw := `[{"question": "Q?", "options": ["1", "2", "3", "4"], "correctOption": "c"}]`
	questions, err := ValidateQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].CorrectOption != "C" {
		t.Errorf("expected C, got %q", questions[0].CorrectOption)
	}
}

func TestValidateQuestions_NumericOptionCoerced(t *testing.T) {
	raw := `[{"question": "2+2?", "options": [3, 4, 5, 6], "correctOption": "B"}]`
	questions, err := ValidateQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Options[1] != "4" {
		t.Errorf("expected coerced option \"4\", got %q", questions[0].Options[1])
	}
}

func TestValidateQuestions_FencedJSON(t *testing.T) {
	raw := "```json\n[{\"question\": \"Q?\", \"options\": [\"a\", \"b\", \"c\", \"d\"], \"correctOption\": \"D\"}]\n```"
	questions, err := ValidateQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestValidateQuestions_NotJSON(t *testing.T) {
	_, err := ValidateQuestions("not json")
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestValidateQuestions_EmptyArray(t *testing.T) {
	_, err := ValidateQuestions("[]")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}
}

func TestValidateQuestions_AllMalformed(t *testing.T) {
	raw := `[{"question": "", "options": ["a", "b", "c", "d"]}, {"question": "Q?", "options": []}]`
	_, err := ValidateQuestions(raw)
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}
}
