package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoqf/quizforge/internal/llm"
)

// questionsJSON builds a canned model response with n valid questions.
func questionsJSON(t *testing.T, n int) string {
	t.Helper()
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"id":            fmt.Sprintf("gen%d", i+1),
			"question":      fmt.Sprintf("Question %d?", i+1),
			"options":       []string{"one", "two", "three", "four"},
			"correctOption": "B",
			"explanation":   "because",
		}
	}
	b, err := json.Marshal(items)
	require.NoError(t, err)
	return string(b)
}

func TestService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionsJSON(t, 8),
		Usage:   llm.NewUsage(1000, 500),
	})
	svc := NewService(mock, llm.ModelCost{InputPerMTok: 0.25, OutputPerMTok: 2.0})

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Topic:      "  the krebs cycle ",
		Count:      float64(5),
		Difficulty: "EXPERT",
	})
	require.NoError(t, err)

	assert.Equal(t, "the krebs cycle", result.Topic)
	assert.Equal(t, "expert", result.Difficulty)
	// The model over-delivered 8; the result is trimmed to the count.
	assert.Len(t, result.Questions, 5)

	assert.Equal(t, 1000, result.Usage.PromptTokens)
	assert.Equal(t, 500, result.Usage.CompletionTokens)
	assert.Equal(t, 1500, result.Usage.TotalTokens)
	assert.Equal(t, 0.001250, result.Usage.EstimatedCostUSD)

	require.Equal(t, 1, mock.CallCount())
	// The model is asked for count+3 questions to absorb attrition.
	assert.Contains(t, mock.Calls[0].User, "exactly 8 multiple-choice questions")
}

func TestService_Generate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.CallError{Status: 429, Message: "quota exceeded"},
	})
	svc := NewService(mock, llm.ModelCost{})

	_, err := svc.Generate(context.Background(), GenerateRequest{Topic: "anything"})
	require.Error(t, err)

	var callErr *llm.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, 429, callErr.Status)
	// One attempt only; no retries.
	assert.Equal(t, 1, mock.CallCount())
}

func TestService_Generate_InvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "not json"})
	svc := NewService(mock, llm.ModelCost{})

	_, err := svc.Generate(context.Background(), GenerateRequest{Topic: "anything"})
	require.ErrorIs(t, err, ErrInvalidJSON)
	assert.Equal(t, 1, mock.CallCount())
}

func TestService_Generate_EmptyBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "[]"})
	svc := NewService(mock, llm.ModelCost{})

	_, err := svc.Generate(context.Background(), GenerateRequest{Topic: "anything"})
	require.ErrorIs(t, err, ErrNoValidQuestions)
}

func TestService_Generate_UnderDelivery(t *testing.T) {
	// Fewer survivors than requested is still a success.
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionsJSON(t, 2)})
	svc := NewService(mock, llm.ModelCost{})

	result, err := svc.Generate(context.Background(), GenerateRequest{Count: float64(10)})
	require.NoError(t, err)
	assert.Len(t, result.Questions, 2)
}
