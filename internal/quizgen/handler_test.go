package quizgen

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoqf/quizforge/internal/llm"
)

func newTestHandler(mock *llm.MockProvider, credentialPresent bool) *Handler {
	svc := NewService(mock, llm.ModelCost{InputPerMTok: 0.25, OutputPerMTok: 2.0})
	return NewHandler(svc, credentialPresent)
}

func postQuiz(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.GenerateQuiz(rec, req)
	return rec
}

func TestGenerateQuiz_OK(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionsJSON(t, 6),
		Usage:   llm.NewUsage(1000, 500),
	})
	h := newTestHandler(mock, true)

	rec := postQuiz(h, `{"topic": "rivers", "count": 3, "difficulty": "beginner"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result QuizResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "rivers", result.Topic)
	assert.Equal(t, "beginner", result.Difficulty)
	assert.Len(t, result.Questions, 3)
	for _, q := range result.Questions {
		assert.Len(t, q.Options, 4)
		assert.Contains(t, []string{"A", "B", "C", "D"}, q.CorrectOption)
	}
	assert.Equal(t, 0.001250, result.Usage.EstimatedCostUSD)
}

func TestGenerateQuiz_DefaultsEverything(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionsJSON(t, 8)})
	h := newTestHandler(mock, true)

	rec := postQuiz(h, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result QuizResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "general knowledge", result.Topic)
	assert.Equal(t, "beginner", result.Difficulty)
	assert.Len(t, result.Questions, 5)
}

func TestGenerateQuiz_BadBody(t *testing.T) {
	mock := llm.NewMockProvider()
	h := newTestHandler(mock, true)

	rec := postQuiz(h, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerateQuiz_MalformedModelOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "not json"})
	h := newTestHandler(mock, true)

	rec := postQuiz(h, `{"topic": "rivers"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "the model returned malformed quiz data", body["error"])
	assert.NotEmpty(t, body["debug"])
	// The raw model output never reaches the client.
	assert.NotContains(t, rec.Body.String(), "not json")
}

func TestGenerateQuiz_NoValidQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "[]"})
	h := newTestHandler(mock, true)

	rec := postQuiz(h, `{"topic": "rivers"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "the model returned no valid questions", body["error"])
}

func TestGenerateQuiz_MissingCredential(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.CallError{Status: 503, Message: "whatever the backend says"},
	})
	h := newTestHandler(mock, false)

	rec := postQuiz(h, `{"topic": "rivers"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Configuration takes precedence over whatever the call returned.
	assert.Equal(t, llm.MsgMissingCredential, body["debug"])
}
