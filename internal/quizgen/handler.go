package quizgen

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rodrigoqf/quizforge/internal/config"
	"github.com/rodrigoqf/quizforge/internal/llm"
)

type Handler struct {
	service           Service
	credentialPresent bool
}

func NewHandler(s Service, credentialPresent bool) *Handler {
	return &Handler{service: s, credentialPresent: credentialPresent}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("undecodable quiz request body")
		config.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("quiz generation failed")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": errorText(err),
			"debug": llm.Classify(err, h.credentialPresent),
		})
		return
	}

	config.JSON(w, http.StatusOK, result)
}

// errorText picks the generic user-facing message for a pipeline
// failure. The classified detail goes into the debug field instead.
func errorText(err error) string {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return "the model returned malformed quiz data"
	case errors.Is(err, ErrNoValidQuestions):
		return "the model returned no valid questions"
	}
	return "failed to generate quiz"
}
