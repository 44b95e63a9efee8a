package explain

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

func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("undecodable explain request body")
		config.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}

	result, err := h.service.Explain(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			config.JSON(w, http.StatusBadRequest, map[string]string{
				"error": "text is required",
			})
			return
		}

		log.WithError(err).Error("explanation failed")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to generate explanation",
			"debug": llm.Classify(err, h.credentialPresent),
		})
		return
	}

	config.JSON(w, http.StatusOK, result)
}
