package quizgen

import "github.com/rodrigoqf/quizforge/internal/llm"

type QuizGenContainer struct {
	Service Service
	Handler *Handler
}

func NewQuizGenContainer(provider llm.Provider, pricing llm.ModelCost, credentialPresent bool) *QuizGenContainer {
	service := NewService(provider, pricing)
	handler := NewHandler(service, credentialPresent)

	return &QuizGenContainer{
		Service: service,
		Handler: handler,
	}
}
