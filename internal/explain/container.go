package explain

import "github.com/rodrigoqf/quizforge/internal/llm"

type ExplainContainer struct {
	Service Service
	Handler *Handler
}

func NewExplainContainer(provider llm.Provider, credentialPresent bool) *ExplainContainer {
	service := NewService(provider)
	handler := NewHandler(service, credentialPresent)

	return &ExplainContainer{
		Service: service,
		Handler: handler,
	}
}
