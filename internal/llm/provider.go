package llm

import "context"

// Provider is the text-generation boundary. One call per request, no
// retries and no streaming; failures come back as a *CallError.
type Provider interface {
	// Generate sends the system and user messages to the model and
	// returns the raw text content plus normalized token usage.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request carries the two messages of a single-turn generation.
type Request struct {
	System string
	User   string
}

// Response holds the model's raw text output and token usage.
type Response struct {
	Content string
	Usage   Usage
}

// DisabledProvider stands in when no API key is configured. The server
// still boots and every generation attempt fails with a classifiable
// error.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider { return &DisabledProvider{} }

func (p *DisabledProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	return nil, &CallError{Message: "model provider is not configured"}
}

func (p *DisabledProvider) ModelID() string { return "disabled" }
