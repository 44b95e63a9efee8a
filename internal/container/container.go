package container

import (
	"context"
	"fmt"

	"github.com/rodrigoqf/quizforge/internal/config"
	"github.com/rodrigoqf/quizforge/internal/explain"
	"github.com/rodrigoqf/quizforge/internal/llm"
	"github.com/rodrigoqf/quizforge/internal/quizgen"
)

type Container struct {
	Config           *config.Config
	Provider         llm.Provider
	QuizGenContainer *quizgen.QuizGenContainer
	ExplainContainer *explain.ExplainContainer
}

func New(ctx context.Context) (*Container, error) {
	cfg := config.Load()

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pricing := resolvePricing(cfg)

	return &Container{
		Config:           cfg,
		Provider:         provider,
		QuizGenContainer: quizgen.NewQuizGenContainer(provider, pricing, cfg.CredentialPresent),
		ExplainContainer: explain.NewExplainContainer(provider, cfg.CredentialPresent),
	}, nil
}

// newProvider selects the text-generation backend. A missing API key is
// not fatal here: the server boots with a disabled provider and every
// request surfaces the configuration diagnostic instead.
func newProvider(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	if !cfg.CredentialPresent {
		return llm.NewDisabledProvider(), nil
	}

	switch cfg.Provider {
	case "gemini":
		return llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.Model)
	case "openai":
		return llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	case "mock":
		return llm.NewMockProvider(), nil
	}
	return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
}

// resolvePricing prefers explicit env prices, then the pricing table by
// model id. Unknown models estimate a cost of zero rather than failing.
func resolvePricing(cfg *config.Config) llm.ModelCost {
	if cfg.InputPricePerMTok > 0 || cfg.OutputPricePerMTok > 0 {
		return llm.ModelCost{
			InputPerMTok:  cfg.InputPricePerMTok,
			OutputPerMTok: cfg.OutputPricePerMTok,
		}
	}
	if c := llm.LookupCost(cfg.Model); c != nil {
		return *c
	}
	return llm.ModelCost{}
}
