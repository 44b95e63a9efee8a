package quizgen

import (
	"context"
	"fmt"

	"github.com/rodrigoqf/quizforge/internal/config"
	"github.com/rodrigoqf/quizforge/internal/llm"
	"github.com/rodrigoqf/quizforge/internal/sanitize"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*QuizResult, error)
}

type service struct {
	provider llm.Provider
	pricing  llm.ModelCost
}

func NewService(provider llm.Provider, pricing llm.ModelCost) Service {
	return &service{provider: provider, pricing: pricing}
}

// Generate runs the whole pipeline: sanitize, prompt, one model call,
// validate, trim, cost. The model is asked for a few more questions
// than the user wants so that validation attrition still leaves enough;
// survivors beyond the sanitized count are trimmed off.
func (s *service) Generate(ctx context.Context, req GenerateRequest) (*QuizResult, error) {
	log := config.WithContext(ctx)

	topic := sanitize.Topic(req.Topic)
	count := sanitize.Count(req.Count)
	difficulty := sanitize.ParseDifficulty(req.Difficulty)
	requestCount := sanitize.RequestCount(count)

	log.WithField("topic", topic).
		WithField("count", count).
		WithField("difficulty", difficulty).
		Info("generating quiz")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		User:   BuildQuizPrompt(topic, requestCount, difficulty),
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	questions, err := ValidateQuestions(resp.Content)
	if err != nil {
		// The raw output stays server-side for diagnosis; it is never
		// returned to the client.
		log.WithError(err).Errorf("rejected model output:\n%s", resp.Content)
		return nil, err
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	usage := resp.Usage
	cost := llm.EstimateCost(usage.PromptTokens, usage.CompletionTokens, s.pricing.InputPerMTok, s.pricing.OutputPerMTok)

	log.WithField("questions", len(questions)).
		WithField("total_tokens", usage.TotalTokens).
		Info("quiz generated")

	return &QuizResult{
		Topic:      topic,
		Difficulty: string(difficulty),
		Questions:  questions,
		Usage: QuizUsage{
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
			EstimatedCostUSD: cost,
		},
	}, nil
}
