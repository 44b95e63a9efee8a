package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rodrigoqf/quizforge/internal/config"
	"github.com/rodrigoqf/quizforge/internal/llm"
	"github.com/rodrigoqf/quizforge/internal/sanitize"
)

var (
	// ErrEmptyText is a client error: the explain endpoint was called
	// with a blank snippet. No model call is attempted.
	ErrEmptyText = errors.New("text is required")

	// ErrEmptyExplanation means the model call succeeded but produced
	// no content.
	ErrEmptyExplanation = errors.New("model returned an empty explanation")
)

type Service interface {
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResult, error)
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) Explain(ctx context.Context, req ExplainRequest) (*ExplainResult, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	topic := sanitize.Topic(req.Topic)
	text := sanitize.Snippet(req.Text)
	difficulty := sanitize.ParseDifficulty(req.Difficulty)

	log.WithField("topic", topic).
		WithField("difficulty", difficulty).
		Info("generating explanation")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		User:   BuildExplainPrompt(topic, text, difficulty),
	})
	if err != nil {
		return nil, fmt.Errorf("explanation: %w", err)
	}

	explanation := strings.TrimSpace(resp.Content)
	if explanation == "" {
		return nil, ErrEmptyExplanation
	}

	return &ExplainResult{
		Topic:       topic,
		Explanation: explanation,
	}, nil
}
