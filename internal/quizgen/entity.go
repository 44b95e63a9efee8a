package quizgen

// GenerateRequest is the body of POST /api/generate-quiz. Count is
// deliberately untyped: clients send numbers, numeric strings or
// nothing, and the sanitizer sorts it out.
type GenerateRequest struct {
	Topic      string `json:"topic"`
	Count      any    `json:"count"`
	Difficulty string `json:"difficulty"`
}

// Question is one validated multiple-choice item. Every Question in a
// result has exactly 4 options and a CorrectOption in A-D.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
	Explanation   string   `json:"explanation"`
}

// QuizUsage reports token consumption and the derived cost estimate.
type QuizUsage struct {
	PromptTokens     int     `json:"promptTokens"`
	CompletionTokens int     `json:"completionTokens"`
	TotalTokens      int     `json:"totalTokens"`
	EstimatedCostUSD float64 `json:"estimatedCostUsd"`
}

// QuizResult is the successful response of the generation pipeline.
type QuizResult struct {
	Topic      string     `json:"topic"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
	Usage      QuizUsage  `json:"usage"`
}
