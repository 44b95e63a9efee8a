package quizgen

import (
	"fmt"

	"github.com/rodrigoqf/quizforge/internal/sanitize"
)

const systemPrompt = `You are a generator of multiple-choice practice questions for a study application.

Your role is to create clear, challenging questions aimed at real learning.

Rules:
1. Each question must have exactly one correct answer.
2. Each question must have exactly 4 answer options.
3. Option text must not start with a letter prefix such as "A)" or "B.".
4. Distribute the correct option fairly across A, B, C and D over the whole set; do not favor one letter.
5. Distractors must be plausible: wrong but reasonable. The correct option must not stand out by being longer or more technical.
6. The explanation must be brief, clear and objective, and must never be revealed in the question text.
7. Respond with pure, valid JSON only. No markdown, no text outside the JSON.

Expected JSON format:

[
  {
    "id": "q1",
    "question": "<question text>",
    "options": [
      "<option text>",
      "<option text>",
      "<option text>",
      "<option text>"
    ],
    "correctOption": "C",
    "explanation": "<brief explanation of why this option is correct>"
  }
]`

// difficultyGuidance selects the guidance sentence embedded in the user
// prompt for each level of the closed difficulty set.
var difficultyGuidance = map[sanitize.Difficulty]string{
	sanitize.Beginner:     "Focus on fundamentals: core definitions, basic concepts and direct recall.",
	sanitize.Intermediate: "Focus on applied understanding: comparisons, practical use cases and interpretation of concepts.",
	sanitize.Expert:       "Focus on multi-step reasoning, analysis and subtle distinctions between ideas. Do not resort to obscure trivia.",
}

// BuildQuizPrompt renders the user message for the generation pipeline.
// Pure with respect to its sanitized inputs.
func BuildQuizPrompt(topic string, requestCount int, difficulty sanitize.Difficulty) string {
	return fmt.Sprintf(
		"Generate exactly %d multiple-choice questions about the topic %q at %q difficulty. %s "+
			"Each question must have exactly 4 options and exactly one correct option. "+
			"Follow the JSON format from the system prompt exactly and return only the JSON array.",
		requestCount, topic, difficulty, difficultyGuidance[difficulty],
	)
}
