package explain

import (
	"fmt"

	"github.com/rodrigoqf/quizforge/internal/sanitize"
)

const systemPrompt = `You are a study assistant that explains highlighted text from practice exams.

Formatting rules for every answer:
- Start with a single **Summary** line.
- Follow with a paragraph titled **In simple terms** of 2-3 sentences.
- Add at most 3 bullet points under **Why it matters**.
- Use Markdown, but never code blocks.
- Target 150-180 words in total.
- Explain only; do not quiz the reader or ask questions back.`

// toneDirective selects the reading level embedded in the user prompt
// for each level of the closed difficulty set.
var toneDirective = map[sanitize.Difficulty]string{
	sanitize.Beginner:     "Use plain language and avoid jargon; the reader is new to this topic.",
	sanitize.Intermediate: "Mix plain language with the proper technical terms, defining them briefly.",
	sanitize.Expert:       "Use precise technical language and assume prior knowledge of the topic.",
}

// BuildExplainPrompt renders the user message for the explanation
// pipeline. Pure with respect to its sanitized inputs.
func BuildExplainPrompt(topic, text string, difficulty sanitize.Difficulty) string {
	return fmt.Sprintf(
		"The reader is studying %q and highlighted the following text:\n\n%q\n\n%s "+
			"Explain the highlighted text following the formatting rules from the system prompt.",
		topic, text, toneDirective[difficulty],
	)
}
