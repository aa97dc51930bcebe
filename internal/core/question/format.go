package question

import (
	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/markup"
)

// FormatQuestion renders a loaded question as MarkdownV2 text. The handout
// glyph and paragraph breaks in the question body survive escaping.
func FormatQuestion(q *domain.Question) string {
	return markup.Bold("Вопрос") + "\n\n" + markup.EscapeMarkdownV2(q.Text)
}

// FormatAnswer renders the answer with its optional description below. Links
// inside the description pass through escaping verbatim.
func FormatAnswer(q *domain.Question) string {
	text := markup.Bold("Ответ:") + " " + markup.EscapeMarkdownV2(q.Answer)

	if q.Description != "" {
		text += "\n\n" + markup.EscapeMarkdownV2(q.Description)
	}

	return text
}
