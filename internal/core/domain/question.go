package domain

// Question is the common record produced by every question source adapter.
// Optional fields hold their zero value when the source did not provide them;
// formatting checks presence before rendering.
type Question struct {
	Text            string   // prompt body, normalized plain text
	Answer          string   // canonical answer
	Description     string   // accepted alternatives, commentary, difficulty note
	QuestionPreview []string // absolute image URLs shown before the question
	AnswerPreview   []string // absolute image URLs shown with the answer
	ID              int64    // source-assigned identifier, 0 when the source has none
}

// Displayable reports whether the record carries enough content to send.
func (q *Question) Displayable() bool {
	return q != nil && q.Text != ""
}

// PendingAnswer is the cache payload stored between delivering a question and
// the reveal-button press.
type PendingAnswer struct {
	Answer    string   `json:"answer,omitempty"`
	Preview   []string `json:"answerPreview,omitempty"`
	MessageID int      `json:"messageId,omitempty"`
}
