package domain

import "github.com/google/uuid"

// MaxSelectionLen is the hard cap on reconstructed selection text.
// Longer selections are rejected before any expression is created.
const MaxSelectionLen = 250

// SelectionContext carries everything the word-action layer needs about the
// token a user interacted with. It is assembled from the live document, never
// scraped back out of rendered markup.
type SelectionContext struct {
	TextID    int
	Position  int
	Text      string
	WordCount int
	Hex       string
	Status    Status
	WordID    *uuid.UUID
}

// HasWordID reports whether the selection refers to a saved term.
func (s SelectionContext) HasWordID() bool {
	return s.WordID != nil && *s.WordID != uuid.Nil
}

// MultiWordDraft describes a span of words selected for expression creation.
// Text is the reconstructed surface; WordCount counts words only, fillers
// between them are implied.
type MultiWordDraft struct {
	TextID    int
	Position  int
	Text      string
	WordCount int
}

// MultiWordUpdate is a partial edit of a saved expression. Nil fields stay
// untouched.
type MultiWordUpdate struct {
	Translation  *string
	Romanization *string
	Status       *Status
}

// QuickCreateResult is what the API returns for one-keystroke term creation:
// the persisted id and the server-side term fingerprint.
type QuickCreateResult struct {
	TermID uuid.UUID
	Hex    string
}

// IncrementResult describes a relative status change applied to a term.
// Set carries the resulting absolute status once the change is resolved.
type IncrementResult struct {
	Set       Status
	Increment int
}

// MultiWordResult is the acknowledgement for a created or updated expression.
type MultiWordResult struct {
	TermID uuid.UUID
	TermLc string
}
