package domain

import "github.com/google/uuid"

// ParagraphMark is the filler text standing in for a paragraph break in the
// token stream; the renderer turns it into a line break.
const ParagraphMark = "¶"

// Token is one addressable unit of a tokenized text: a word, a multi-word
// expression, or a non-word filler (punctuation, paragraph marks).
//
// Word tokens sit on odd positions. The even slot between two words holds a
// filler token when the source text has punctuation there, and is simply
// unoccupied otherwise. A multi-word token keeps the position of its first
// constituent and covers the whole range [Position, Position+2*(WordCount-1)];
// while covered, the constituents remain in the stream but are hidden and no
// longer independently addressable.
type Token struct {
	Position     int
	Text         string
	IsMultiWord  bool
	WordCount    int
	IsNotWord    bool
	Status       Status
	WordID       *uuid.UUID
	Translation  string
	Romanization string

	// Ann is the per-occurrence annotation applied by the annotation merger,
	// kept on the token for display and later editing.
	Ann string

	// Hex is the normalized-term fingerprint shared by every occurrence of
	// the same term; status changes fan out across the whole Hex group.
	Hex string

	SentenceID int

	// CharPos is the rune offset of the token's first character in the
	// displayed text, used for audio seeking.
	CharPos int

	// Hidden marks tokens excluded from reading flow: constituents covered by
	// a multi-word expression, or fillers the display suppresses.
	Hidden bool
}

// IsWord reports whether the token carries learning state.
func (t *Token) IsWord() bool { return !t.IsNotWord }

// EndPosition returns the last word position the token occupies. For single
// words this is Position itself.
func (t *Token) EndPosition() int {
	if !t.IsMultiWord || t.WordCount <= 1 {
		return t.Position
	}
	return t.Position + 2*(t.WordCount-1)
}

// Covers reports whether pos falls inside the token's occupied range,
// including the even filler slots between constituents of a multi-word.
func (t *Token) Covers(pos int) bool {
	return pos >= t.Position && pos <= t.EndPosition()
}

// SameWordID reports whether the token's word id is set and equal to id.
func (t *Token) SameWordID(id uuid.UUID) bool {
	return t.WordID != nil && *t.WordID == id
}
