package wordaction

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// Sound is the audible cue played after an action resolves.
type Sound int

const (
	SoundSuccess Sound = iota + 1
	SoundFailure
)

// Result is how every action reports back to its trigger. Errors never
// propagate past the action boundary; a failed Result carries the message
// already shown to the reader.
type Result struct {
	Success bool
	Error   string
	Message string

	// Stale marks a response that arrived after a newer request for the
	// same term began; the model was left for the newer request to settle.
	Stale bool

	// TermID and Hex identify the entry an action created.
	TermID *uuid.UUID
	Hex    string
	Status domain.Status
}

func fail(message string) Result {
	return Result{Error: message}
}
