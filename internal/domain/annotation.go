package domain

import (
	"strconv"

	"github.com/google/uuid"
)

// Annotation is a previously saved, position-indexed translation override.
// Annotations are loaded once per document view and consumed read-only by the
// annotation merger; the engine never mutates the set itself.
type Annotation struct {
	// Term is the surface recorded when the annotation was saved. It is kept
	// for display and export but takes no part in matching.
	Term   string
	WordID uuid.UUID
	Text   string
}

// AnnotationSet holds annotations keyed by the string form of the token
// position they were saved at, matching the stored wire shape.
type AnnotationSet map[string]Annotation

// At returns the annotation saved at the given position, if any.
func (a AnnotationSet) At(position int) (Annotation, bool) {
	ann, ok := a[strconv.Itoa(position)]
	return ann, ok
}
