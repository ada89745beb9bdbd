package document

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// PatchKind discriminates model change notifications.
type PatchKind int

const (
	// PatchStatus: status/word-id changed on every token sharing Hex.
	PatchStatus PatchKind = iota + 1
	// PatchTranslation: translation/romanization changed on every token sharing Hex.
	PatchTranslation
	// PatchReset: tokens sharing Hex returned to the unknown state.
	PatchReset
	// PatchInsert: a multi-word overlay appeared; Token carries it.
	PatchInsert
	// PatchRemove: a multi-word overlay disappeared; Token carries it.
	PatchRemove
)

// Patch describes one applied model change. Subscribers receive patches
// after the model mutation completed, in application order.
type Patch struct {
	Kind         PatchKind
	Hex          string
	Positions    []int
	Status       domain.Status
	WordID       *uuid.UUID
	Translation  string
	Romanization string
	Token        *domain.Token
}

// Subscribe registers a patch listener and returns its cancel function.
// Listeners run synchronously on the mutating goroutine, outside the model
// lock, so they may read the document back.
func (d *Document) Subscribe(fn func(Patch)) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.subs[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.subs, id)
		d.mu.Unlock()
	}
}

func (d *Document) emit(p Patch) {
	d.mu.RLock()
	fns := make([]func(Patch), 0, len(d.subs))
	for _, fn := range d.subs {
		fns = append(fns, fn)
	}
	d.mu.RUnlock()

	for _, fn := range fns {
		fn(p)
	}
}
