package selection

import "context"

// ---------------------------------------------------------------------------
// 2. Drag (legacy anchor-and-extend gesture)
// ---------------------------------------------------------------------------

// Drag tracks the legacy gesture: mouse down anchors a position, hovering
// extends or retracts the marked range in either direction. Finishing a drag
// feeds the marked words through the same path as a native selection, so
// both gestures reconstruct identical text for the same token range.
type Drag struct {
	engine *Engine
	anchor int
	focus  int
}

// StartDrag anchors a drag gesture at a position.
func (e *Engine) StartDrag(anchor int) *Drag {
	return &Drag{engine: e, anchor: anchor, focus: anchor}
}

// ExtendTo moves the hover end of the gesture. Retreating past earlier
// positions unmarks them.
func (d *Drag) ExtendTo(position int) {
	d.focus = position
}

// Marked returns the word positions currently inside the gesture range.
func (d *Drag) Marked() []int {
	lo, hi := d.anchor, d.focus
	if lo > hi {
		lo, hi = hi, lo
	}
	var words []int
	for pos := lo; pos <= hi; pos++ {
		tok, ok := d.engine.tokens.ItemAt(pos)
		if !ok || !tok.IsWord() {
			continue
		}
		words = append(words, pos)
	}
	return words
}

// Finish resolves the gesture through Select.
func (d *Drag) Finish(ctx context.Context) (Result, error) {
	return d.engine.Select(ctx, d.Marked())
}
