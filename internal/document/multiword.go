package document

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// InsertMultiWord overlays a multi-word expression on the base sequence.
// The head position must hold a word token, the covered range must stay
// inside the document, and no other expression may already cover any of it.
func (d *Document) InsertMultiWord(mw domain.Token) error {
	d.mu.Lock()
	err := d.insertMultiWordLocked(mw)
	d.mu.Unlock()
	if err != nil {
		return err
	}

	d.emit(Patch{Kind: PatchInsert, Hex: mw.Hex, Token: &mw})
	return nil
}

func (d *Document) insertMultiWordLocked(mw domain.Token) error {
	if !mw.IsMultiWord || mw.WordCount < 2 {
		return fmt.Errorf("insert %q at %d: %w", mw.Text, mw.Position, domain.ErrNotMultiWord)
	}
	head, ok := d.items[mw.Position]
	if !ok || !d.base[head].IsWord() {
		return fmt.Errorf("insert at %d: head is not a word: %w", mw.Position, domain.ErrNotFound)
	}
	end := mw.EndPosition()
	if _, ok := d.items[end]; !ok {
		return fmt.Errorf("insert at %d: range end %d outside document: %w", mw.Position, end, domain.ErrNotFound)
	}
	for pos := mw.Position; pos <= end; pos++ {
		if _, taken := d.covered[pos]; taken {
			return fmt.Errorf("insert at %d: position %d: %w", mw.Position, pos, domain.ErrPositionTaken)
		}
	}
	if _, dup := d.mwords[mw.Position]; dup {
		return fmt.Errorf("insert at %d: %w", mw.Position, domain.ErrPositionTaken)
	}

	if mw.Hex == "" {
		mw.Hex = domain.TermHex(mw.Text)
	}
	mw.IsNotWord = false
	if mw.SentenceID == 0 {
		mw.SentenceID = d.base[head].SentenceID
	}
	if mw.CharPos == 0 {
		mw.CharPos = d.base[head].CharPos
	}

	d.mwords[mw.Position] = &mw
	d.mwByHex[mw.Hex] = append(d.mwByHex[mw.Hex], mw.Position)
	for pos := mw.Position; pos <= end; pos++ {
		if _, ok := d.items[pos]; ok {
			d.covered[pos] = mw.Position
		}
	}
	return nil
}

// ApplySavedTerm overlays every free occurrence of a saved multi-word term
// onto the document. An occurrence is a run of WordCount consecutive base
// words inside one sentence whose joined surface shares the term's
// fingerprint, both space-joined and bare-joined forms are tried. Runs
// already covered by another expression are skipped. Returns the head
// positions that received an overlay.
func (d *Document) ApplySavedTerm(term domain.Token) []int {
	if !term.IsMultiWord || term.WordCount < 2 {
		return nil
	}
	if term.Hex == "" {
		term.Hex = domain.TermHex(term.Text)
	}

	d.mu.Lock()
	var heads []int
	var inserted []domain.Token
	words := d.wordRunLocked()
	for i := 0; i+term.WordCount <= len(words); i++ {
		run := words[i : i+term.WordCount]
		if !runMatches(run, term) {
			continue
		}
		mw := term
		mw.Position = run[0].Position
		if err := d.insertMultiWordLocked(mw); err != nil {
			continue
		}
		heads = append(heads, mw.Position)
		inserted = append(inserted, mw)
	}
	d.mu.Unlock()

	for i := range inserted {
		d.emit(Patch{Kind: PatchInsert, Hex: inserted[i].Hex, Token: &inserted[i]})
	}
	return heads
}

func (d *Document) wordRunLocked() []domain.Token {
	out := make([]domain.Token, 0, len(d.base)/2+1)
	for _, tok := range d.base {
		if tok.IsWord() {
			out = append(out, tok)
		}
	}
	return out
}

func runMatches(run []domain.Token, term domain.Token) bool {
	parts := make([]string, len(run))
	for i, tok := range run {
		// The run must stay adjacent and inside one sentence; a skipped
		// word slot or a sentence break ends any candidate occurrence.
		if i > 0 && (tok.Position != run[i-1].Position+2 || tok.SentenceID != run[0].SentenceID) {
			return false
		}
		parts[i] = tok.Text
	}
	if domain.TermHex(strings.Join(parts, " ")) == term.Hex {
		return true
	}
	return domain.TermHex(strings.Join(parts, "")) == term.Hex
}

// RemoveMultiWord removes the expression overlay headed at position and
// uncovers its constituents.
func (d *Document) RemoveMultiWord(position int) (domain.Token, error) {
	d.mu.Lock()
	mw, err := d.removeMultiWordLocked(position)
	d.mu.Unlock()
	if err != nil {
		return domain.Token{}, err
	}

	d.emit(Patch{Kind: PatchRemove, Hex: mw.Hex, Token: &mw})
	return mw, nil
}

func (d *Document) removeMultiWordLocked(position int) (domain.Token, error) {
	mwp, ok := d.mwords[position]
	if !ok {
		return domain.Token{}, fmt.Errorf("remove at %d: %w", position, domain.ErrNotFound)
	}
	mw := *mwp
	delete(d.mwords, position)
	for pos := mw.Position; pos <= mw.EndPosition(); pos++ {
		delete(d.covered, pos)
	}
	heads := d.mwByHex[mw.Hex]
	for i, head := range heads {
		if head == position {
			d.mwByHex[mw.Hex] = append(heads[:i], heads[i+1:]...)
			break
		}
	}
	if len(d.mwByHex[mw.Hex]) == 0 {
		delete(d.mwByHex, mw.Hex)
	}
	return mw, nil
}
