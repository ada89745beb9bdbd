// Package document holds the live token model of one reading session. The
// model is authoritative: interaction layers mutate it through the Update*
// methods and render layers follow it through patches, never the other way
// around.
package document

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// Document is the materialized token sequence of one text. Word tokens sit on
// odd positions, punctuation/whitespace fillers on even ones. Multi-word
// expressions overlay a run of base tokens and hide them while present.
type Document struct {
	mu     sync.RWMutex
	textID int

	items map[int]int // position -> index into base
	base  []domain.Token

	byHex   map[string][]int // hex -> base indexes of word tokens
	mwords  map[int]*domain.Token
	mwByHex map[string][]int // hex -> multi-word head positions
	covered map[int]int      // position -> covering multi-word head

	totalChars int

	subs   map[int]func(Patch)
	nextID int

	entropy *ulid.MonotonicEntropy
	seq     map[string]ulid.ULID
}

// New validates and materializes a token sequence. Tokens must arrive in
// ascending position order; multi-word tokens may be interleaved and are
// applied as overlays after the base sequence is built.
func New(textID int, tokens []domain.Token) (*Document, error) {
	d := &Document{
		textID:  textID,
		items:   make(map[int]int, len(tokens)),
		base:    make([]domain.Token, 0, len(tokens)),
		byHex:   make(map[string][]int),
		mwords:  make(map[int]*domain.Token),
		mwByHex: make(map[string][]int),
		covered: make(map[int]int),
		subs:    make(map[int]func(Patch)),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		seq:     make(map[string]ulid.ULID),
	}

	var fieldErrs []domain.FieldError
	var mws []domain.Token
	lastPos := -1 // a document may open with a filler at position 0

	for _, tok := range tokens {
		field := fmt.Sprintf("tokens[%d]", tok.Position)
		if tok.IsMultiWord {
			mws = append(mws, tok)
			continue
		}
		if tok.Position <= lastPos {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "positions must be strictly increasing"})
			continue
		}
		lastPos = tok.Position
		if tok.IsNotWord {
			if tok.Position%2 != 0 {
				fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "filler on an odd position"})
				continue
			}
			if tok.Status != domain.StatusUnknown {
				fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "filler must not carry a status"})
				continue
			}
		} else {
			if tok.Position%2 != 1 {
				fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "word on an even position"})
				continue
			}
			if !tok.Status.IsValid() {
				fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "invalid status"})
				continue
			}
			if tok.Hex == "" {
				tok.Hex = domain.TermHex(tok.Text)
			}
			if tok.WordCount == 0 {
				tok.WordCount = 1
			}
		}
		d.items[tok.Position] = len(d.base)
		d.base = append(d.base, tok)
		if end := tok.CharPos + utf8.RuneCountInString(tok.Text); end > d.totalChars {
			d.totalChars = end
		}
	}

	for i, tok := range d.base {
		if tok.IsWord() {
			d.byHex[tok.Hex] = append(d.byHex[tok.Hex], i)
		}
	}

	for _, mw := range mws {
		if err := d.insertMultiWordLocked(mw); err != nil {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field:   fmt.Sprintf("tokens[%d]", mw.Position),
				Message: err.Error(),
			})
		}
	}

	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationErrors(fieldErrs)
	}
	return d, nil
}

// TextID returns the id of the text this document materializes.
func (d *Document) TextID() int { return d.textID }

// Len returns the number of base tokens, fillers included.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.base)
}

// TotalChars returns the character length of the source text, used for
// audio position seeking.
func (d *Document) TotalChars() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.totalChars
}

// ItemAt returns the base token at a position, ignoring overlays.
func (d *Document) ItemAt(position int) (domain.Token, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.itemAtLocked(position)
}

func (d *Document) itemAtLocked(position int) (domain.Token, bool) {
	i, ok := d.items[position]
	if !ok {
		return domain.Token{}, false
	}
	return d.base[i], true
}

// TokenAt returns the token owning a position: the multi-word expression
// covering it when one exists, the base token otherwise.
func (d *Document) TokenAt(position int) (domain.Token, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if head, ok := d.covered[position]; ok {
		return *d.mwords[head], true
	}
	return d.itemAtLocked(position)
}

// WordsByHex returns every token carrying the given term fingerprint,
// multi-word overlays included.
func (d *Document) WordsByHex(hex string) []domain.Token {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Token, 0, len(d.byHex[hex])+len(d.mwByHex[hex]))
	for _, i := range d.byHex[hex] {
		out = append(out, d.base[i])
	}
	for _, head := range d.mwByHex[hex] {
		out = append(out, *d.mwords[head])
	}
	return out
}

// Snapshot returns the full render stream in position order: each multi-word
// expression ahead of its head token, covered base tokens flagged hidden.
func (d *Document) Snapshot() []domain.Token {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Token, 0, len(d.base)+len(d.mwords))
	for _, tok := range d.base {
		if mw, ok := d.mwords[tok.Position]; ok {
			out = append(out, *mw)
		}
		if _, ok := d.covered[tok.Position]; ok {
			tok.Hidden = true
		}
		out = append(out, tok)
	}
	return out
}

// VisibleWords returns the word tokens a reader actually sees, in position
// order: multi-word expressions at their head, base words not covered by one.
func (d *Document) VisibleWords() []domain.Token {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Token, 0, len(d.base)/2+1)
	for _, tok := range d.base {
		if mw, ok := d.mwords[tok.Position]; ok {
			out = append(out, *mw)
		}
		if !tok.IsWord() || tok.Hidden {
			continue
		}
		if _, ok := d.covered[tok.Position]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// SentenceText reconstructs the display text of one sentence from the base
// stream. Missing fillers between adjacent words become a single space;
// paragraph marks are dropped.
func (d *Document) SentenceText(sentenceID int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var b strings.Builder
	lastWasWord := false
	for _, tok := range d.base {
		if tok.SentenceID != sentenceID {
			continue
		}
		if tok.IsWord() {
			if lastWasWord {
				b.WriteString(" ")
			}
			b.WriteString(tok.Text)
			lastWasWord = true
			continue
		}
		if tok.Text == "" || tok.Text == domain.ParagraphMark {
			continue
		}
		b.WriteString(tok.Text)
		lastWasWord = false
	}
	return strings.TrimSpace(b.String())
}

// UpdateWordStatus sets status and word id on every token sharing hex and
// emits one status patch. Re-applying the same update is safe. Returns the
// number of tokens touched.
func (d *Document) UpdateWordStatus(hex string, status domain.Status, wordID *uuid.UUID) int {
	d.mu.Lock()
	positions := make([]int, 0, len(d.byHex[hex])+len(d.mwByHex[hex]))
	for _, i := range d.byHex[hex] {
		d.base[i].Status = status
		d.base[i].WordID = wordID
		positions = append(positions, d.base[i].Position)
	}
	for _, head := range d.mwByHex[hex] {
		d.mwords[head].Status = status
		d.mwords[head].WordID = wordID
		positions = append(positions, head)
	}
	d.mu.Unlock()

	if len(positions) > 0 {
		d.emit(Patch{Kind: PatchStatus, Hex: hex, Positions: positions, Status: status, WordID: wordID})
	}
	return len(positions)
}

// UpdateWordTranslation sets translation and romanization on every token
// sharing hex and emits one translation patch.
func (d *Document) UpdateWordTranslation(hex, translation, romanization string) int {
	d.mu.Lock()
	positions := make([]int, 0, len(d.byHex[hex])+len(d.mwByHex[hex]))
	for _, i := range d.byHex[hex] {
		d.base[i].Translation = translation
		d.base[i].Romanization = romanization
		positions = append(positions, d.base[i].Position)
	}
	for _, head := range d.mwByHex[hex] {
		d.mwords[head].Translation = translation
		d.mwords[head].Romanization = romanization
		positions = append(positions, head)
	}
	d.mu.Unlock()

	if len(positions) > 0 {
		d.emit(Patch{Kind: PatchTranslation, Hex: hex, Positions: positions, Translation: translation, Romanization: romanization})
	}
	return len(positions)
}

// ResetWord returns every token sharing hex to the unknown state: base words
// lose status, word id, translation and annotation; multi-word overlays are
// removed entirely since an expression exists only as a saved term.
func (d *Document) ResetWord(hex string) int {
	d.mu.Lock()
	positions := make([]int, 0, len(d.byHex[hex]))
	for _, i := range d.byHex[hex] {
		d.base[i].Status = domain.StatusUnknown
		d.base[i].WordID = nil
		d.base[i].Translation = ""
		d.base[i].Romanization = ""
		d.base[i].Ann = ""
		positions = append(positions, d.base[i].Position)
	}
	heads := append([]int(nil), d.mwByHex[hex]...)
	var removed []Patch
	for _, head := range heads {
		if mw, err := d.removeMultiWordLocked(head); err == nil {
			removed = append(removed, Patch{Kind: PatchRemove, Hex: hex, Token: &mw})
		}
	}
	d.mu.Unlock()

	if len(positions) > 0 {
		d.emit(Patch{Kind: PatchReset, Hex: hex, Positions: positions, Status: domain.StatusUnknown})
	}
	for _, p := range removed {
		d.emit(p)
	}
	return len(positions) + len(removed)
}
