// Package selection derives multi-word expression candidates from free-form
// text selections and drag gestures over the rendered document.
package selection

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// TooLongMessage is shown when a reconstructed selection exceeds the limit.
const TooLongMessage = "Selected text is too long!!!"

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type tokenSource interface {
	TextID() int
	ItemAt(position int) (domain.Token, bool)
	TokenAt(position int) (domain.Token, bool)
}

type editWorkflow interface {
	OpenEdit(ctx context.Context, draft domain.MultiWordDraft) error
}

type navigator interface {
	Navigate(rawURL string)
}

type alerter interface {
	Alert(message string)
}

type selectionClearer interface {
	Clear()
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Kind discriminates what a processed selection turned out to be.
type Kind int

const (
	// KindNone: the selection touched no word.
	KindNone Kind = iota
	// KindSingleWord: one word span; the caller falls through to word edit.
	KindSingleWord
	// KindMultiWord: a reconstructed expression was handed to the workflow.
	KindMultiWord
)

// Result of processing one selection gesture.
type Result struct {
	Kind    Kind
	Context domain.SelectionContext
	Draft   domain.MultiWordDraft
}

// Engine turns intersected word positions into validated expression drafts.
type Engine struct {
	log      *slog.Logger
	tokens   tokenSource
	workflow editWorkflow
	nav      navigator
	alert    alerter
	clearer  selectionClearer
	editURL  string
	maxLen   int
}

// NewEngine creates a selection engine. editURL is the navigation fallback
// opened when the edit workflow is unavailable; maxLen caps reconstructed
// expression text in runes, values <= 0 falling back to the default.
func NewEngine(
	logger *slog.Logger,
	tokens tokenSource,
	workflow editWorkflow,
	nav navigator,
	alert alerter,
	clearer selectionClearer,
	editURL string,
	maxLen int,
) *Engine {
	if maxLen <= 0 {
		maxLen = domain.MaxSelectionLen
	}
	return &Engine{
		log:      logger.With("service", "selection"),
		tokens:   tokens,
		workflow: workflow,
		nav:      nav,
		alert:    alert,
		clearer:  clearer,
		editURL:  editURL,
		maxLen:   maxLen,
	}
}

// ---------------------------------------------------------------------------
// 1. Select
// ---------------------------------------------------------------------------

// Select processes the word positions a selection range intersected, in any
// order. Fewer than two distinct word spans fall through to single-word
// editing. The native selection is cleared whichever way processing ends.
func (e *Engine) Select(ctx context.Context, positions []int) (Result, error) {
	defer e.clearer.Clear()

	heads := e.ownerHeads(positions)
	switch len(heads) {
	case 0:
		return Result{Kind: KindNone}, nil
	case 1:
		tok, _ := e.tokens.TokenAt(heads[0])
		return Result{Kind: KindSingleWord, Context: e.contextFor(tok)}, nil
	}

	first := heads[0]
	lastTok, _ := e.tokens.TokenAt(heads[len(heads)-1])
	text, wordCount := e.reconstruct(first, lastTok.EndPosition())

	if utf8.RuneCountInString(text) > e.maxLen {
		e.alert.Alert(TooLongMessage)
		return Result{}, fmt.Errorf("selection of %d chars at %d: %w",
			utf8.RuneCountInString(text), first, domain.ErrSelectionTooLong)
	}

	draft := domain.MultiWordDraft{
		TextID:    e.tokens.TextID(),
		Position:  first,
		Text:      text,
		WordCount: wordCount,
	}

	if err := e.workflow.OpenEdit(ctx, draft); err != nil {
		e.log.WarnContext(ctx, "edit workflow unavailable, navigating",
			slog.String("error", err.Error()),
		)
		e.nav.Navigate(e.fallbackURL(draft))
	}
	return Result{Kind: KindMultiWord, Draft: draft}, nil
}

// ownerHeads maps raw positions to their owning tokens (a covering
// expression counts once, at its head) and returns the sorted distinct
// head positions of word tokens.
func (e *Engine) ownerHeads(positions []int) []int {
	seen := make(map[int]struct{}, len(positions))
	heads := make([]int, 0, len(positions))
	for _, pos := range positions {
		tok, ok := e.tokens.TokenAt(pos)
		if !ok || !tok.IsWord() {
			continue
		}
		if _, dup := seen[tok.Position]; dup {
			continue
		}
		seen[tok.Position] = struct{}{}
		heads = append(heads, tok.Position)
	}
	sort.Ints(heads)
	return heads
}

// reconstruct walks the base tokens of [first, last] in position order and
// rebuilds the exact surface text. A single space is synthesized between two
// words with no filler text between them; it is never stored in the stream.
func (e *Engine) reconstruct(first, last int) (string, int) {
	var b strings.Builder
	lastWasWord := false
	wordCount := 0
	for pos := first; pos <= last; pos++ {
		tok, ok := e.tokens.ItemAt(pos)
		if !ok {
			continue
		}
		if tok.IsNotWord {
			if tok.Text == "" {
				continue
			}
			b.WriteString(tok.Text)
			lastWasWord = false
			continue
		}
		if lastWasWord {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
		lastWasWord = true
		wordCount++
	}
	return b.String(), wordCount
}

func (e *Engine) contextFor(tok domain.Token) domain.SelectionContext {
	return domain.SelectionContext{
		TextID:    e.tokens.TextID(),
		Position:  tok.Position,
		Text:      tok.Text,
		WordCount: tok.WordCount,
		Hex:       tok.Hex,
		Status:    tok.Status,
		WordID:    tok.WordID,
	}
}

func (e *Engine) fallbackURL(draft domain.MultiWordDraft) string {
	q := url.Values{}
	q.Set("tid", strconv.Itoa(draft.TextID))
	q.Set("ord", strconv.Itoa(draft.Position))
	q.Set("wordcount", strconv.Itoa(draft.WordCount))
	q.Set("txt", draft.Text)
	return e.editURL + "?" + q.Encode()
}
