// Package navigator maps reading-mode key codes onto cursor movement, status
// actions and lookup surfaces. All state lives in an explicit Session; the
// handler itself is stateless between keys.
package navigator

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/myreader-engine/internal/domain"
	"github.com/heartmarshall/myreader-engine/internal/service/wordaction"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type tokenSource interface {
	TextID() int
	TotalChars() int
	VisibleWords() []domain.Token
	TokenAt(position int) (domain.Token, bool)
	SentenceText(sentenceID int) string
}

type wordActions interface {
	ChangeStatus(ctx context.Context, in wordaction.ChangeStatusInput) wordaction.Result
	IncrementStatus(ctx context.Context, in wordaction.IncrementInput) wordaction.Result
}

type opener interface {
	OpenWordEdit(ctx context.Context, sel domain.SelectionContext)
	Navigate(url string)
	Popup(url string)
}

type speaker interface {
	Speak(term, lang string)
}

type player interface {
	NewPosition(percent float64)
}

// ---------------------------------------------------------------------------
// Navigator
// ---------------------------------------------------------------------------

// defaultAudioOffset is the display-prefix length subtracted from a word's
// character offset before the seek percent is computed.
const defaultAudioOffset = 5

// Config carries the reading-mode switches the navigator honours.
type Config struct {
	// ReviewMode enables the up/down status increment keys.
	ReviewMode bool

	// TranslatorURL is the configured sentence/term lookup URL. A leading
	// "*" or an lwt_popup query flag requests a popup window instead of
	// in-place navigation.
	TranslatorURL string

	// Language is passed to the speech collaborator.
	Language string

	// PopupDelay is how long the G key waits before opening the translator
	// on top of the editor.
	PopupDelay time.Duration

	// AudioOffset is the number of leading characters excluded from audio
	// seek offsets. Values <= 0 fall back to the default.
	AudioOffset int
}

// Navigator is the reading-mode key handler.
type Navigator struct {
	log     *slog.Logger
	model   tokenSource
	actions wordActions
	open    opener
	speak   speaker
	play    player
	session *Session
	cfg     Config

	delay func(d time.Duration, fn func())
}

// NewNavigator creates a new keyboard navigator bound to one session.
func NewNavigator(
	logger *slog.Logger,
	model tokenSource,
	actions wordActions,
	open opener,
	speak speaker,
	play player,
	session *Session,
	cfg Config,
) *Navigator {
	if cfg.AudioOffset <= 0 {
		cfg.AudioOffset = defaultAudioOffset
	}
	return &Navigator{
		log:     logger.With("service", "navigator"),
		model:   model,
		actions: actions,
		open:    open,
		speak:   speak,
		play:    play,
		session: session,
		cfg:     cfg,
		delay: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// HandleKey dispatches one key code. It returns true when the key was
// consumed; unrecognized keys and keys with nothing to act on fall through.
func (n *Navigator) HandleKey(ctx context.Context, code int) bool {
	handled := n.dispatch(ctx, code)
	if handled {
		n.log.DebugContext(ctx, "key handled",
			slog.Int("code", code),
			slog.Int("position", n.session.position),
		)
	}
	return handled
}

func (n *Navigator) dispatch(ctx context.Context, code int) bool {
	switch code {
	case KeyEscape:
		n.session.Reset()
		return true
	case KeyEnter:
		return n.jumpFirstUnknown(ctx)
	case KeyHome:
		return n.jumpTo(0)
	case KeyEnd:
		return n.jumpTo(len(n.words()) - 1)
	case KeyLeft:
		return n.move(-1)
	case KeyRight, KeySpace:
		return n.move(1)
	case KeyUp, KeyDown:
		return n.increment(ctx, code == KeyUp)
	case Key1, Key2, Key3, Key4, Key5:
		return n.setStatus(ctx, domain.Status(code-Key1+1))
	case KeyI:
		return n.setStatus(ctx, domain.StatusIgnored)
	case KeyW:
		return n.setStatus(ctx, domain.StatusWellKnown)
	case KeyE:
		return n.openEdit(ctx, false)
	case KeyG:
		return n.openEdit(ctx, true)
	case KeyP:
		return n.speakCurrent()
	case KeyT:
		return n.translateSentence()
	case KeyA:
		return n.seekAudio()
	}
	return false
}

// ---------------------------------------------------------------------------
// Cursor movement
// ---------------------------------------------------------------------------

// words returns the navigable list: visible words, narrowed by the session's
// status filter when one is set.
func (n *Navigator) words() []domain.Token {
	words := n.model.VisibleWords()
	if n.session.filter == nil {
		return words
	}
	out := make([]domain.Token, 0, len(words))
	for _, tok := range words {
		if n.session.allows(tok.Status) {
			out = append(out, tok)
		}
	}
	return out
}

func (n *Navigator) jumpTo(index int) bool {
	if index < 0 || index >= len(n.words()) {
		return false
	}
	n.session.position = index
	return true
}

// move shifts the marker by delta, clamped to the list ends. Without a
// marker, moving forward starts before the first word and moving backward
// starts beyond the last.
func (n *Navigator) move(delta int) bool {
	words := n.words()
	if len(words) == 0 {
		return false
	}
	pos := n.session.position
	switch {
	case pos < 0 && delta > 0:
		pos = 0
	case pos < 0:
		pos = len(words) - 1
	default:
		pos += delta
		if pos < 0 {
			pos = 0
		}
		if pos > len(words)-1 {
			pos = len(words) - 1
		}
	}
	n.session.position = pos
	return true
}

func (n *Navigator) jumpFirstUnknown(ctx context.Context) bool {
	for i, tok := range n.words() {
		if tok.Status == domain.StatusUnknown {
			n.session.position = i
			n.open.OpenWordEdit(ctx, n.selectionFor(tok))
			return true
		}
	}
	return false
}

// currentWord resolves the word a status or lookup key acts on: the marked
// word when a marker is set, the hovered word otherwise.
func (n *Navigator) currentWord() (domain.Token, bool) {
	words := n.words()
	if pos := n.session.position; pos >= 0 && pos < len(words) {
		return words[pos], true
	}
	if n.session.hover > 0 {
		tok, ok := n.model.TokenAt(n.session.hover)
		if ok && tok.IsWord() && !tok.Hidden {
			return tok, true
		}
	}
	return domain.Token{}, false
}

func (n *Navigator) selectionFor(tok domain.Token) domain.SelectionContext {
	wc := tok.WordCount
	if wc < 1 {
		wc = 1
	}
	return domain.SelectionContext{
		TextID:    n.model.TextID(),
		Position:  tok.Position,
		Text:      tok.Text,
		WordCount: wc,
		Hex:       tok.Hex,
		Status:    tok.Status,
		WordID:    tok.WordID,
	}
}

// ---------------------------------------------------------------------------
// Status keys
// ---------------------------------------------------------------------------

func (n *Navigator) setStatus(ctx context.Context, status domain.Status) bool {
	tok, ok := n.currentWord()
	if !ok {
		return false
	}
	n.actions.ChangeStatus(ctx, wordaction.ChangeStatusInput{
		Selection: n.selectionFor(tok),
		Status:    status,
	})
	return true
}

func (n *Navigator) increment(ctx context.Context, up bool) bool {
	if !n.cfg.ReviewMode {
		return false
	}
	tok, ok := n.currentWord()
	if !ok {
		return false
	}
	n.actions.IncrementStatus(ctx, wordaction.IncrementInput{
		Selection: n.selectionFor(tok),
		Up:        up,
	})
	return true
}

// ---------------------------------------------------------------------------
// Lookup surfaces
// ---------------------------------------------------------------------------

func (n *Navigator) openEdit(ctx context.Context, withTranslator bool) bool {
	tok, ok := n.currentWord()
	if !ok {
		return false
	}
	n.open.OpenWordEdit(ctx, n.selectionFor(tok))
	if withTranslator && n.cfg.TranslatorURL != "" {
		term := tok.Text
		n.delay(n.cfg.PopupDelay, func() {
			n.open.Popup(lookupURL(n.cfg.TranslatorURL, term))
		})
	}
	return true
}

func (n *Navigator) speakCurrent() bool {
	tok, ok := n.currentWord()
	if !ok {
		return false
	}
	n.speak.Speak(tok.Text, n.cfg.Language)
	return true
}

func (n *Navigator) translateSentence() bool {
	tok, ok := n.currentWord()
	if !ok || n.cfg.TranslatorURL == "" {
		return false
	}
	sentence := n.model.SentenceText(tok.SentenceID)
	if sentence == "" {
		return false
	}
	target := lookupURL(n.cfg.TranslatorURL, sentence)
	if popupMode(n.cfg.TranslatorURL) {
		n.open.Popup(target)
	} else {
		n.open.Navigate(target)
	}
	return true
}

// seekAudio positions an attached player at the marked word. The configured
// display-prefix length is excluded from the offset.
func (n *Navigator) seekAudio() bool {
	tok, ok := n.currentWord()
	if !ok {
		return false
	}
	total := n.model.TotalChars()
	if total <= 0 {
		return false
	}
	percent := float64(100*(tok.CharPos-n.cfg.AudioOffset)) / float64(total)
	if percent < 0 {
		percent = 0
	}
	n.play.NewPosition(percent)
	return true
}

// ---------------------------------------------------------------------------
// Lookup URLs
// ---------------------------------------------------------------------------

const termPlaceholder = "lwt_term"

// lookupURL fills a configured lookup URL with the query text: an lwt_term
// placeholder is substituted when present, otherwise the encoded text is
// appended.
func lookupURL(base, text string) string {
	u := strings.TrimPrefix(strings.TrimSpace(base), "*")
	if strings.Contains(u, termPlaceholder) {
		return strings.ReplaceAll(u, termPlaceholder, url.QueryEscape(text))
	}
	return u + url.QueryEscape(text)
}

// popupMode reports whether a lookup URL asks for a popup window rather
// than in-place navigation.
func popupMode(base string) bool {
	return strings.HasPrefix(base, "*") || strings.Contains(base, "lwt_popup")
}
