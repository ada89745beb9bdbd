// Package app assembles the reading engine: it materializes documents from
// token streams and wires the word action, selection and keyboard services
// around one live document.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/myreader-engine/internal/annotate"
	"github.com/heartmarshall/myreader-engine/internal/config"
	"github.com/heartmarshall/myreader-engine/internal/document"
	"github.com/heartmarshall/myreader-engine/internal/domain"
	"github.com/heartmarshall/myreader-engine/internal/render"
	"github.com/heartmarshall/myreader-engine/internal/selection"
	"github.com/heartmarshall/myreader-engine/internal/service/navigator"
	"github.com/heartmarshall/myreader-engine/internal/service/wordaction"
	"github.com/heartmarshall/myreader-engine/internal/tokenstream"
	"github.com/heartmarshall/myreader-engine/internal/transport/restapi"
)

// UI is everything the engine calls back into. One implementation typically
// backs all of it: a webview bridge, a TUI, or the fakes in tests.
type UI interface {
	// Word action feedback.
	ShowMessage(message string)
	ShowError(message string)
	PlaySound(sound wordaction.Sound)
	ClosePopup()
	UpdateCounter(delta int)

	// Edit and lookup surfaces.
	OpenWordEdit(ctx context.Context, sel domain.SelectionContext)
	OpenEdit(ctx context.Context, draft domain.MultiWordDraft) error
	Navigate(rawURL string)
	Popup(rawURL string)
	Alert(message string)
	Clear()

	// Audio and speech.
	Speak(term, lang string)
	NewPosition(percent float64)
}

// Session bundles the wired engine of one open text.
type Session struct {
	Log       *slog.Logger
	Document  *document.Document
	Actions   *wordaction.Service
	Selection *selection.Engine
	Keyboard  *navigator.Navigator
	State     *navigator.Session
	API       *restapi.Client
}

// NewSession wires the full engine around one materialized document. The UI
// receives every message, sound, popup and navigation the engine produces.
func NewSession(logger *slog.Logger, cfg *config.Config, ui UI, doc *document.Document) *Session {
	api := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	actions := wordaction.NewService(logger, api, doc, ui)
	sel := selection.NewEngine(logger, doc, ui, ui, ui, ui, cfg.Reader.EditURL, cfg.Reader.MaxSelectionLen)
	state := navigator.NewSession()
	keys := navigator.NewNavigator(logger, doc, actions, ui, ui, ui, state, navigator.Config{
		ReviewMode:    cfg.Keyboard.ReviewMode,
		TranslatorURL: cfg.Reader.TranslatorURL,
		Language:      cfg.Reader.Language,
		PopupDelay:    cfg.Keyboard.PopupDelay,
		AudioOffset:   cfg.Reader.AudioOffset,
	})

	return &Session{
		Log:       logger,
		Document:  doc,
		Actions:   actions,
		Selection: sel,
		Keyboard:  keys,
		State:     state,
		API:       api,
	}
}

// LoadText materializes a document from a tokenizer stream and carries the
// saved term state onto it.
func LoadText(textID int, stream io.Reader, terms []domain.Token) (*document.Document, error) {
	tokens, err := tokenstream.Read(stream)
	if err != nil {
		return nil, fmt.Errorf("app: load text %d: %w", textID, err)
	}
	doc, err := document.New(textID, tokens)
	if err != nil {
		return nil, fmt.Errorf("app: materialize text %d: %w", textID, err)
	}
	ApplyTerms(doc, terms)
	return doc, nil
}

// ApplyTerms carries saved term state onto a fresh document: single-word
// terms by fingerprint, expressions by surface match.
func ApplyTerms(doc *document.Document, terms []domain.Token) {
	for _, term := range terms {
		if term.IsMultiWord || term.WordCount > 1 {
			term.IsMultiWord = true
			doc.ApplySavedTerm(term)
			continue
		}
		hex := term.Hex
		if hex == "" {
			hex = domain.TermHex(term.Text)
		}
		doc.UpdateWordStatus(hex, term.Status, term.WordID)
		if term.Translation != "" || term.Romanization != "" {
			doc.UpdateWordTranslation(hex, term.Translation, term.Romanization)
		}
	}
}

// RenderHTML projects the document's current state to markup, merging the
// per-occurrence annotations in on the way out.
func RenderHTML(doc *document.Document, anns domain.AnnotationSet, delims string, settings render.Settings) string {
	tokens := annotate.Merge(doc.Snapshot(), anns, delims)
	return render.Render(tokens, settings)
}
