//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myreader-engine/internal/app"
	"github.com/heartmarshall/myreader-engine/internal/config"
	"github.com/heartmarshall/myreader-engine/internal/domain"
	"github.com/heartmarshall/myreader-engine/internal/service/wordaction"
)

// ---------------------------------------------------------------------------
// testSession wraps a fully wired engine talking to a fake term API.
// ---------------------------------------------------------------------------

type testSession struct {
	*app.Session
	UI  *uiRecorder
	API *fakeAPI
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// setupSession materializes a document from the token stream, starts a fake
// term API behind httptest, and wires the full engine against it.
func setupSession(t *testing.T, stream string, terms []domain.Token) *testSession {
	t.Helper()

	api := newFakeAPI()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	doc, err := app.LoadText(1, strings.NewReader(stream), terms)
	require.NoError(t, err)

	cfg := &config.Config{
		API: config.APIConfig{
			BaseURL: srv.URL,
			Timeout: 5 * time.Second,
		},
		Reader: config.ReaderConfig{
			TranslationDelims: ",;/|",
			TranslatorURL:     "*http://translate.test/?text=lwt_term",
			EditURL:           "/edit_mword",
			Language:          "en",
		},
		Keyboard: config.KeyboardConfig{
			ReviewMode: true,
		},
	}

	ui := &uiRecorder{}
	sess := app.NewSession(logger, cfg, ui, doc)

	return &testSession{Session: sess, UI: ui, API: api}
}

// selectionAt rebuilds the selection context a click on the given position
// would produce.
func (ts *testSession) selectionAt(t *testing.T, position int) domain.SelectionContext {
	t.Helper()
	tok, ok := ts.Document.TokenAt(position)
	require.True(t, ok, "no word at position %d", position)
	wc := tok.WordCount
	if wc < 1 {
		wc = 1
	}
	return domain.SelectionContext{
		TextID:    ts.Document.TextID(),
		Position:  tok.Position,
		Text:      tok.Text,
		WordCount: wc,
		Hex:       tok.Hex,
		Status:    tok.Status,
		WordID:    tok.WordID,
	}
}

// ---------------------------------------------------------------------------
// uiRecorder captures every callback the engine makes into the UI.
// ---------------------------------------------------------------------------

type uiRecorder struct {
	messages  []string
	errors    []string
	sounds    []wordaction.Sound
	closed    int
	counter   int
	wordEdits []domain.SelectionContext
	drafts    []domain.MultiWordDraft
	navs      []string
	popups    []string
	alerts    []string
	cleared   int
	spoken    []string
	positions []float64
}

var _ app.UI = (*uiRecorder)(nil)

func (u *uiRecorder) ShowMessage(message string) { u.messages = append(u.messages, message) }

func (u *uiRecorder) ShowError(message string) { u.errors = append(u.errors, message) }

func (u *uiRecorder) PlaySound(sound wordaction.Sound) { u.sounds = append(u.sounds, sound) }

func (u *uiRecorder) ClosePopup() { u.closed++ }

func (u *uiRecorder) UpdateCounter(delta int) { u.counter += delta }

func (u *uiRecorder) OpenWordEdit(_ context.Context, sel domain.SelectionContext) {
	u.wordEdits = append(u.wordEdits, sel)
}

func (u *uiRecorder) OpenEdit(_ context.Context, draft domain.MultiWordDraft) error {
	u.drafts = append(u.drafts, draft)
	return nil
}

func (u *uiRecorder) Navigate(rawURL string) { u.navs = append(u.navs, rawURL) }

func (u *uiRecorder) Popup(rawURL string) { u.popups = append(u.popups, rawURL) }

func (u *uiRecorder) Alert(message string) { u.alerts = append(u.alerts, message) }

func (u *uiRecorder) Clear() { u.cleared++ }

func (u *uiRecorder) Speak(term, lang string) { u.spoken = append(u.spoken, term+"/"+lang) }

func (u *uiRecorder) NewPosition(percent float64) { u.positions = append(u.positions, percent) }

// ---------------------------------------------------------------------------
// fakeAPI is an in-memory term store behind the real wire contract.
// ---------------------------------------------------------------------------

type apiTerm struct {
	Text         string
	Status       int
	Translation  string
	Romanization string
}

type fakeAPI struct {
	mux *http.ServeMux

	mu    sync.Mutex
	terms map[uuid.UUID]*apiTerm

	quickCreates int
	statusSets   int
	deletes      int
	increments   int
	mwCreates    int
	mwUpdates    int

	failNext string

	// holdStatus parks quick-create requests carrying that status until
	// release is closed, so tests can overlap two in-flight actions.
	holdStatus int
	entered    chan struct{}
	release    chan struct{}
}

func newFakeAPI() *fakeAPI {
	f := &fakeAPI{terms: make(map[uuid.UUID]*apiTerm)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /texts/{textID}/terms", f.quickCreate)
	mux.HandleFunc("POST /terms/{termID}/status", f.setStatus)
	mux.HandleFunc("DELETE /terms/{termID}", f.deleteTerm)
	mux.HandleFunc("POST /terms/{termID}/increment", f.increment)
	mux.HandleFunc("POST /texts/{textID}/multiwords", f.createMultiWord)
	mux.HandleFunc("PATCH /terms/{termID}/multiword", f.updateMultiWord)
	f.mux = mux

	return f
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.maybeFail(w) {
		return
	}
	f.mux.ServeHTTP(w, r)
}

// FailNext makes the next request answer 400 with the given error message.
func (f *fakeAPI) FailNext(message string) {
	f.mu.Lock()
	f.failNext = message
	f.mu.Unlock()
}

// HoldQuickCreate parks the next quick-create request carrying the given
// status. The returned entered channel signals the request reached the
// server; closing release lets it finish.
func (f *fakeAPI) HoldQuickCreate(status domain.Status) (entered <-chan struct{}, release chan<- struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.holdStatus = int(status)
	f.entered = make(chan struct{}, 1)
	f.release = make(chan struct{})
	return f.entered, f.release
}

// Term returns a stored term by id.
func (f *fakeAPI) Term(id uuid.UUID) (apiTerm, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.terms[id]
	if !ok {
		return apiTerm{}, false
	}
	return *t, true
}

// Len reports how many terms the store holds.
func (f *fakeAPI) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.terms)
}

func (f *fakeAPI) maybeFail(w http.ResponseWriter) bool {
	f.mu.Lock()
	msg := f.failNext
	f.failNext = ""
	f.mu.Unlock()
	if msg == "" {
		return false
	}
	writeJSONStatus(w, http.StatusBadRequest, map[string]string{"error": msg})
	return true
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func (f *fakeAPI) quickCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TextID   int `json:"textId"`
		Position int `json:"position"`
		Status   int `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	hold := f.holdStatus != 0 && in.Status == f.holdStatus
	entered, release := f.entered, f.release
	if hold {
		f.holdStatus = 0
	}
	f.mu.Unlock()
	if hold {
		entered <- struct{}{}
		<-release
	}

	id := uuid.New()
	f.mu.Lock()
	f.terms[id] = &apiTerm{Status: in.Status}
	f.quickCreates++
	f.mu.Unlock()

	writeJSON(w, map[string]any{"termId": id.String(), "hex": ""})
}

func (f *fakeAPI) setStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := f.termID(w, r)
	if !ok {
		return
	}
	var in struct {
		Status int `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	t, found := f.terms[id]
	if found {
		t.Status = in.Status
		f.statusSets++
	}
	f.mu.Unlock()
	if !found {
		writeJSON(w, map[string]string{"error": "term not found"})
		return
	}
	writeJSON(w, map[string]any{})
}

func (f *fakeAPI) deleteTerm(w http.ResponseWriter, r *http.Request) {
	id, ok := f.termID(w, r)
	if !ok {
		return
	}
	f.mu.Lock()
	delete(f.terms, id)
	f.deletes++
	f.mu.Unlock()
	writeJSON(w, map[string]any{})
}

func (f *fakeAPI) increment(w http.ResponseWriter, r *http.Request) {
	id, ok := f.termID(w, r)
	if !ok {
		return
	}
	var in struct {
		Up bool `json:"up"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	t, found := f.terms[id]
	var from, to int
	if found {
		from = t.Status
		to = from
		if from >= 1 && from <= 5 {
			to = from + 1
			if !in.Up {
				to = from - 1
			}
			if to < 1 {
				to = 1
			}
			if to > 5 {
				to = 5
			}
		}
		t.Status = to
		f.increments++
	}
	f.mu.Unlock()
	if !found {
		writeJSON(w, map[string]string{"error": "term not found"})
		return
	}
	writeJSON(w, map[string]any{"set": to, "increment": to - from})
}

func (f *fakeAPI) createMultiWord(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TextID      int    `json:"textId"`
		Position    int    `json:"position"`
		Text        string `json:"text"`
		WordCount   int    `json:"wordCount"`
		Status      int    `json:"status"`
		Translation string `json:"translation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.New()
	f.mu.Lock()
	f.terms[id] = &apiTerm{Text: in.Text, Status: in.Status, Translation: in.Translation}
	f.mwCreates++
	f.mu.Unlock()

	writeJSON(w, map[string]any{"termId": id.String(), "termLc": strings.ToLower(in.Text)})
}

func (f *fakeAPI) updateMultiWord(w http.ResponseWriter, r *http.Request) {
	id, ok := f.termID(w, r)
	if !ok {
		return
	}
	var in struct {
		Translation  *string `json:"translation"`
		Romanization *string `json:"romanization"`
		Status       *int    `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	t, found := f.terms[id]
	if found {
		if in.Translation != nil {
			t.Translation = *in.Translation
		}
		if in.Romanization != nil {
			t.Romanization = *in.Romanization
		}
		if in.Status != nil {
			t.Status = *in.Status
		}
		f.mwUpdates++
	}
	f.mu.Unlock()
	if !found {
		writeJSON(w, map[string]string{"error": "term not found"})
		return
	}
	writeJSON(w, map[string]any{})
}

func (f *fakeAPI) termID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("termID"))
	if err != nil {
		writeJSONStatus(w, http.StatusNotFound, map[string]string{"error": "invalid term id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
