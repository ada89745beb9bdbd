// Package wordaction is the authoritative status transition logic: every
// click, keystroke and API acknowledgement that changes a term's learning
// state runs through this service. Guard failures resolve locally with a
// failed Result and zero network calls; API errors leave the model untouched.
package wordaction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type actionAPI interface {
	SetStatus(ctx context.Context, wordID uuid.UUID, status domain.Status) error
	CreateQuick(ctx context.Context, textID, position int, status domain.Status) (domain.QuickCreateResult, error)
	Delete(ctx context.Context, wordID uuid.UUID) error
	IncrementStatus(ctx context.Context, wordID uuid.UUID, up bool) (domain.IncrementResult, error)
	CreateMultiWord(ctx context.Context, draft domain.MultiWordDraft, status domain.Status, translation string) (domain.MultiWordResult, error)
	UpdateMultiWord(ctx context.Context, wordID uuid.UUID, update domain.MultiWordUpdate) error
}

type tokenModel interface {
	TextID() int
	TokenAt(position int) (domain.Token, bool)
	UpdateWordStatus(hex string, status domain.Status, wordID *uuid.UUID) int
	UpdateWordTranslation(hex, translation, romanization string) int
	ResetWord(hex string) int
	InsertMultiWord(mw domain.Token) error
	Begin(hex string) ulid.ULID
	ApplyIfCurrent(hex string, token ulid.ULID, apply func()) bool
}

type notifier interface {
	ShowMessage(message string)
	ShowError(message string)
	PlaySound(sound Sound)
	ClosePopup()
	UpdateCounter(delta int)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the word action state machine.
type Service struct {
	log      *slog.Logger
	api      actionAPI
	model    tokenModel
	notifier notifier
}

// NewService creates a new word action service.
func NewService(logger *slog.Logger, api actionAPI, model tokenModel, notify notifier) *Service {
	return &Service{
		log:      logger.With("service", "wordaction"),
		api:      api,
		model:    model,
		notifier: notify,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const genericErrorMessage = "An error occurred. Please try again."

// surface resolves a collaborator error into the message shown to the
// reader: API-provided messages verbatim, anything else generic.
func (s *Service) surface(ctx context.Context, err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		s.notifier.ShowError(apiErr.Message)
		return apiErr.Message
	}
	s.log.ErrorContext(ctx, "action failed",
		slog.String("error", err.Error()),
	)
	s.notifier.ShowError(genericErrorMessage)
	return genericErrorMessage
}

// transitionSound picks the contextual sound: upward transitions succeed,
// downward and ignore transitions fail.
func transitionSound(from, to domain.Status) Sound {
	if to == domain.StatusIgnored {
		return SoundFailure
	}
	if to > from {
		return SoundSuccess
	}
	return SoundFailure
}

// announce finishes a successful action: transient message, contextual
// sound, and any open popup closed.
func (s *Service) announce(message string, sound Sound) {
	s.notifier.ShowMessage(message)
	s.notifier.PlaySound(sound)
	s.notifier.ClosePopup()
}
