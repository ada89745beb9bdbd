package wordaction

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// ---------------------------------------------------------------------------
// 1. ChangeStatus
// ---------------------------------------------------------------------------

// ChangeStatus moves a term to an absolute status. An unknown term is
// created through the quick-create API; a known one is updated in place.
// On success every token sharing the term fingerprint is patched.
func (s *Service) ChangeStatus(ctx context.Context, in ChangeStatusInput) Result {
	if err := in.Validate(); err != nil {
		s.notifier.ShowError(err.Error())
		return fail(err.Error())
	}

	sel := in.Selection
	if sel.Status == domain.StatusUnknown && !sel.HasWordID() {
		return s.createQuick(ctx, sel, in.Status)
	}
	return s.setStatus(ctx, sel, in.Status)
}

// createQuick persists a previously unknown term directly at the requested
// status, skipping the edit form.
func (s *Service) createQuick(ctx context.Context, sel domain.SelectionContext, status domain.Status) Result {
	if sel.Hex == "" {
		return fail("No term hex for quick create")
	}

	token := s.model.Begin(sel.Hex)
	created, err := s.api.CreateQuick(ctx, sel.TextID, sel.Position, status)
	if err != nil {
		return fail(s.surface(ctx, err))
	}

	termID := created.TermID
	applied := s.model.ApplyIfCurrent(sel.Hex, token, func() {
		s.model.UpdateWordStatus(sel.Hex, status, &termID)
	})
	if !applied {
		s.log.InfoContext(ctx, "stale create response discarded",
			slog.String("hex", sel.Hex),
		)
		return Result{Success: true, Stale: true, TermID: &termID, Hex: sel.Hex, Status: status}
	}

	s.announce(status.Label(), transitionSound(domain.StatusUnknown, status))
	return Result{
		Success: true,
		Message: status.Label(),
		TermID:  &termID,
		Hex:     sel.Hex,
		Status:  status,
	}
}

// setStatus updates an existing term's status.
func (s *Service) setStatus(ctx context.Context, sel domain.SelectionContext, status domain.Status) Result {
	if !sel.HasWordID() {
		return fail("No word ID for status change")
	}

	token := s.model.Begin(sel.Hex)
	if err := s.api.SetStatus(ctx, *sel.WordID, status); err != nil {
		return fail(s.surface(ctx, err))
	}

	applied := s.model.ApplyIfCurrent(sel.Hex, token, func() {
		s.model.UpdateWordStatus(sel.Hex, status, sel.WordID)
	})
	if !applied {
		s.log.InfoContext(ctx, "stale status response discarded",
			slog.String("hex", sel.Hex),
		)
		return Result{Success: true, Stale: true, TermID: sel.WordID, Hex: sel.Hex, Status: status}
	}

	s.announce(status.Label(), transitionSound(sel.Status, status))
	return Result{
		Success: true,
		Message: status.Label(),
		TermID:  sel.WordID,
		Hex:     sel.Hex,
		Status:  status,
	}
}
