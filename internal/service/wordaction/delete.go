package wordaction

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// ---------------------------------------------------------------------------
// 2. DeleteWord
// ---------------------------------------------------------------------------

// DeleteWord removes a term entirely: every token sharing its fingerprint
// returns to the unknown state and loses its word id.
func (s *Service) DeleteWord(ctx context.Context, in DeleteWordInput) Result {
	sel := in.Selection
	if !sel.HasWordID() {
		return fail("No word ID for deletion")
	}

	token := s.model.Begin(sel.Hex)
	if err := s.api.Delete(ctx, *sel.WordID); err != nil {
		return fail(s.surface(ctx, err))
	}

	applied := s.model.ApplyIfCurrent(sel.Hex, token, func() {
		s.model.ResetWord(sel.Hex)
	})
	if !applied {
		s.log.InfoContext(ctx, "stale delete response discarded",
			slog.String("hex", sel.Hex),
		)
		return Result{Success: true, Stale: true, Hex: sel.Hex}
	}

	s.announce("Term deleted", transitionSound(sel.Status, domain.StatusUnknown))
	return Result{
		Success: true,
		Message: "Term deleted",
		Hex:     sel.Hex,
		Status:  domain.StatusUnknown,
	}
}
