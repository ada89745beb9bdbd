package wordaction

import (
	"context"
	"log/slog"
)

// ---------------------------------------------------------------------------
// 3. IncrementStatus
// ---------------------------------------------------------------------------

// IncrementStatus nudges a learning term one level up or down. The API owns
// the clamping to [1,5] and answers with the resulting absolute status plus
// the applied delta for the review counter display.
func (s *Service) IncrementStatus(ctx context.Context, in IncrementInput) Result {
	sel := in.Selection
	if !sel.HasWordID() {
		return fail("No word ID for increment")
	}

	token := s.model.Begin(sel.Hex)
	res, err := s.api.IncrementStatus(ctx, *sel.WordID, in.Up)
	if err != nil {
		return fail(s.surface(ctx, err))
	}

	applied := s.model.ApplyIfCurrent(sel.Hex, token, func() {
		s.model.UpdateWordStatus(sel.Hex, res.Set, sel.WordID)
	})
	if !applied {
		s.log.InfoContext(ctx, "stale increment response discarded",
			slog.String("hex", sel.Hex),
		)
		return Result{Success: true, Stale: true, Hex: sel.Hex, Status: res.Set}
	}

	s.notifier.UpdateCounter(res.Increment)
	sound := SoundFailure
	if in.Up {
		sound = SoundSuccess
	}
	s.announce(res.Set.Label(), sound)
	return Result{
		Success: true,
		Message: res.Set.Label(),
		TermID:  sel.WordID,
		Hex:     sel.Hex,
		Status:  res.Set,
	}
}
