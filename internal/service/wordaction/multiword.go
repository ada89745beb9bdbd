package wordaction

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// ---------------------------------------------------------------------------
// 4. CreateMultiWord
// ---------------------------------------------------------------------------

// CreateMultiWord persists a new expression and overlays it on the document,
// hiding the covered constituents.
func (s *Service) CreateMultiWord(ctx context.Context, in CreateMultiWordInput) Result {
	if err := in.Validate(); err != nil {
		s.notifier.ShowError(err.Error())
		return fail(err.Error())
	}

	hex := domain.TermHex(in.Draft.Text)
	token := s.model.Begin(hex)
	created, err := s.api.CreateMultiWord(ctx, in.Draft, in.Status, in.Translation)
	if err != nil {
		return fail(s.surface(ctx, err))
	}

	termID := created.TermID
	var insertErr error
	applied := s.model.ApplyIfCurrent(hex, token, func() {
		insertErr = s.model.InsertMultiWord(domain.Token{
			Position:    in.Draft.Position,
			Text:        in.Draft.Text,
			IsMultiWord: true,
			WordCount:   in.Draft.WordCount,
			Status:      in.Status,
			WordID:      &termID,
			Translation: in.Translation,
			Hex:         hex,
		})
	})
	if !applied {
		s.log.InfoContext(ctx, "stale expression create discarded",
			slog.String("hex", hex),
		)
		return Result{Success: true, Stale: true, TermID: &termID, Hex: hex, Status: in.Status}
	}
	if insertErr != nil {
		s.log.ErrorContext(ctx, "expression saved but not inserted",
			slog.String("error", insertErr.Error()),
		)
		s.notifier.ShowError(insertErr.Error())
		return fail(insertErr.Error())
	}

	s.announce("Expression saved", transitionSound(domain.StatusUnknown, in.Status))
	return Result{
		Success: true,
		Message: "Expression saved",
		TermID:  &termID,
		Hex:     hex,
		Status:  in.Status,
	}
}

// ---------------------------------------------------------------------------
// 5. UpdateMultiWord
// ---------------------------------------------------------------------------

// UpdateMultiWord applies a partial edit to a saved expression and patches
// every occurrence in the document.
func (s *Service) UpdateMultiWord(ctx context.Context, in UpdateMultiWordInput) Result {
	if err := in.Validate(); err != nil {
		s.notifier.ShowError(err.Error())
		return fail(err.Error())
	}

	sel := in.Selection
	if !sel.HasWordID() {
		return fail("No word ID for expression update")
	}

	token := s.model.Begin(sel.Hex)
	if err := s.api.UpdateMultiWord(ctx, *sel.WordID, in.Update); err != nil {
		return fail(s.surface(ctx, err))
	}

	status := sel.Status
	applied := s.model.ApplyIfCurrent(sel.Hex, token, func() {
		if in.Update.Status != nil {
			status = *in.Update.Status
			s.model.UpdateWordStatus(sel.Hex, status, sel.WordID)
		}
		if in.Update.Translation != nil || in.Update.Romanization != nil {
			translation, romanization := "", ""
			if cur, ok := s.model.TokenAt(sel.Position); ok {
				translation, romanization = cur.Translation, cur.Romanization
			}
			if in.Update.Translation != nil {
				translation = *in.Update.Translation
			}
			if in.Update.Romanization != nil {
				romanization = *in.Update.Romanization
			}
			s.model.UpdateWordTranslation(sel.Hex, translation, romanization)
		}
	})
	if !applied {
		s.log.InfoContext(ctx, "stale expression update discarded",
			slog.String("hex", sel.Hex),
		)
		return Result{Success: true, Stale: true, Hex: sel.Hex, Status: status}
	}

	s.announce("Expression updated", transitionSound(sel.Status, status))
	return Result{
		Success: true,
		Message: "Expression updated",
		TermID:  sel.WordID,
		Hex:     sel.Hex,
		Status:  status,
	}
}
