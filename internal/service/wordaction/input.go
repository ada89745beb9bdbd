package wordaction

import (
	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// ChangeStatusInput holds the parameters for an absolute status change.
type ChangeStatusInput struct {
	Selection domain.SelectionContext
	Status    domain.Status
}

// Validate checks all fields and collects all errors.
func (i *ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.Selection.Position <= 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "required"})
	}
	if !i.Status.IsValid() || i.Status == domain.StatusUnknown {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be 1-5, 98, or 99"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteWordInput holds the parameters for deleting a term.
type DeleteWordInput struct {
	Selection domain.SelectionContext
}

// IncrementInput holds the parameters for a relative status change.
type IncrementInput struct {
	Selection domain.SelectionContext
	Up        bool
}

// CreateMultiWordInput holds the parameters for saving a new expression.
type CreateMultiWordInput struct {
	Draft       domain.MultiWordDraft
	Status      domain.Status
	Translation string
}

// Validate checks all fields and collects all errors.
func (i *CreateMultiWordInput) Validate() error {
	var errs []domain.FieldError

	if i.Draft.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Draft.WordCount < 2 {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "must be at least 2"})
	}
	if i.Draft.Position <= 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "required"})
	}
	if !i.Status.IsValid() || i.Status == domain.StatusUnknown {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be 1-5, 98, or 99"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMultiWordInput holds the parameters for a partial expression edit.
type UpdateMultiWordInput struct {
	Selection domain.SelectionContext
	Update    domain.MultiWordUpdate
}

// Validate checks all fields and collects all errors.
func (i *UpdateMultiWordInput) Validate() error {
	var errs []domain.FieldError

	if i.Selection.WordCount < 2 {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "not a multi-word expression"})
	}
	if i.Update.Translation == nil && i.Update.Romanization == nil && i.Update.Status == nil {
		errs = append(errs, domain.FieldError{Field: "update", Message: "nothing to change"})
	}
	if i.Update.Status != nil && (!i.Update.Status.IsValid() || *i.Update.Status == domain.StatusUnknown) {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be 1-5, 98, or 99"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
