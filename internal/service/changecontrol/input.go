package changecontrol

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

const maxCommentLength = 2000

// ProposeInput holds the parameters of a proposal. EntityID targets the
// live entity for update and delete.
type ProposeInput struct {
	EntityType domain.EntityType
	Kind       domain.ChangeKind
	EntityID   *uuid.UUID
	NewData    domain.Payload
}

// Validate checks all fields and collects all errors.
func (i ProposeInput) Validate() error {
	var errs []domain.FieldError

	if i.EntityType == "" {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be create, update or delete"})
	}
	if i.Kind.RequiresOldData() && (i.EntityID == nil || *i.EntityID == uuid.Nil) {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required for " + string(i.Kind)})
	}
	if i.Kind == domain.ChangeKindCreate && i.EntityID != nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "must be empty for create"})
	}
	if i.Kind.RequiresNewData() && len(i.NewData) == 0 {
		errs = append(errs, domain.FieldError{Field: "new_data", Message: "required for " + string(i.Kind)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DecideInput holds a reviewer's decision on a change.
type DecideInput struct {
	ChangeID uuid.UUID
	Decision domain.Decision
	Comments *string
}

// Validate checks all fields and collects all errors.
func (i DecideInput) Validate() error {
	var errs []domain.FieldError

	if i.ChangeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "change_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be approved or rejected"})
	}
	if i.Comments != nil && len(*i.Comments) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comments", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validatePage(limit, offset int) []domain.FieldError {
	var errs []domain.FieldError
	if limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	return errs
}
