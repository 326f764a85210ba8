package changecontrol

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// ListPending returns changes newest first. Status defaults to pending.
func (s *Service) ListPending(ctx context.Context, filter domain.ChangeFilter) ([]domain.PendingChange, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	errs := validatePage(filter.Limit, filter.Offset)
	if filter.Status != nil && !filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, approved or rejected"})
	}
	if filter.Kind != nil && !filter.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be create, update or delete"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	if filter.Status == nil {
		pending := domain.ChangeStatusPending
		filter.Status = &pending
	}
	filter.Limit = s.pageLimit(filter.Limit)

	changes, err := s.changes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	return changes, nil
}

// GetChange returns a single change in any status.
func (s *Service) GetChange(ctx context.Context, id uuid.UUID) (*domain.PendingChange, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	change, err := s.changes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get change: %w", err)
	}
	return change, nil
}

// ListEntities returns live entities, most recently updated first.
func (s *Service) ListEntities(ctx context.Context, filter domain.EntityFilter) ([]domain.GovernedEntity, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	errs := validatePage(filter.Limit, filter.Offset)
	if filter.Status != nil && !filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, active, inactive or error"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	filter.Limit = s.pageLimit(filter.Limit)

	entities, err := s.entities.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return entities, nil
}

// GetEntity returns a live entity.
func (s *Service) GetEntity(ctx context.Context, id uuid.UUID) (*domain.GovernedEntity, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	entity, err := s.entities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return entity, nil
}
