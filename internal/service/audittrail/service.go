// Package audittrail exposes the read side of the audit log to reviewers.
package audittrail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type auditRepo interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error)
}

// Service lists audit records.
type Service struct {
	log   *slog.Logger
	audit auditRepo
}

// NewService creates a new audit trail service.
func NewService(logger *slog.Logger, audit auditRepo) *Service {
	return &Service{
		log:   logger.With("service", "audittrail"),
		audit: audit,
	}
}

// List returns audit records newest first. Only admins and checkers may
// read the trail.
func (s *Service) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	role := domain.UserRole(ctxutil.RoleFromCtx(ctx))
	if !role.CanReview() {
		s.log.WarnContext(ctx, "audit trail access denied",
			slog.String("user_id", userID.String()),
			slog.String("role", string(role)),
		)
		return nil, fmt.Errorf("%w: role %q may not read the audit trail", domain.ErrForbidden, role)
	}

	var errs []domain.FieldError
	if filter.Action != nil && !filter.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown audit action"})
	}
	if filter.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	switch {
	case filter.Limit == 0:
		filter.Limit = defaultLimit
	case filter.Limit > maxLimit:
		filter.Limit = maxLimit
	}

	records, err := s.audit.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return records, nil
}
