package alerting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// Resolve closes an open alert on behalf of the caller and records a
// resolved audit entry. An alert that is already closed fails with
// ErrAlreadyResolved.
func (s *Service) Resolve(ctx context.Context, alertID uuid.UUID) (_ *domain.Alert, err error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if alertID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := tracer.Start(ctx, "alerting.Resolve", trace.WithAttributes(
		attribute.String("alert_id", alertID.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var resolved *domain.Alert
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var resolveErr error
		resolved, resolveErr = s.alerts.Resolve(txCtx, alertID, &userID, s.now())
		if resolveErr != nil {
			return fmt.Errorf("resolve alert: %w", resolveErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeAlert,
			EntityID:   &resolved.ID,
			Action:     domain.AuditActionResolved,
			ActorID:    userID,
			Changes: map[string]any{
				"alert_type": string(resolved.AlertType),
				"severity":   string(resolved.Severity),
				"message":    resolved.Message,
			},
		}); auditErr != nil {
			return fmt.Errorf("audit resolve: %w", auditErr)
		}

		s.notify(txCtx, domain.EventAlertResolved, resolved, "manual")
		return nil
	})
	if err != nil {
		return nil, timeoutError(ctx, err)
	}
	return resolved, nil
}

// List returns alerts newest first. A nil Resolved lists both states.
func (s *Service) List(ctx context.Context, filter domain.AlertFilter) ([]domain.Alert, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if filter.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	filter.Limit = s.pageLimit(filter.Limit)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	alerts, err := s.alerts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

// Get returns a single alert.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}
