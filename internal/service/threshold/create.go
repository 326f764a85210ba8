package threshold

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// Create adds an active threshold and records a created audit entry.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Threshold, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Threshold
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.create(txCtx, userID, input)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "threshold created",
		slog.String("user_id", userID.String()),
		slog.String("threshold_id", created.ID.String()),
		slog.String("metric", created.Metric),
	)

	return created, nil
}

// Import creates a batch of thresholds in one transaction: either all of
// them are created or none.
func (s *Service) Import(ctx context.Context, input ImportInput) ([]domain.Threshold, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.Threshold, 0, len(input.Thresholds))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for idx, item := range input.Thresholds {
			created, createErr := s.create(txCtx, userID, item)
			if createErr != nil {
				return fmt.Errorf("threshold %d: %w", idx, createErr)
			}
			out = append(out, *created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "thresholds imported",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(out)),
	)

	return out, nil
}

func (s *Service) create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Threshold, error) {
	severity := input.Severity
	if severity == "" {
		severity = domain.SeverityMedium
	}

	now := s.now()
	created, err := s.thresholds.Create(ctx, domain.Threshold{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(input.Name),
		Metric:     strings.TrimSpace(input.Metric),
		Comparison: input.Comparison,
		Value:      input.Value,
		EntityType: domain.EntityType(strings.TrimSpace(string(input.EntityType))),
		Severity:   severity,
		IsActive:   true,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create threshold: %w", err)
	}

	if auditErr := s.audit.Log(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeThreshold,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreated,
		ActorID:    userID,
		Changes:    map[string]any{"new": snapshot(created)},
	}); auditErr != nil {
		return nil, fmt.Errorf("audit log: %w", auditErr)
	}
	return created, nil
}
