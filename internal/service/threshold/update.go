package threshold

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// Update applies a partial update to an active threshold.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Threshold, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Threshold
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.thresholds.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get threshold: %w", getErr)
		}
		if !old.IsActive {
			return fmt.Errorf("threshold %s: %w", input.ID, domain.ErrNotFound)
		}

		next := *old
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.Metric != nil {
			next.Metric = strings.TrimSpace(*input.Metric)
		}
		if input.Comparison != nil {
			next.Comparison = *input.Comparison
		}
		if input.Value != nil {
			next.Value = *input.Value
		}
		if input.EntityType != nil {
			next.EntityType = domain.EntityType(strings.TrimSpace(string(*input.EntityType)))
		}
		if input.Severity != nil {
			next.Severity = *input.Severity
		}

		var updateErr error
		updated, updateErr = s.thresholds.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update threshold: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		changes := diff(snapshot(old), snapshot(updated))
		if len(changes) == 0 {
			return nil
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeThreshold,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdated,
			ActorID:    userID,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "threshold updated",
		slog.String("user_id", userID.String()),
		slog.String("threshold_id", input.ID.String()),
	)

	return updated, nil
}

// diff returns only changed fields for audit.
func diff(old, updated map[string]any) map[string]any {
	changes := make(map[string]any)
	for k, newVal := range updated {
		if oldVal := old[k]; oldVal != newVal {
			changes[k] = map[string]any{"old": oldVal, "new": newVal}
		}
	}
	return changes
}
