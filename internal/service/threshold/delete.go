package threshold

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// Delete deactivates a threshold. Open alerts it raised stay open until
// resolved by an operator.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deleted, delErr := s.thresholds.Deactivate(txCtx, id)
		if delErr != nil {
			return fmt.Errorf("deactivate threshold: %w", delErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeThreshold,
			EntityID:   &id,
			Action:     domain.AuditActionDeleted,
			ActorID:    userID,
			Changes:    map[string]any{"old": snapshot(deleted)},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "threshold deleted",
		slog.String("user_id", userID.String()),
		slog.String("threshold_id", id.String()),
	)

	return nil
}
