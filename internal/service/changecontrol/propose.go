package changecontrol

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// Propose records a proposed create, update or delete as a pending change.
// The live entity is not touched. Update and delete snapshot the live entity
// into OldData for the staleness check at decision time. An update that
// renames the entity holds both its current and its new key while pending.
func (s *Service) Propose(ctx context.Context, input ProposeInput) (_ *domain.PendingChange, err error) {
	makerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.registry.Supports(input.EntityType) {
		return nil, s.registry.UnsupportedTypeError(input.EntityType)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := tracer.Start(ctx, "changecontrol.Propose", trace.WithAttributes(
		attribute.String("entity_type", string(input.EntityType)),
		attribute.String("kind", string(input.Kind)),
	))
	defer func() {
		proposalsTotal.WithLabelValues(string(input.EntityType), string(input.Kind), resultLabel(err)).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var created *domain.PendingChange
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		change := domain.PendingChange{
			ID:         uuid.New(),
			EntityType: input.EntityType,
			Kind:       input.Kind,
			MakerID:    makerID,
			Status:     domain.ChangeStatusPending,
			CreatedAt:  s.now(),
		}

		var live *domain.GovernedEntity
		if input.Kind.RequiresOldData() {
			var getErr error
			live, getErr = s.entities.GetByID(txCtx, *input.EntityID)
			if getErr != nil {
				return fmt.Errorf("get entity: %w", getErr)
			}
			if live.EntityType != input.EntityType {
				return domain.NewValidationError("entity_type",
					fmt.Sprintf("entity %s is a %s, not a %s", live.ID, live.EntityType, input.EntityType))
			}
			change.EntityID = &live.ID
			change.OldData = live.Snapshot()
		}
		if input.Kind.RequiresNewData() {
			change.NewData = input.NewData.Clone()
		}

		// Resolve validates the resulting payload against the entity schema.
		_, key, resolveErr := s.registry.Resolve(input.Kind, input.EntityType, live, change.NewData)
		if resolveErr != nil {
			return resolveErr
		}

		change.EntityKey = key
		if live != nil {
			change.EntityKey = live.Key
			if key != live.Key {
				change.TargetKey = key
			}
		}
		if live == nil || key != live.Key {
			if err := s.ensureKeyFree(txCtx, input.EntityType, key, live); err != nil {
				return err
			}
		}

		var createErr error
		created, createErr = s.changes.Create(txCtx, change)
		if createErr != nil {
			return fmt.Errorf("create change: %w", createErr)
		}

		changes := map[string]any{
			"kind":       string(created.Kind),
			"entity_key": created.EntityKey,
		}
		if created.TargetKey != "" {
			changes["target_key"] = created.TargetKey
		}
		if created.OldData != nil {
			changes["old_data"] = map[string]any(created.OldData)
		}
		if created.NewData != nil {
			changes["new_data"] = map[string]any(created.NewData)
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: created.EntityType,
			EntityID:   created.EntityID,
			Action:     domain.AuditActionCreated,
			ActorID:    makerID,
			ChangeID:   &created.ID,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit proposal: %w", auditErr)
		}

		s.publishAfterCommit(txCtx, domain.EventChangeProposed, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "change proposed",
		slog.String("change_id", created.ID.String()),
		slog.String("entity_type", string(created.EntityType)),
		slog.String("entity_key", created.EntityKey),
		slog.String("kind", string(created.Kind)),
		slog.String("maker_id", makerID.String()),
	)

	return created, nil
}

// ensureKeyFree fails with ErrConflict when a live entity other than self
// already owns key.
func (s *Service) ensureKeyFree(ctx context.Context, t domain.EntityType, key string, self *domain.GovernedEntity) error {
	existing, err := s.entities.GetByKey(ctx, t, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check key: %w", err)
	case self != nil && existing.ID == self.ID:
		return nil
	}
	return fmt.Errorf("%w: %s %q already exists", domain.ErrConflict, t, key)
}
