package changecontrol

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// Decide moves a pending change to approved or rejected. Approval applies
// the change to the live entity, and the mutation, ledger update and audit
// record commit together or not at all. A change that is no longer pending
// fails with ErrAlreadyDecided; a live entity that drifted since the
// proposal fails with ErrStaleChange and leaves the change pending.
func (s *Service) Decide(ctx context.Context, input DecideInput) (_ *domain.PendingChange, err error) {
	reviewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	role := domain.UserRole(ctxutil.RoleFromCtx(ctx))
	if !s.cfg.AllowAnyReviewer && !role.CanReview() {
		return nil, fmt.Errorf("%w: role %q may not decide changes", domain.ErrForbidden, role)
	}

	start := time.Now()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := tracer.Start(ctx, "changecontrol.Decide", trace.WithAttributes(
		attribute.String("change_id", input.ChangeID.String()),
		attribute.String("decision", string(input.Decision)),
	))
	defer func() {
		decisionsTotal.WithLabelValues(string(input.Decision), resultLabel(err)).Inc()
		decisionDuration.WithLabelValues(string(input.Decision)).Observe(time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var decided *domain.PendingChange
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		change, getErr := s.changes.GetForUpdate(txCtx, input.ChangeID)
		if getErr != nil {
			return fmt.Errorf("get change: %w", getErr)
		}
		if !change.IsPending() {
			return fmt.Errorf("change %s is %s: %w", change.ID, change.Status, domain.ErrAlreadyDecided)
		}
		if !s.cfg.AllowSelfReview && change.MakerID == reviewerID {
			return &domain.PolicyError{
				Rule:   "segregation_of_duties",
				Reason: "the reviewer of a change must differ from its maker",
			}
		}

		record := domain.DecisionRecord{
			ChangeID:   change.ID,
			Status:     input.Decision.Status(),
			ReviewerID: reviewerID,
			Comments:   input.Comments,
			DecidedAt:  s.now(),
		}

		var transition *domain.StatusTransition
		if input.Decision == domain.DecisionApproved {
			applied, tr, applyErr := s.applyChange(txCtx, change)
			if applyErr != nil {
				return applyErr
			}
			if change.Kind == domain.ChangeKindCreate {
				record.EntityID = &applied.ID
			}
			transition = tr
		}

		var decideErr error
		decided, decideErr = s.changes.Decide(txCtx, record)
		if decideErr != nil {
			return fmt.Errorf("record decision: %w", decideErr)
		}

		action := domain.AuditActionRejected
		if input.Decision == domain.DecisionApproved {
			action = domain.AuditActionApproved
		}
		changes := map[string]any{
			"kind":       string(decided.Kind),
			"entity_key": decided.EntityKey,
			"decision":   string(input.Decision),
		}
		if input.Comments != nil {
			changes["comments"] = *input.Comments
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: decided.EntityType,
			EntityID:   decided.EntityID,
			Action:     action,
			ActorID:    reviewerID,
			ChangeID:   &decided.ID,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit decision: %w", auditErr)
		}

		if transition != nil && transition.Changed() && s.evaluator != nil {
			if evalErr := s.evaluator.EvaluateStatus(txCtx, *transition); evalErr != nil {
				return fmt.Errorf("evaluate status: %w", evalErr)
			}
		}

		s.publishAfterCommit(txCtx, domain.EventChangeDecided, decided)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrApply) {
			s.log.ErrorContext(ctx, "approved change could not be applied",
				slog.String("change_id", input.ChangeID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "change decided",
		slog.String("change_id", decided.ID.String()),
		slog.String("decision", string(decided.Status)),
		slog.String("reviewer_id", reviewerID.String()),
		slog.String("maker_id", decided.MakerID.String()),
	)

	return decided, nil
}

// applyChange re-validates the proposal against the locked live entity and
// performs the entity write. It returns the written entity (nil for delete)
// and the entity's status transition.
func (s *Service) applyChange(ctx context.Context, change *domain.PendingChange) (*domain.GovernedEntity, *domain.StatusTransition, error) {
	var live *domain.GovernedEntity
	if change.Kind.RequiresOldData() {
		if change.EntityID == nil {
			return nil, nil, fmt.Errorf("%w: %s change %s has no target entity", domain.ErrApply, change.Kind, change.ID)
		}

		var err error
		live, err = s.entities.GetByIDForUpdate(ctx, *change.EntityID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, nil, fmt.Errorf("%w: %s %s no longer exists", domain.ErrStaleChange, change.EntityType, change.EntityKey)
		case err != nil:
			return nil, nil, fmt.Errorf("lock entity: %w", err)
		}

		if !change.OldData.Equal(live.Snapshot()) {
			return nil, nil, fmt.Errorf("%w: %s %s was modified after change %s was proposed",
				domain.ErrStaleChange, change.EntityType, change.EntityKey, change.ID)
		}
	}

	mutation, err := s.registry.Apply(change, live)
	if err != nil {
		return nil, nil, err
	}

	applied, err := s.entities.Apply(ctx, mutation, change.MakerID)
	if err != nil {
		return nil, nil, fmt.Errorf("apply change: %w", err)
	}

	transition := &domain.StatusTransition{
		EntityType: change.EntityType,
		EntityID:   mutation.EntityID,
		To:         mutation.Status,
	}
	if live != nil {
		transition.From = live.Status
	}
	if mutation.Op == domain.MutationDelete {
		transition.To = ""
	}
	return applied, transition, nil
}
