package alerting

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

const maxMetricLength = 128

// EvaluateInput is a single metric report. EntityID is optional; threshold
// alerts are scoped per entity, and reports without one share a scope.
type EvaluateInput struct {
	EntityType domain.EntityType
	EntityID   *uuid.UUID
	Metric     string
	Value      float64
}

// Validate checks all fields and collects all errors.
func (i EvaluateInput) Validate() error {
	var errs []domain.FieldError

	if i.EntityType == "" {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "required"})
	}
	if i.Metric == "" {
		errs = append(errs, domain.FieldError{Field: "metric", Message: "required"})
	} else if len(i.Metric) > maxMetricLength {
		errs = append(errs, domain.FieldError{Field: "metric", Message: "max 128 characters"})
	}
	if math.IsNaN(i.Value) || math.IsInf(i.Value, 0) {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be a finite number"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EvaluateResult lists the alerts one evaluation opened and resolved. Each
// threshold opens at most one alert per entity scope.
type EvaluateResult struct {
	Opened   []domain.Alert
	Resolved []domain.Alert
}

func (r *EvaluateResult) merge(other EvaluateResult) {
	r.Opened = append(r.Opened, other.Opened...)
	r.Resolved = append(r.Resolved, other.Resolved...)
}

// Evaluate applies a metric report to every active threshold scoped to its
// entity type and metric. A breached threshold without an open alert for the
// report's entity opens one; a cleared threshold resolves that alert.
func (s *Service) Evaluate(ctx context.Context, input EvaluateInput) (_ *EvaluateResult, err error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := tracer.Start(ctx, "alerting.Evaluate", trace.WithAttributes(
		attribute.String("entity_type", string(input.EntityType)),
		attribute.String("metric", input.Metric),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	evaluationsTotal.WithLabelValues(string(input.EntityType)).Inc()

	var result EvaluateResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var evalErr error
		result, evalErr = s.evaluate(txCtx, input)
		return evalErr
	})
	if err != nil {
		return nil, timeoutError(ctx, err)
	}
	return &result, nil
}

func (s *Service) evaluate(ctx context.Context, input EvaluateInput) (EvaluateResult, error) {
	var result EvaluateResult

	// Row locks on the thresholds serialise concurrent reports of the same
	// metric, so the open-alert check below cannot race.
	thresholds, err := s.thresholds.LockActive(ctx, input.EntityType, input.Metric)
	if err != nil {
		return result, fmt.Errorf("lock thresholds: %w", err)
	}

	for i := range thresholds {
		th := &thresholds[i]

		open, err := s.alerts.GetOpenByThreshold(ctx, th.ID, input.EntityID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return result, fmt.Errorf("get open alert: %w", err)
		}
		hasOpen := err == nil

		breached := th.Breached(input.Value)
		switch {
		case breached && !hasOpen:
			value := input.Value
			created, err := s.alerts.Create(ctx, domain.Alert{
				ID:          uuid.New(),
				AlertType:   domain.AlertTypeThresholdExceeded,
				Severity:    th.SeverityFor(input.Value, s.cfg.EscalationFactor),
				Message:     fmt.Sprintf("%s: %s %g breaches %s %g", th.Name, input.Metric, input.Value, th.Comparison, th.Value),
				EntityType:  input.EntityType,
				EntityID:    input.EntityID,
				ThresholdID: &th.ID,
				Value:       &value,
				CreatedAt:   s.now(),
			})
			if err != nil {
				return result, fmt.Errorf("open alert: %w", err)
			}
			result.Opened = append(result.Opened, *created)
			s.notify(ctx, domain.EventAlertOpened, created, "")

		case !breached && hasOpen:
			resolved, err := s.alerts.Resolve(ctx, open.ID, nil, s.now())
			if err != nil {
				return result, fmt.Errorf("resolve alert: %w", err)
			}
			result.Resolved = append(result.Resolved, *resolved)
			s.notify(ctx, domain.EventAlertResolved, resolved, "auto")
		}
	}

	return result, nil
}

// EvaluateStatus reacts to an approved change that moved an entity's
// operational status. Leaving active for a down status opens a
// connection_down alert; returning to active, or deletion, resolves it.
// The new status is also reported as the configured status metric (1 for
// active, 0 otherwise) for that entity alone. It joins the caller's
// transaction.
func (s *Service) EvaluateStatus(ctx context.Context, t domain.StatusTransition) (err error) {
	if !t.Changed() {
		return nil
	}

	ctx, span := tracer.Start(ctx, "alerting.EvaluateStatus", trace.WithAttributes(
		attribute.String("entity_type", string(t.EntityType)),
		attribute.String("entity_id", t.EntityID.String()),
		attribute.String("from", string(t.From)),
		attribute.String("to", string(t.To)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		switch {
		case t.From == domain.EntityStatusActive && t.To.IsDown():
			if err := s.openDown(txCtx, t); err != nil {
				return err
			}
		case t.To == domain.EntityStatusActive || t.To == "":
			if err := s.resolveDown(txCtx, t.EntityID); err != nil {
				return err
			}
		}

		if t.To == "" || s.cfg.StatusMetric == "" {
			return nil
		}
		value := 0.0
		if t.To == domain.EntityStatusActive {
			value = 1
		}
		if _, err := s.evaluate(txCtx, EvaluateInput{
			EntityType: t.EntityType,
			EntityID:   &t.EntityID,
			Metric:     s.cfg.StatusMetric,
			Value:      value,
		}); err != nil {
			return fmt.Errorf("evaluate status metric: %w", err)
		}
		return nil
	})
}

func (s *Service) openDown(ctx context.Context, t domain.StatusTransition) error {
	_, err := s.alerts.GetOpenDown(ctx, t.EntityID)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("get open down alert: %w", err)
	}

	severity := domain.Severity(s.cfg.DownSeverity)
	if !severity.IsValid() {
		severity = domain.SeverityHigh
	}

	created, err := s.alerts.Create(ctx, domain.Alert{
		ID:         uuid.New(),
		AlertType:  domain.AlertTypeConnectionDown,
		Severity:   severity,
		Message:    fmt.Sprintf("%s %s went from %s to %s", t.EntityType, t.EntityID, t.From, t.To),
		EntityType: t.EntityType,
		EntityID:   &t.EntityID,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return fmt.Errorf("open down alert: %w", err)
	}
	s.notify(ctx, domain.EventAlertOpened, created, "")
	return nil
}

func (s *Service) resolveDown(ctx context.Context, entityID uuid.UUID) error {
	open, err := s.alerts.GetOpenDown(ctx, entityID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("get open down alert: %w", err)
	}

	resolved, err := s.alerts.Resolve(ctx, open.ID, nil, s.now())
	if err != nil {
		return fmt.Errorf("resolve down alert: %w", err)
	}
	s.notify(ctx, domain.EventAlertResolved, resolved, "auto")
	return nil
}
