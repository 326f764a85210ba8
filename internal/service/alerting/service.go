// Package alerting evaluates reported metrics against thresholds and manages
// the open/resolved lifecycle of alerts.
package alerting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/netscheme-backend/internal/config"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

var tracer = otel.Tracer("github.com/heartmarshall/netscheme-backend/internal/service/alerting")

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type thresholdRepo interface {
	LockActive(ctx context.Context, entityType domain.EntityType, metric string) ([]domain.Threshold, error)
}

type alertRepo interface {
	Create(ctx context.Context, a domain.Alert) (*domain.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID, resolvedBy *uuid.UUID, at time.Time) (*domain.Alert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	GetOpenByThreshold(ctx context.Context, thresholdID uuid.UUID, entityID *uuid.UUID) (*domain.Alert, error)
	GetOpenDown(ctx context.Context, entityID uuid.UUID) (*domain.Alert, error)
	List(ctx context.Context, filter domain.AlertFilter) ([]domain.Alert, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	AfterCommit(ctx context.Context, fn func())
}

type eventPublisher interface {
	Publish(ctx context.Context, event domain.Event)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements threshold evaluation and alert resolution.
type Service struct {
	log        *slog.Logger
	thresholds thresholdRepo
	alerts     alertRepo
	audit      auditLogger
	tx         txManager
	events     eventPublisher
	cfg        config.AlertingConfig
	now        func() time.Time
}

// NewService creates a new alerting service. events may be nil.
func NewService(
	logger *slog.Logger,
	thresholds thresholdRepo,
	alerts alertRepo,
	audit auditLogger,
	tx txManager,
	events eventPublisher,
	cfg config.AlertingConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "alerting"),
		thresholds: thresholds,
		alerts:     alerts,
		audit:      audit,
		tx:         tx,
		events:     events,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// withTimeout bounds an alerting operation by alerting.operation_timeout.
func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// timeoutError reports an operation cut off by its deadline as a storage
// outage.
func timeoutError(ctx context.Context, err error) error {
	if errors.Is(err, domain.ErrStorageUnavailable) || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}

func (s *Service) pageLimit(limit int) int {
	if limit <= 0 {
		limit = s.cfg.DefaultListLimit
	}
	if s.cfg.MaxListLimit > 0 && limit > s.cfg.MaxListLimit {
		limit = s.cfg.MaxListLimit
	}
	return limit
}

// notify registers the side effects of an alert transition to run once the
// enclosing transaction commits. mode is "auto" or "manual" for resolutions.
func (s *Service) notify(ctx context.Context, typ domain.EventType, a *domain.Alert, mode string) {
	at := s.now()
	s.tx.AfterCommit(ctx, func() {
		ctx := context.WithoutCancel(ctx)
		attrs := []any{
			slog.String("alert_id", a.ID.String()),
			slog.String("alert_type", string(a.AlertType)),
			slog.String("severity", string(a.Severity)),
		}

		switch typ {
		case domain.EventAlertOpened:
			alertsOpened.WithLabelValues(string(a.AlertType), string(a.Severity)).Inc()
			s.log.InfoContext(ctx, "alert opened", append(attrs, slog.String("message", a.Message))...)
		case domain.EventAlertResolved:
			alertsResolved.WithLabelValues(string(a.AlertType), mode).Inc()
			s.log.InfoContext(ctx, "alert resolved", append(attrs, slog.String("mode", mode))...)
		}

		if s.events != nil {
			s.events.Publish(ctx, domain.Event{Type: typ, At: at, Data: a})
		}
	})
}
