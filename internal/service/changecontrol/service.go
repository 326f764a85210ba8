// Package changecontrol is the maker-checker engine: it takes proposals for
// governed entities, holds them pending, and applies them only after an
// independent reviewer approves.
package changecontrol

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/netscheme-backend/internal/config"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/schema"
)

var tracer = otel.Tracer("github.com/heartmarshall/netscheme-backend/internal/service/changecontrol")

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GovernedEntity, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.GovernedEntity, error)
	GetByKey(ctx context.Context, entityType domain.EntityType, key string) (*domain.GovernedEntity, error)
	List(ctx context.Context, filter domain.EntityFilter) ([]domain.GovernedEntity, error)
	Apply(ctx context.Context, m domain.Mutation, actorID uuid.UUID) (*domain.GovernedEntity, error)
}

type changeRepo interface {
	Create(ctx context.Context, c domain.PendingChange) (*domain.PendingChange, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingChange, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PendingChange, error)
	Decide(ctx context.Context, d domain.DecisionRecord) (*domain.PendingChange, error)
	List(ctx context.Context, filter domain.ChangeFilter) ([]domain.PendingChange, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	AfterCommit(ctx context.Context, fn func())
}

type statusEvaluator interface {
	EvaluateStatus(ctx context.Context, t domain.StatusTransition) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event domain.Event)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements proposal intake and the decision state machine.
type Service struct {
	log       *slog.Logger
	entities  entityRepo
	changes   changeRepo
	audit     auditLogger
	tx        txManager
	registry  *schema.Registry
	evaluator statusEvaluator
	events    eventPublisher
	cfg       config.ChangeControlConfig
	now       func() time.Time
}

// NewService creates a new change control service. events may be nil.
func NewService(
	logger *slog.Logger,
	entities entityRepo,
	changes changeRepo,
	audit auditLogger,
	tx txManager,
	registry *schema.Registry,
	evaluator statusEvaluator,
	events eventPublisher,
	cfg config.ChangeControlConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "changecontrol"),
		entities:  entities,
		changes:   changes,
		audit:     audit,
		tx:        tx,
		registry:  registry,
		evaluator: evaluator,
		events:    events,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// withTimeout bounds a whole engine operation so a stuck store surfaces as
// a storage error instead of blocking the caller.
func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// publishAfterCommit queues an event for delivery once the current
// transaction commits.
func (s *Service) publishAfterCommit(ctx context.Context, typ domain.EventType, data any) {
	if s.events == nil {
		return
	}
	at := s.now()
	s.tx.AfterCommit(ctx, func() {
		s.events.Publish(context.WithoutCancel(ctx), domain.Event{Type: typ, At: at, Data: data})
	})
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
