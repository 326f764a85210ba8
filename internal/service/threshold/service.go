// Package threshold administers monitoring thresholds. Thresholds are not
// governed by maker-checker; every mutation is still audited.
package threshold

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

type thresholdRepo interface {
	Create(ctx context.Context, th domain.Threshold) (*domain.Threshold, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Threshold, error)
	Update(ctx context.Context, th domain.Threshold) (*domain.Threshold, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Threshold, error)
	List(ctx context.Context, filter domain.ThresholdFilter) ([]domain.Threshold, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const MaxImportBatch = 500

// Service provides threshold management operations.
type Service struct {
	log        *slog.Logger
	thresholds thresholdRepo
	audit      auditLogger
	tx         txManager
	now        func() time.Time
}

// NewService creates a new threshold service.
func NewService(logger *slog.Logger, thresholds thresholdRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		log:        logger.With("service", "threshold"),
		thresholds: thresholds,
		audit:      audit,
		tx:         tx,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func snapshot(th *domain.Threshold) map[string]any {
	return map[string]any{
		"name":        th.Name,
		"metric":      th.Metric,
		"comparison":  string(th.Comparison),
		"value":       th.Value,
		"entity_type": string(th.EntityType),
		"severity":    string(th.Severity),
	}
}
