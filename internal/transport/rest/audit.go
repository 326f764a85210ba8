package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/service/dashboard"
	"github.com/heartmarshall/netscheme-backend/internal/transport/dto"
)

type auditService interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error)
}

type statsService interface {
	Stats(ctx context.Context) (*dashboard.Stats, error)
}

// ReportHandler serves the read-only audit trail and dashboard views.
type ReportHandler struct {
	audit auditService
	stats statsService
	log   *slog.Logger
}

func NewReportHandler(audit auditService, stats statsService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{audit: audit, stats: stats, log: logger.With("handler", "reports")}
}

func (h *ReportHandler) Audit(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := domain.AuditFilter{
		EntityType: optional[domain.EntityType](q.str("entity_type")),
		EntityID:   q.uuid("entity_id"),
		ActorID:    q.uuid("actor_id"),
		Action:     optional[domain.AuditAction](q.str("action")),
		ChangeID:   q.uuid("change_id"),
		Limit:      q.int("limit"),
		Offset:     q.int("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.audit.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": dto.Map(records, dto.FromAuditRecord)})
}

func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
