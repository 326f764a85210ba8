package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/service/alerting"
	"github.com/heartmarshall/netscheme-backend/internal/transport/dto"
)

type alertService interface {
	Evaluate(ctx context.Context, input alerting.EvaluateInput) (*alerting.EvaluateResult, error)
	Resolve(ctx context.Context, alertID uuid.UUID) (*domain.Alert, error)
	List(ctx context.Context, filter domain.AlertFilter) ([]domain.Alert, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
}

// AlertHandler serves alerts and accepts metric samples for evaluation.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alerts")}
}

type metricRequest struct {
	EntityType string     `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id"`
	Metric     string     `json:"metric"`
	Value      *float64   `json:"value"`
}

type evaluateResponse struct {
	Opened   []dto.Alert `json:"opened"`
	Resolved []dto.Alert `json:"resolved"`
}

// Evaluate checks one metric sample against the active thresholds.
func (h *AlertHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req metricRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Value == nil {
		handleError(h.log, w, r, domain.NewValidationError("value", "required"))
		return
	}

	res, err := h.svc.Evaluate(r.Context(), alerting.EvaluateInput{
		EntityType: domain.EntityType(req.EntityType),
		EntityID:   req.EntityID,
		Metric:     req.Metric,
		Value:      *req.Value,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluateResponse{
		Opened:   dto.Map(res.Opened, dto.FromAlert),
		Resolved: dto.Map(res.Resolved, dto.FromAlert),
	})
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := domain.AlertFilter{
		Resolved:   q.bool("resolved"),
		EntityType: optional[domain.EntityType](q.str("entity_type")),
		Limit:      q.int("limit"),
		Offset:     q.int("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	alerts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": dto.Map(alerts, dto.FromAlert)})
}

func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	alert, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromAlert(alert))
}

func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	alert, err := h.svc.Resolve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromAlert(alert))
}
