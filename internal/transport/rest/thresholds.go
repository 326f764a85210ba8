package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/service/threshold"
	"github.com/heartmarshall/netscheme-backend/internal/transport/dto"
)

type thresholdService interface {
	Create(ctx context.Context, input threshold.CreateInput) (*domain.Threshold, error)
	Update(ctx context.Context, input threshold.UpdateInput) (*domain.Threshold, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Threshold, error)
	List(ctx context.Context, filter domain.ThresholdFilter) ([]domain.Threshold, error)
}

// ThresholdHandler serves threshold administration.
type ThresholdHandler struct {
	svc thresholdService
	log *slog.Logger
}

func NewThresholdHandler(svc thresholdService, logger *slog.Logger) *ThresholdHandler {
	return &ThresholdHandler{svc: svc, log: logger.With("handler", "thresholds")}
}

type createThresholdRequest struct {
	Name       string  `json:"name"`
	Metric     string  `json:"metric"`
	Comparison string  `json:"comparison"`
	Value      float64 `json:"value"`
	EntityType string  `json:"entity_type"`
	Severity   string  `json:"severity"`
}

type updateThresholdRequest struct {
	Name       *string  `json:"name"`
	Metric     *string  `json:"metric"`
	Comparison *string  `json:"comparison"`
	Value      *float64 `json:"value"`
	EntityType *string  `json:"entity_type"`
	Severity   *string  `json:"severity"`
}

func (h *ThresholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createThresholdRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	th, err := h.svc.Create(r.Context(), threshold.CreateInput{
		Name:       req.Name,
		Metric:     req.Metric,
		Comparison: domain.Comparison(req.Comparison),
		Value:      req.Value,
		EntityType: domain.EntityType(req.EntityType),
		Severity:   domain.Severity(req.Severity),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.FromThreshold(th))
}

func (h *ThresholdHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateThresholdRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	th, err := h.svc.Update(r.Context(), threshold.UpdateInput{
		ID:         id,
		Name:       req.Name,
		Metric:     req.Metric,
		Comparison: optional[domain.Comparison](req.Comparison),
		Value:      req.Value,
		EntityType: optional[domain.EntityType](req.EntityType),
		Severity:   optional[domain.Severity](req.Severity),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromThreshold(th))
}

func (h *ThresholdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ThresholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	th, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromThreshold(th))
}

func (h *ThresholdHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := domain.ThresholdFilter{
		EntityType: optional[domain.EntityType](q.str("entity_type")),
		Metric:     q.str("metric"),
	}

	list, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"thresholds": dto.Map(list, dto.FromThreshold)})
}
