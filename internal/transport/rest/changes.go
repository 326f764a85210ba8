package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/service/changecontrol"
	"github.com/heartmarshall/netscheme-backend/internal/transport/dto"
)

type changeService interface {
	Propose(ctx context.Context, input changecontrol.ProposeInput) (*domain.PendingChange, error)
	Decide(ctx context.Context, input changecontrol.DecideInput) (*domain.PendingChange, error)
	ListPending(ctx context.Context, filter domain.ChangeFilter) ([]domain.PendingChange, error)
	GetChange(ctx context.Context, id uuid.UUID) (*domain.PendingChange, error)
	ListEntities(ctx context.Context, filter domain.EntityFilter) ([]domain.GovernedEntity, error)
	GetEntity(ctx context.Context, id uuid.UUID) (*domain.GovernedEntity, error)
}

// ChangeHandler serves the change ledger and the live entities it governs.
type ChangeHandler struct {
	svc changeService
	log *slog.Logger
}

func NewChangeHandler(svc changeService, logger *slog.Logger) *ChangeHandler {
	return &ChangeHandler{svc: svc, log: logger.With("handler", "changes")}
}

type proposeRequest struct {
	EntityType string         `json:"entity_type"`
	Kind       string         `json:"kind"`
	EntityID   *uuid.UUID     `json:"entity_id"`
	NewData    domain.Payload `json:"new_data"`
}

type decideRequest struct {
	Decision string  `json:"decision"`
	Comments *string `json:"comments"`
}

func (h *ChangeHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	change, err := h.svc.Propose(r.Context(), changecontrol.ProposeInput{
		EntityType: domain.EntityType(req.EntityType),
		Kind:       domain.ChangeKind(req.Kind),
		EntityID:   req.EntityID,
		NewData:    req.NewData,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.FromChange(change))
}

func (h *ChangeHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req decideRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	change, err := h.svc.Decide(r.Context(), changecontrol.DecideInput{
		ChangeID: id,
		Decision: domain.Decision(req.Decision),
		Comments: req.Comments,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromChange(change))
}

func (h *ChangeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := domain.ChangeFilter{
		Status:     optional[domain.ChangeStatus](q.str("status")),
		EntityType: optional[domain.EntityType](q.str("entity_type")),
		Kind:       optional[domain.ChangeKind](q.str("kind")),
		MakerID:    q.uuid("maker_id"),
		Limit:      q.int("limit"),
		Offset:     q.int("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	changes, err := h.svc.ListPending(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"changes": dto.Map(changes, dto.FromChange)})
}

func (h *ChangeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	change, err := h.svc.GetChange(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromChange(change))
}

func (h *ChangeHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := domain.EntityFilter{
		EntityType: optional[domain.EntityType](q.str("entity_type")),
		Status:     optional[domain.EntityStatus](q.str("status")),
		Limit:      q.int("limit"),
		Offset:     q.int("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entities, err := h.svc.ListEntities(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entities": dto.Map(entities, dto.FromEntity)})
}

func (h *ChangeHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	entity, err := h.svc.GetEntity(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromEntity(entity))
}
