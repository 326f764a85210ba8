// Package dto maps domain values to the JSON shapes served over REST and
// the event stream.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

type Change struct {
	ID         uuid.UUID      `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	EntityKey  string         `json:"entity_key,omitempty"`
	TargetKey  string         `json:"target_key,omitempty"`
	Kind       string         `json:"kind"`
	MakerID    uuid.UUID      `json:"maker_id"`
	ReviewerID *uuid.UUID     `json:"reviewer_id,omitempty"`
	OldData    domain.Payload `json:"old_data,omitempty"`
	NewData    domain.Payload `json:"new_data,omitempty"`
	Status     string         `json:"status"`
	Comments   *string        `json:"comments,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	DecidedAt  *time.Time     `json:"decided_at,omitempty"`
}

func FromChange(c *domain.PendingChange) Change {
	return Change{
		ID:         c.ID,
		EntityType: string(c.EntityType),
		EntityID:   c.EntityID,
		EntityKey:  c.EntityKey,
		TargetKey:  c.TargetKey,
		Kind:       string(c.Kind),
		MakerID:    c.MakerID,
		ReviewerID: c.ReviewerID,
		OldData:    c.OldData,
		NewData:    c.NewData,
		Status:     string(c.Status),
		Comments:   c.Comments,
		CreatedAt:  c.CreatedAt,
		DecidedAt:  c.DecidedAt,
	}
}

type Entity struct {
	ID         uuid.UUID      `json:"id"`
	EntityType string         `json:"entity_type"`
	Key        string         `json:"key"`
	Payload    domain.Payload `json:"payload"`
	Status     string         `json:"status"`
	CreatedBy  uuid.UUID      `json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func FromEntity(e *domain.GovernedEntity) Entity {
	return Entity{
		ID:         e.ID,
		EntityType: string(e.EntityType),
		Key:        e.Key,
		Payload:    e.Payload,
		Status:     string(e.Status),
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

type AuditRecord struct {
	ID         uuid.UUID      `json:"id"`
	Seq        int64          `json:"seq"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	Action     string         `json:"action"`
	ActorID    uuid.UUID      `json:"actor_id"`
	ChangeID   *uuid.UUID     `json:"change_id,omitempty"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func FromAuditRecord(r *domain.AuditRecord) AuditRecord {
	return AuditRecord{
		ID:         r.ID,
		Seq:        r.Seq,
		EntityType: string(r.EntityType),
		EntityID:   r.EntityID,
		Action:     string(r.Action),
		ActorID:    r.ActorID,
		ChangeID:   r.ChangeID,
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
}

type Threshold struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Metric     string    `json:"metric"`
	Comparison string    `json:"comparison"`
	Value      float64   `json:"value"`
	EntityType string    `json:"entity_type"`
	Severity   string    `json:"severity"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromThreshold(t *domain.Threshold) Threshold {
	return Threshold{
		ID:         t.ID,
		Name:       t.Name,
		Metric:     t.Metric,
		Comparison: string(t.Comparison),
		Value:      t.Value,
		EntityType: string(t.EntityType),
		Severity:   string(t.Severity),
		CreatedBy:  t.CreatedBy,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type Alert struct {
	ID          uuid.UUID  `json:"id"`
	AlertType   string     `json:"alert_type"`
	Severity    string     `json:"severity"`
	Message     string     `json:"message"`
	EntityType  string     `json:"entity_type"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty"`
	ThresholdID *uuid.UUID `json:"threshold_id,omitempty"`
	Value       *float64   `json:"value,omitempty"`
	IsResolved  bool       `json:"is_resolved"`
	ResolvedBy  *uuid.UUID `json:"resolved_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func FromAlert(a *domain.Alert) Alert {
	return Alert{
		ID:          a.ID,
		AlertType:   string(a.AlertType),
		Severity:    string(a.Severity),
		Message:     a.Message,
		EntityType:  string(a.EntityType),
		EntityID:    a.EntityID,
		ThresholdID: a.ThresholdID,
		Value:       a.Value,
		IsResolved:  a.IsResolved,
		ResolvedBy:  a.ResolvedBy,
		CreatedAt:   a.CreatedAt,
		ResolvedAt:  a.ResolvedAt,
	}
}

// Event is the envelope written to event stream subscribers.
type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// FromEvent converts known payloads to their JSON shapes and passes
// anything else through.
func FromEvent(e domain.Event) Event {
	out := Event{Type: string(e.Type), At: e.At, Data: e.Data}
	switch d := e.Data.(type) {
	case *domain.PendingChange:
		out.Data = FromChange(d)
	case *domain.Alert:
		out.Data = FromAlert(d)
	}
	return out
}

// Map converts a slice with fn.
func Map[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}
