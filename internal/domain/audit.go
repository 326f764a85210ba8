package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an append-only log entry of a change-control or alert
// state transition. Seq gives the insertion order.
type AuditRecord struct {
	ID         uuid.UUID
	Seq        int64
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	ActorID    uuid.UUID
	ChangeID   *uuid.UUID
	Changes    map[string]any
	CreatedAt  time.Time
}
