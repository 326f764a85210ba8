package domain

import (
	"time"

	"github.com/google/uuid"
)

// GovernedEntity is the live, approved state of a configuration entity.
// It only changes through an approved PendingChange.
type GovernedEntity struct {
	ID         uuid.UUID
	EntityType EntityType
	Key        string
	Payload    Payload
	Status     EntityStatus
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Snapshot returns the payload as captured into a change's OldData. The
// status is folded in under StatusKey so staleness checks cover it.
func (e *GovernedEntity) Snapshot() Payload {
	out := e.Payload.Clone()
	if out == nil {
		out = Payload{}
	}
	out[StatusKey] = string(e.Status)
	return out
}

// MutationOp is the storage operation an approved change resolves to.
type MutationOp string

const (
	MutationInsert MutationOp = "insert"
	MutationUpdate MutationOp = "update"
	MutationDelete MutationOp = "delete"
)

// Mutation is the concrete write produced by applying a change's payload
// to the live entity.
type Mutation struct {
	Op         MutationOp
	EntityID   uuid.UUID
	EntityType EntityType
	Key        string
	Payload    Payload
	Status     EntityStatus
}
