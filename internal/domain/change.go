package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingChange is a proposed mutation awaiting an independent decision.
// Once Status leaves pending the record is immutable.
type PendingChange struct {
	ID         uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	EntityKey  string
	// TargetKey is the key an update moves the entity to. Empty when the
	// key does not change.
	TargetKey  string
	Kind       ChangeKind
	MakerID    uuid.UUID
	ReviewerID *uuid.UUID
	OldData    Payload
	NewData    Payload
	Status     ChangeStatus
	Comments   *string
	CreatedAt  time.Time
	DecidedAt  *time.Time
}

// IsPending reports whether the change can still be decided.
func (c *PendingChange) IsPending() bool {
	return c.Status == ChangeStatusPending
}

// ReservedKeys lists every identifying key the change holds while pending.
func (c *PendingChange) ReservedKeys() []string {
	if c.TargetKey == "" || c.TargetKey == c.EntityKey {
		return []string{c.EntityKey}
	}
	return []string{c.EntityKey, c.TargetKey}
}

// Decision is a reviewer's verdict on a pending change.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Status returns the terminal change status the decision leads to.
func (d Decision) Status() ChangeStatus {
	if d == DecisionApproved {
		return ChangeStatusApproved
	}
	return ChangeStatusRejected
}

// DecisionRecord is the terminal transition persisted for a change.
type DecisionRecord struct {
	ChangeID   uuid.UUID
	Status     ChangeStatus
	ReviewerID uuid.UUID
	Comments   *string
	DecidedAt  time.Time
	// EntityID is set when an approved create materialised a new entity.
	EntityID *uuid.UUID
}
