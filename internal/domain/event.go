package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a committed state transition pushed to subscribers.
type EventType string

const (
	EventChangeProposed EventType = "change.proposed"
	EventChangeDecided  EventType = "change.decided"
	EventAlertOpened    EventType = "alert.opened"
	EventAlertResolved  EventType = "alert.resolved"
)

// Event is published only after the transaction that produced it commits.
type Event struct {
	Type EventType `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// StatusTransition describes an entity's operational status change caused
// by an approved change. To is empty when the entity was deleted; From is
// empty when it was created.
type StatusTransition struct {
	EntityType EntityType
	EntityID   uuid.UUID
	From       EntityStatus
	To         EntityStatus
}

// Changed reports whether the operational status actually moved.
func (t StatusTransition) Changed() bool {
	return t.From != t.To
}
