package domain

import "github.com/google/uuid"

// ChangeFilter selects pending changes for listing.
type ChangeFilter struct {
	Status     *ChangeStatus
	EntityType *EntityType
	Kind       *ChangeKind
	MakerID    *uuid.UUID
	Limit      int
	Offset     int
}

// EntityFilter selects live entities for listing.
type EntityFilter struct {
	EntityType *EntityType
	Status     *EntityStatus
	Limit      int
	Offset     int
}

// EntityCountFilter narrows entity counts. ClientType matches the connection
// payload field.
type EntityCountFilter struct {
	EntityType EntityType
	Status     *EntityStatus
	ClientType *string
}

// AuditFilter selects audit records. Results are newest first.
type AuditFilter struct {
	EntityType *EntityType
	EntityID   *uuid.UUID
	ActorID    *uuid.UUID
	Action     *AuditAction
	ChangeID   *uuid.UUID
	Limit      int
	Offset     int
}

// AlertFilter selects alerts. A nil Resolved returns both open and resolved.
type AlertFilter struct {
	Resolved   *bool
	EntityType *EntityType
	Limit      int
	Offset     int
}

// ThresholdFilter selects active thresholds.
type ThresholdFilter struct {
	EntityType *EntityType
	Metric     *string
}
