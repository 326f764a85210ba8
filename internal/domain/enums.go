package domain

// EntityType identifies the kind of configuration entity. It tags governed
// entities, pending changes, audit records, thresholds and alerts.
type EntityType string

const (
	EntityTypeConnection     EntityType = "connection"
	EntityTypeBusinessConfig EntityType = "business_config"
	EntityTypeThreshold      EntityType = "threshold"
	EntityTypeAlert          EntityType = "alert"
)

func (t EntityType) String() string { return string(t) }

// ChangeKind is the mutation a PendingChange proposes.
type ChangeKind string

const (
	ChangeKindCreate ChangeKind = "create"
	ChangeKindUpdate ChangeKind = "update"
	ChangeKindDelete ChangeKind = "delete"
)

func (k ChangeKind) String() string { return string(k) }

func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeKindCreate, ChangeKindUpdate, ChangeKindDelete:
		return true
	}
	return false
}

// RequiresOldData reports whether the change must snapshot the live entity.
func (k ChangeKind) RequiresOldData() bool {
	return k == ChangeKindUpdate || k == ChangeKindDelete
}

// RequiresNewData reports whether the change must carry a proposed payload.
func (k ChangeKind) RequiresNewData() bool {
	return k == ChangeKindCreate || k == ChangeKindUpdate
}

// ChangeStatus is the state of a PendingChange. Approved and rejected are terminal.
type ChangeStatus string

const (
	ChangeStatusPending  ChangeStatus = "pending"
	ChangeStatusApproved ChangeStatus = "approved"
	ChangeStatusRejected ChangeStatus = "rejected"
)

func (s ChangeStatus) String() string { return string(s) }

func (s ChangeStatus) IsValid() bool {
	switch s {
	case ChangeStatusPending, ChangeStatusApproved, ChangeStatusRejected:
		return true
	}
	return false
}

func (s ChangeStatus) IsTerminal() bool {
	return s == ChangeStatusApproved || s == ChangeStatusRejected
}

// EntityStatus is the operational status of a governed entity. It is not the
// status of a change.
type EntityStatus string

const (
	EntityStatusPending  EntityStatus = "pending"
	EntityStatusActive   EntityStatus = "active"
	EntityStatusInactive EntityStatus = "inactive"
	EntityStatusError    EntityStatus = "error"
)

func (s EntityStatus) String() string { return string(s) }

func (s EntityStatus) IsValid() bool {
	switch s {
	case EntityStatusPending, EntityStatusActive, EntityStatusInactive, EntityStatusError:
		return true
	}
	return false
}

// IsDown reports whether the status means the link is not carrying traffic.
func (s EntityStatus) IsDown() bool {
	return s == EntityStatusInactive || s == EntityStatusError
}

// AuditAction is the state transition an AuditRecord captures.
type AuditAction string

const (
	AuditActionCreated  AuditAction = "created"
	AuditActionUpdated  AuditAction = "updated"
	AuditActionDeleted  AuditAction = "deleted"
	AuditActionApproved AuditAction = "approved"
	AuditActionRejected AuditAction = "rejected"
	AuditActionResolved AuditAction = "resolved"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionUpdated, AuditActionDeleted,
		AuditActionApproved, AuditActionRejected, AuditActionResolved:
		return true
	}
	return false
}

// Comparison is a threshold operator.
type Comparison string

const (
	ComparisonGT  Comparison = "gt"
	ComparisonLT  Comparison = "lt"
	ComparisonEQ  Comparison = "eq"
	ComparisonGTE Comparison = "gte"
	ComparisonLTE Comparison = "lte"
)

func (c Comparison) String() string { return string(c) }

func (c Comparison) IsValid() bool {
	switch c {
	case ComparisonGT, ComparisonLT, ComparisonEQ, ComparisonGTE, ComparisonLTE:
		return true
	}
	return false
}

// Breached reports whether value violates the bound under this operator.
func (c Comparison) Breached(value, bound float64) bool {
	switch c {
	case ComparisonGT:
		return value > bound
	case ComparisonLT:
		return value < bound
	case ComparisonEQ:
		return value == bound
	case ComparisonGTE:
		return value >= bound
	case ComparisonLTE:
		return value <= bound
	}
	return false
}

// Severity of an alert.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// AlertType classifies what raised an alert.
type AlertType string

const (
	AlertTypeThresholdExceeded AlertType = "threshold_exceeded"
	AlertTypeConnectionDown    AlertType = "connection_down"
)

func (t AlertType) String() string { return string(t) }

// UserRole is the role claim carried by an access token.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleMaker   UserRole = "maker"
	UserRoleChecker UserRole = "checker"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMaker, UserRoleChecker:
		return true
	}
	return false
}

// CanReview reports whether the role may decide pending changes.
func (r UserRole) CanReview() bool {
	return r == UserRoleAdmin || r == UserRoleChecker
}
