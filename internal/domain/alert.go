package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Threshold is a monitoring rule evaluated against reported metrics.
type Threshold struct {
	ID         uuid.UUID
	Name       string
	Metric     string
	Comparison Comparison
	Value      float64
	EntityType EntityType
	Severity   Severity
	IsActive   bool
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Breached reports whether value violates this threshold.
func (t *Threshold) Breached(value float64) bool {
	return t.Comparison.Breached(value, t.Value)
}

// SeverityFor returns the alert severity for a breaching value. The base
// severity escalates to critical once the distance from the bound exceeds
// factor times the magnitude of the bound. Equality rules and zero bounds
// never escalate.
func (t *Threshold) SeverityFor(value, factor float64) Severity {
	base := t.Severity
	if !base.IsValid() {
		base = SeverityMedium
	}
	if t.Comparison == ComparisonEQ || t.Value == 0 || factor <= 0 {
		return base
	}
	if math.Abs(value-t.Value) > factor*math.Abs(t.Value) {
		return SeverityCritical
	}
	return base
}

// Alert is a raised condition. Open alerts have IsResolved false.
type Alert struct {
	ID          uuid.UUID
	AlertType   AlertType
	Severity    Severity
	Message     string
	EntityType  EntityType
	EntityID    *uuid.UUID
	ThresholdID *uuid.UUID
	Value       *float64
	IsResolved  bool
	ResolvedBy  *uuid.UUID
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}
