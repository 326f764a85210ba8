package threshold

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

const (
	maxNameLength   = 100
	maxMetricLength = 128
)

// CreateInput holds the parameters for creating a threshold. An empty
// Severity defaults to medium.
type CreateInput struct {
	Name       string            `yaml:"name"`
	Metric     string            `yaml:"metric"`
	Comparison domain.Comparison `yaml:"comparison"`
	Value      float64           `yaml:"value"`
	EntityType domain.EntityType `yaml:"entity_type"`
	Severity   domain.Severity   `yaml:"severity"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := i.fieldErrors("")
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: prefix + field, Message: msg})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		add("name", "required")
	}
	if len(name) > maxNameLength {
		add("name", "max 100 characters")
	}
	errs = append(errs, metricErrors(prefix, i.Metric)...)
	if !i.Comparison.IsValid() {
		add("comparison", "must be one of gt, lt, eq, gte, lte")
	}
	if math.IsNaN(i.Value) || math.IsInf(i.Value, 0) {
		add("value", "must be a finite number")
	}
	if strings.TrimSpace(string(i.EntityType)) == "" {
		add("entity_type", "required")
	}
	if i.Severity != "" && !i.Severity.IsValid() {
		add("severity", "must be one of low, medium, high, critical")
	}
	return errs
}

func metricErrors(prefix, metric string) []domain.FieldError {
	metric = strings.TrimSpace(metric)
	switch {
	case metric == "":
		return []domain.FieldError{{Field: prefix + "metric", Message: "required"}}
	case len(metric) > maxMetricLength:
		return []domain.FieldError{{Field: prefix + "metric", Message: "max 128 characters"}}
	}
	return nil
}

// UpdateInput holds a partial threshold update. Nil fields are left unchanged.
type UpdateInput struct {
	ID         uuid.UUID
	Name       *string
	Metric     *string
	Comparison *domain.Comparison
	Value      *float64
	EntityType *domain.EntityType
	Severity   *domain.Severity
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Metric == nil && i.Comparison == nil && i.Value == nil && i.EntityType == nil && i.Severity == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Metric != nil {
		errs = append(errs, metricErrors("", *i.Metric)...)
	}
	if i.Comparison != nil && !i.Comparison.IsValid() {
		errs = append(errs, domain.FieldError{Field: "comparison", Message: "must be one of gt, lt, eq, gte, lte"})
	}
	if i.Value != nil && (math.IsNaN(*i.Value) || math.IsInf(*i.Value, 0)) {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be a finite number"})
	}
	if i.EntityType != nil && strings.TrimSpace(string(*i.EntityType)) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "required"})
	}
	if i.Severity != nil && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be one of low, medium, high, critical"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportInput is a batch of thresholds created together.
type ImportInput struct {
	Thresholds []CreateInput `yaml:"thresholds"`
}

// Validate checks every item and reports errors with their index.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Thresholds) == 0 {
		errs = append(errs, domain.FieldError{Field: "thresholds", Message: "at least one threshold required"})
	}
	if len(i.Thresholds) > MaxImportBatch {
		errs = append(errs, domain.FieldError{Field: "thresholds", Message: fmt.Sprintf("max %d thresholds per import", MaxImportBatch)})
	}
	for idx, item := range i.Thresholds {
		errs = append(errs, item.fieldErrors(fmt.Sprintf("thresholds[%d].", idx))...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
