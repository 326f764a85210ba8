package changecontrol

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

var (
	proposalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netscheme_change_proposals_total",
		Help: "Change proposals by entity type, kind and result",
	}, []string{"entity_type", "kind", "result"})

	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netscheme_change_decisions_total",
		Help: "Change decisions by decision and result",
	}, []string{"decision", "result"})

	decisionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "netscheme_change_decision_duration_seconds",
		Help:    "Time to decide a change, including apply and audit",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"decision"})
)

// resultLabel reduces an error to a low-cardinality metric label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyDecided):
		return "already_decided"
	case errors.Is(err, domain.ErrStaleChange):
		return "stale"
	case errors.Is(err, domain.ErrPolicyViolation), errors.Is(err, domain.ErrForbidden):
		return "policy"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrApply):
		return "apply_failed"
	default:
		return "error"
	}
}
