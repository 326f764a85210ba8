package alerting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netscheme_metric_evaluations_total",
		Help: "Metric reports evaluated against thresholds, by entity type",
	}, []string{"entity_type"})

	alertsOpened = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netscheme_alerts_opened_total",
		Help: "Alerts opened by type and severity",
	}, []string{"alert_type", "severity"})

	alertsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netscheme_alerts_resolved_total",
		Help: "Alerts resolved by type and how (auto or manual)",
	}, []string{"alert_type", "mode"})
)
