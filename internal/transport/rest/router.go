package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/netscheme-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter. Events may
// be nil when the event stream is disabled.
type Handlers struct {
	Health     *HealthHandler
	Changes    *ChangeHandler
	Alerts     *AlertHandler
	Thresholds *ThresholdHandler
	Reports    *ReportHandler
	Events     http.Handler
}

// NewRouter mounts every route. Health endpoints and /metrics are served bare; api
// wraps the authenticated surface.
func NewRouter(h Handlers, api middleware.Middleware) http.Handler {
	mux := http.NewServeMux()
	api = middleware.Chain(api)

	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Instrument(pattern, api(fn)))
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	handle("POST /api/changes", h.Changes.Propose)
	handle("GET /api/changes", h.Changes.List)
	handle("GET /api/changes/{id}", h.Changes.Get)
	handle("POST /api/changes/{id}/decision", h.Changes.Decide)
	handle("GET /api/entities", h.Changes.ListEntities)
	handle("GET /api/entities/{id}", h.Changes.GetEntity)

	handle("GET /api/audit", h.Reports.Audit)
	handle("GET /api/dashboard/stats", h.Reports.Stats)

	handle("POST /api/metrics", h.Alerts.Evaluate)
	handle("GET /api/alerts", h.Alerts.List)
	handle("GET /api/alerts/{id}", h.Alerts.Get)
	handle("POST /api/alerts/{id}/resolve", h.Alerts.Resolve)

	handle("GET /api/thresholds", h.Thresholds.List)
	handle("POST /api/thresholds", h.Thresholds.Create)
	handle("GET /api/thresholds/{id}", h.Thresholds.Get)
	handle("PATCH /api/thresholds/{id}", h.Thresholds.Update)
	handle("DELETE /api/thresholds/{id}", h.Thresholds.Delete)

	if h.Events != nil {
		mux.Handle("GET /ws/events", api(h.Events))
	}

	return mux
}
