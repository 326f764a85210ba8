// Package dashboard computes the summary counts shown on the console's
// landing page.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

type entityCounter interface {
	Count(ctx context.Context, f domain.EntityCountFilter) (int, error)
}

type changeCounter interface {
	CountPending(ctx context.Context) (int, error)
}

type alertCounter interface {
	CountOpen(ctx context.Context) (int, error)
}

type thresholdCounter interface {
	CountActive(ctx context.Context) (int, error)
}

// Stats is a point-in-time summary. The counts are read concurrently and
// need not be mutually consistent.
type Stats struct {
	TotalConnections     int `json:"total_connections"`
	ActiveConnections    int `json:"active_connections"`
	AcquiringConnections int `json:"acquiring_connections"`
	IssuingConnections   int `json:"issuing_connections"`
	PendingChanges       int `json:"pending_changes"`
	UnresolvedAlerts     int `json:"unresolved_alerts"`
	ActiveThresholds     int `json:"active_thresholds"`
}

// Service provides dashboard statistics.
type Service struct {
	log        *slog.Logger
	entities   entityCounter
	changes    changeCounter
	alerts     alertCounter
	thresholds thresholdCounter
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, entities entityCounter, changes changeCounter, alerts alertCounter, thresholds thresholdCounter) *Service {
	return &Service{
		log:        logger.With("service", "dashboard"),
		entities:   entities,
		changes:    changes,
		alerts:     alerts,
		thresholds: thresholds,
	}
}

// Stats returns the current summary counts.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	var st Stats
	active := domain.EntityStatusActive
	acquiring, issuing := "acquiring", "issuing"

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int, name string, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	connections := func(f domain.EntityCountFilter) func(context.Context) (int, error) {
		f.EntityType = domain.EntityTypeConnection
		return func(ctx context.Context) (int, error) { return s.entities.Count(ctx, f) }
	}

	count(&st.TotalConnections, "connections", connections(domain.EntityCountFilter{}))
	count(&st.ActiveConnections, "active connections", connections(domain.EntityCountFilter{Status: &active}))
	count(&st.AcquiringConnections, "acquiring connections", connections(domain.EntityCountFilter{ClientType: &acquiring}))
	count(&st.IssuingConnections, "issuing connections", connections(domain.EntityCountFilter{ClientType: &issuing}))
	count(&st.PendingChanges, "pending changes", s.changes.CountPending)
	count(&st.UnresolvedAlerts, "open alerts", s.alerts.CountOpen)
	count(&st.ActiveThresholds, "active thresholds", s.thresholds.CountActive)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}
