package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres/change"
	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres/entity"
	thresholdrepo "github.com/heartmarshall/netscheme-backend/internal/adapter/postgres/threshold"
	"github.com/heartmarshall/netscheme-backend/internal/adapter/redis"
	"github.com/heartmarshall/netscheme-backend/internal/auth"
	"github.com/heartmarshall/netscheme-backend/internal/config"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/schema"
	"github.com/heartmarshall/netscheme-backend/internal/service/alerting"
	"github.com/heartmarshall/netscheme-backend/internal/service/audittrail"
	"github.com/heartmarshall/netscheme-backend/internal/service/changecontrol"
	"github.com/heartmarshall/netscheme-backend/internal/service/dashboard"
	"github.com/heartmarshall/netscheme-backend/internal/service/threshold"
	"github.com/heartmarshall/netscheme-backend/internal/transport/middleware"
	"github.com/heartmarshall/netscheme-backend/internal/transport/rest"
	"github.com/heartmarshall/netscheme-backend/internal/transport/ws"
)

type publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

// Services is the wired service layer over one connection pool.
type Services struct {
	Changes    *changecontrol.Service
	Alerting   *alerting.Service
	Thresholds *threshold.Service
	Audit      *audittrail.Service
	Dashboard  *dashboard.Service
}

// NewServices wires repositories and services. events may be nil.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, events publisher) *Services {
	txm := postgres.NewTxManager(pool)

	entities := entity.New(pool)
	changes := change.New(pool)
	audits := audit.New(pool)
	thresholds := thresholdrepo.New(pool)
	alerts := alert.New(pool)

	alertSvc := alerting.NewService(logger, thresholds, alerts, audits, txm, events, cfg.Alerting)

	return &Services{
		Changes: changecontrol.NewService(logger, entities, changes, audits, txm,
			schema.NewRegistry(), alertSvc, events, cfg.ChangeControl),
		Alerting:   alertSvc,
		Thresholds: threshold.NewService(logger, thresholds, audits, txm),
		Audit:      audittrail.NewService(logger, audits),
		Dashboard:  dashboard.NewService(logger, entities, changes, alerts, thresholds),
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, then
// drains in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, pool, cfg.Database.MigrationsDir, logger); err != nil {
			return err
		}
	}

	checks := []rest.Check{{Name: "database", Ping: pool.Ping, Critical: true}}

	// events must stay a nil interface, not a nil *ws.Hub, when the stream
	// is off.
	var hub *ws.Hub
	var events publisher
	if !cfg.Events.Disabled {
		hub = ws.NewHub(logger, cfg.Events)
		events = hub
		defer hub.Close()
	}

	svcs := NewServices(cfg, logger, pool, events)

	limit, stopLimiter := newRateLimit(ctx, cfg.RateLimit, logger, &checks)
	defer stopLimiter()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), checks...),
		Changes:    rest.NewChangeHandler(svcs.Changes, logger),
		Alerts:     rest.NewAlertHandler(svcs.Alerting, logger),
		Thresholds: rest.NewThresholdHandler(svcs.Thresholds, logger),
		Reports:    rest.NewReportHandler(svcs.Audit, svcs.Dashboard, logger),
	}
	if hub != nil {
		handlers.Events = hub
	}

	router := rest.NewRouter(handlers, middleware.Chain(middleware.Auth(jwt), limit))
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if hub != nil {
		hub.Close()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, dir string, logger *slog.Logger) error {
	m, err := NewMigrator(pool, dir, logger)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck
	return m.Up(ctx)
}

// newRateLimit picks the limiter backend. A Redis that cannot be reached at
// startup falls back to the in-process limiter.
func newRateLimit(ctx context.Context, cfg config.RateLimitConfig, logger *slog.Logger, checks *[]rest.Check) (middleware.Middleware, func()) {
	if cfg.Disabled {
		return nil, func() {}
	}

	if cfg.UsesRedis() {
		rl, err := redis.NewRateLimiter(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RequestsPerMinute)
		if err == nil {
			*checks = append(*checks, rest.Check{Name: "redis", Ping: rl.Ping})
			logger.Info("rate limiting via redis", slog.String("addr", cfg.RedisAddr))
			return middleware.RateLimit(rl, logger), func() { _ = rl.Close() }
		}
		logger.Warn("redis rate limiter unavailable, using in-process limiter",
			slog.String("addr", cfg.RedisAddr),
			slog.String("error", err.Error()),
		)
	}

	ml := middleware.NewMemoryLimiter(cfg.RequestsPerMinute, cfg.Burst, time.Minute)
	return middleware.RateLimit(ml, logger), ml.Stop
}
