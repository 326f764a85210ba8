//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/netscheme-backend/internal/app"
	authpkg "github.com/heartmarshall/netscheme-backend/internal/auth"
	"github.com/heartmarshall/netscheme-backend/internal/config"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/transport/middleware"
	"github.com/heartmarshall/netscheme-backend/internal/transport/rest"
	"github.com/heartmarshall/netscheme-backend/internal/transport/ws"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Hub    *ws.Hub
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		ChangeControl: config.ChangeControlConfig{
			OperationTimeout: 5 * time.Second,
			DefaultListLimit: 50,
			MaxListLimit:     200,
		},
		Alerting: config.AlertingConfig{
			EscalationFactor: 1,
			StatusMetric:     "status_active",
			DownSeverity:     "high",
			OperationTimeout: 5 * time.Second,
			DefaultListLimit: 50,
			MaxListLimit:     200,
		},
		Events: config.EventsConfig{
			WriteTimeout:   5 * time.Second,
			PingInterval:   30 * time.Second,
			ClientBuffer:   64,
			AllowedOrigins: "*",
		},
	}

	hub := ws.NewHub(logger, cfg.Events)
	t.Cleanup(hub.Close)

	svcs := app.NewServices(cfg, logger, pool, hub)
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler("test-version", rest.Check{Name: "database", Ping: pool.Ping, Critical: true}),
		Changes:    rest.NewChangeHandler(svcs.Changes, logger),
		Alerts:     rest.NewAlertHandler(svcs.Alerting, logger),
		Thresholds: rest.NewThresholdHandler(svcs.Thresholds, logger),
		Reports:    rest.NewReportHandler(svcs.Audit, svcs.Dashboard, logger),
		Events:     hub,
	}, middleware.Auth(jwtMgr))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Hub:    hub,
		jwt:    jwtMgr,
	}
}

// actor is a caller with a fixed identity.
type actor struct {
	ID    uuid.UUID
	Token string
}

func (ts *testServer) newActor(t *testing.T, role domain.UserRole) actor {
	t.Helper()
	id := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(id, role)
	require.NoError(t, err)
	return actor{ID: id, Token: tok}
}

// do sends a JSON request and decodes the JSON response into out when out
// is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "decode %s %s", method, path)
	}
	return resp.StatusCode
}

// change is the subset of the change JSON the tests assert on.
type change struct {
	ID         uuid.UUID      `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id"`
	EntityKey  string         `json:"entity_key"`
	Kind       string         `json:"kind"`
	MakerID    uuid.UUID      `json:"maker_id"`
	ReviewerID *uuid.UUID     `json:"reviewer_id"`
	OldData    domain.Payload `json:"old_data"`
	NewData    domain.Payload `json:"new_data"`
	Status     string         `json:"status"`
	Comments   *string        `json:"comments"`
}

type entity struct {
	ID      uuid.UUID      `json:"id"`
	Key     string         `json:"key"`
	Payload domain.Payload `json:"payload"`
	Status  string         `json:"status"`
}

type alert struct {
	ID          uuid.UUID  `json:"id"`
	AlertType   string     `json:"alert_type"`
	Severity    string     `json:"severity"`
	EntityID    *uuid.UUID `json:"entity_id"`
	ThresholdID *uuid.UUID `json:"threshold_id"`
	IsResolved  bool       `json:"is_resolved"`
	ResolvedBy  *uuid.UUID `json:"resolved_by"`
}

type apiError struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}

// connectionPayload returns a valid connection with the given status.
func connectionPayload(nodeID, status string) map[string]any {
	p := map[string]any(testhelper.ConnectionPayload(nodeID))
	p["status"] = status
	return p
}

// createConnection proposes a connection as maker and approves it as
// checker, returning the live entity id.
func (ts *testServer) createConnection(t *testing.T, maker, checker actor, nodeID, status string) uuid.UUID {
	t.Helper()

	var proposed change
	code := ts.do(t, http.MethodPost, "/api/changes", maker.Token, map[string]any{
		"entity_type": "connection",
		"kind":        "create",
		"new_data":    connectionPayload(nodeID, status),
	}, &proposed)
	require.Equal(t, http.StatusCreated, code)

	var decided change
	code = ts.do(t, http.MethodPost, "/api/changes/"+proposed.ID.String()+"/decision", checker.Token,
		map[string]any{"decision": "approved"}, &decided)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, decided.EntityID)
	return *decided.EntityID
}
