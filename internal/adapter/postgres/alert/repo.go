// Package alert implements alert persistence on PostgreSQL. Partial unique
// indexes keep at most one open alert per threshold and entity, and one open
// connection_down alert per entity.
package alert

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

const table = "alerts"

var columns = []string{
	"id", "alert_type", "severity", "message", "entity_type", "entity_id", "threshold_id",
	"value", "is_resolved", "resolved_by", "created_at", "resolved_at",
}

// Repo provides alert persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new alert repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID          `db:"id"`
	AlertType   string             `db:"alert_type"`
	Severity    string             `db:"severity"`
	Message     string             `db:"message"`
	EntityType  string             `db:"entity_type"`
	EntityID    pgtype.UUID        `db:"entity_id"`
	ThresholdID pgtype.UUID        `db:"threshold_id"`
	Value       *float64           `db:"value"`
	IsResolved  bool               `db:"is_resolved"`
	ResolvedBy  pgtype.UUID        `db:"resolved_by"`
	CreatedAt   time.Time          `db:"created_at"`
	ResolvedAt  pgtype.Timestamptz `db:"resolved_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create opens an alert. If an equivalent alert is already open it fails
// with domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, a domain.Alert) (*domain.Alert, error) {
	sql, args, err := postgres.Builder().Insert(table).
		Columns("id", "alert_type", "severity", "message", "entity_type", "entity_id", "threshold_id", "value", "created_at").
		Values(a.ID, string(a.AlertType), string(a.Severity), a.Message, string(a.EntityType),
			postgres.PgUUID(a.EntityID), postgres.PgUUID(a.ThresholdID), a.Value, a.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert insert: %w", err)
	}

	out, err := r.one(ctx, sql, args, a.ID)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("alert %s: %w: an equivalent alert is already open", a.ID, domain.ErrConflict)
	}
	return out, err
}

// Resolve closes an open alert. resolvedBy is nil when the evaluator
// resolves it automatically. An alert that is already closed fails with
// domain.ErrAlreadyResolved; an unknown id with domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, resolvedBy *uuid.UUID, at time.Time) (*domain.Alert, error) {
	sql, args, err := postgres.Builder().Update(table).
		Set("is_resolved", true).
		Set("resolved_by", postgres.PgUUID(resolvedBy)).
		Set("resolved_at", at).
		Where(sq.Eq{"id": id, "is_resolved": false}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert resolve: %w", err)
	}

	out, err := r.one(ctx, sql, args, id)
	if errors.Is(err, domain.ErrNotFound) {
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return nil, fmt.Errorf("alert %s: %w", id, domain.ErrAlreadyResolved)
		}
	}
	return out, err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an alert by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert query: %w", err)
	}
	return r.one(ctx, sql, args, id)
}

// GetOpenByThreshold returns the open alert a threshold raised for an
// entity, or domain.ErrNotFound. A nil entityID matches alerts raised by
// reports without an entity.
func (r *Repo) GetOpenByThreshold(ctx context.Context, thresholdID uuid.UUID, entityID *uuid.UUID) (*domain.Alert, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"threshold_id": thresholdID, "is_resolved": false})
	if entityID == nil {
		query = query.Where(sq.Eq{"entity_id": nil})
	} else {
		query = query.Where(sq.Eq{"entity_id": *entityID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert query: %w", err)
	}
	return r.one(ctx, sql, args, thresholdID)
}

// GetOpenDown returns the open connection_down alert of an entity, or
// domain.ErrNotFound.
func (r *Repo) GetOpenDown(ctx context.Context, entityID uuid.UUID) (*domain.Alert, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{
			"entity_id":   entityID,
			"alert_type":  string(domain.AlertTypeConnectionDown),
			"is_resolved": false,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert query: %w", err)
	}
	return r.one(ctx, sql, args, entityID)
}

// List returns alerts matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.AlertFilter) ([]domain.Alert, error) {
	limit, offset := postgres.Page(filter.Limit, filter.Offset)

	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id").
		Limit(limit).Offset(offset)
	if filter.Resolved != nil {
		query = query.Where(sq.Eq{"is_resolved": *filter.Resolved})
	}
	if filter.EntityType != nil {
		query = query.Where(sq.Eq{"entity_type": string(*filter.EntityType)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "alert", "list")
	}

	out := make([]domain.Alert, 0, len(rows))
	for _, rw := range rows {
		out = append(out, toDomain(rw))
	}
	return out, nil
}

// CountOpen returns the number of unresolved alerts.
func (r *Repo) CountOpen(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).Where(sq.Eq{"is_resolved": false}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build alert count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "alert", "count")
	}
	return n, nil
}

func (r *Repo) one(ctx context.Context, sql string, args []any, id uuid.UUID) (*domain.Alert, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "alert", id)
	}
	a := toDomain(rw)
	return &a, nil
}

func toDomain(rw row) domain.Alert {
	return domain.Alert{
		ID:          rw.ID,
		AlertType:   domain.AlertType(rw.AlertType),
		Severity:    domain.Severity(rw.Severity),
		Message:     rw.Message,
		EntityType:  domain.EntityType(rw.EntityType),
		EntityID:    postgres.UUIDPtr(rw.EntityID),
		ThresholdID: postgres.UUIDPtr(rw.ThresholdID),
		Value:       rw.Value,
		IsResolved:  rw.IsResolved,
		ResolvedBy:  postgres.UUIDPtr(rw.ResolvedBy),
		CreatedAt:   rw.CreatedAt.UTC(),
		ResolvedAt:  postgres.TimePtr(rw.ResolvedAt),
	}
}
