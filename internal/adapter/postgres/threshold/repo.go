// Package threshold implements threshold persistence on PostgreSQL.
// Deletion is soft: a deactivated threshold is never evaluated again.
package threshold

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

const table = "thresholds"

var columns = []string{
	"id", "name", "metric", "comparison", "value", "entity_type", "severity",
	"is_active", "created_by", "created_at", "updated_at",
}

// Repo provides threshold persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new threshold repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Metric     string    `db:"metric"`
	Comparison string    `db:"comparison"`
	Value      float64   `db:"value"`
	EntityType string    `db:"entity_type"`
	Severity   string    `db:"severity"`
	IsActive   bool      `db:"is_active"`
	CreatedBy  uuid.UUID `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Create inserts a threshold.
func (r *Repo) Create(ctx context.Context, th domain.Threshold) (*domain.Threshold, error) {
	sql, args, err := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(th.ID, th.Name, th.Metric, string(th.Comparison), th.Value, string(th.EntityType),
			string(th.Severity), th.IsActive, th.CreatedBy, th.CreatedAt, th.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build threshold insert: %w", err)
	}
	return r.one(ctx, sql, args, th.ID)
}

// GetByID returns an active or inactive threshold by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Threshold, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build threshold query: %w", err)
	}
	return r.one(ctx, sql, args, id)
}

// Update overwrites the mutable fields of an active threshold.
func (r *Repo) Update(ctx context.Context, th domain.Threshold) (*domain.Threshold, error) {
	sql, args, err := postgres.Builder().Update(table).
		Set("name", th.Name).
		Set("metric", th.Metric).
		Set("comparison", string(th.Comparison)).
		Set("value", th.Value).
		Set("entity_type", string(th.EntityType)).
		Set("severity", string(th.Severity)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": th.ID, "is_active": true}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build threshold update: %w", err)
	}
	return r.one(ctx, sql, args, th.ID)
}

// Deactivate soft-deletes an active threshold.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Threshold, error) {
	sql, args, err := postgres.Builder().Update(table).
		Set("is_active", false).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "is_active": true}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build threshold deactivate: %w", err)
	}
	return r.one(ctx, sql, args, id)
}

// List returns active thresholds matching filter, ordered by name.
func (r *Repo) List(ctx context.Context, filter domain.ThresholdFilter) ([]domain.Threshold, error) {
	return r.list(ctx, filter, false)
}

// LockActive returns the active thresholds for (entityType, metric) and locks
// them until the enclosing transaction ends, so concurrent evaluations of
// the same rule serialise.
func (r *Repo) LockActive(ctx context.Context, entityType domain.EntityType, metric string) ([]domain.Threshold, error) {
	return r.list(ctx, domain.ThresholdFilter{EntityType: &entityType, Metric: &metric}, true)
}

func (r *Repo) list(ctx context.Context, filter domain.ThresholdFilter, lock bool) ([]domain.Threshold, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"is_active": true}).
		OrderBy("name", "id")
	if filter.EntityType != nil {
		query = query.Where(sq.Eq{"entity_type": string(*filter.EntityType)})
	}
	if filter.Metric != nil {
		query = query.Where(sq.Eq{"metric": *filter.Metric})
	}
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build threshold list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "threshold", "list")
	}

	out := make([]domain.Threshold, 0, len(rows))
	for _, rw := range rows {
		out = append(out, toDomain(rw))
	}
	return out, nil
}

// CountActive returns the number of active thresholds.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).Where(sq.Eq{"is_active": true}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build threshold count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "threshold", "count")
	}
	return n, nil
}

func (r *Repo) one(ctx context.Context, sql string, args []any, id uuid.UUID) (*domain.Threshold, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "threshold", id)
	}
	th := toDomain(rw)
	return &th, nil
}

func toDomain(rw row) domain.Threshold {
	return domain.Threshold{
		ID:         rw.ID,
		Name:       rw.Name,
		Metric:     rw.Metric,
		Comparison: domain.Comparison(rw.Comparison),
		Value:      rw.Value,
		EntityType: domain.EntityType(rw.EntityType),
		Severity:   domain.Severity(rw.Severity),
		IsActive:   rw.IsActive,
		CreatedBy:  rw.CreatedBy,
		CreatedAt:  rw.CreatedAt.UTC(),
		UpdatedAt:  rw.UpdatedAt.UTC(),
	}
}
