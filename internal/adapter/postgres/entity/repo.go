// Package entity implements the live Entity Store on PostgreSQL. Rows are
// only written through Apply, which the decision engine calls with the
// mutation of an approved change.
package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

const table = "governed_entities"

var columns = []string{
	"id", "entity_type", "entity_key", "payload", "status", "created_by", "created_at", "updated_at",
}

// Repo provides governed entity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	EntityType string    `db:"entity_type"`
	EntityKey  string    `db:"entity_key"`
	Payload    []byte    `db:"payload"`
	Status     string    `db:"status"`
	CreatedBy  uuid.UUID `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the live entity with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GovernedEntity, error) {
	return r.get(ctx, sq.Eq{"id": id}, false, id)
}

// GetByIDForUpdate returns the entity and locks its row until the enclosing
// transaction ends. It must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.GovernedEntity, error) {
	return r.get(ctx, sq.Eq{"id": id}, true, id)
}

// GetByKey returns the live entity of the given type owning key.
func (r *Repo) GetByKey(ctx context.Context, entityType domain.EntityType, key string) (*domain.GovernedEntity, error) {
	return r.get(ctx, sq.Eq{"entity_type": string(entityType), "entity_key": key}, false, key)
}

func (r *Repo) get(ctx context.Context, where sq.Eq, lock bool, id any) (*domain.GovernedEntity, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(where)
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build governed_entity query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "governed_entity", id)
	}
	return toDomain(rw)
}

// List returns live entities matching filter, most recently updated first.
func (r *Repo) List(ctx context.Context, filter domain.EntityFilter) ([]domain.GovernedEntity, error) {
	limit, offset := postgres.Page(filter.Limit, filter.Offset)

	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("updated_at DESC", "id").
		Limit(limit).Offset(offset)
	if filter.EntityType != nil {
		query = query.Where(sq.Eq{"entity_type": string(*filter.EntityType)})
	}
	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": string(*filter.Status)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build governed_entity list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "governed_entity", "list")
	}

	out := make([]domain.GovernedEntity, 0, len(rows))
	for _, rw := range rows {
		e, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

// Count returns the number of live entities matching f.
func (r *Repo) Count(ctx context.Context, f domain.EntityCountFilter) (int, error) {
	query := postgres.Builder().Select("count(*)").From(table).
		Where(sq.Eq{"entity_type": string(f.EntityType)})
	if f.Status != nil {
		query = query.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.ClientType != nil {
		query = query.Where(sq.Expr("payload ->> 'client_type' = ?", *f.ClientType))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build governed_entity count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "governed_entity", "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Apply performs the storage write for an approved change. actorID is
// recorded as created_by on insert. Update or delete of a row that no longer
// exists fails with domain.ErrApply; an insert whose key is taken fails with
// domain.ErrConflict.
func (r *Repo) Apply(ctx context.Context, m domain.Mutation, actorID uuid.UUID) (*domain.GovernedEntity, error) {
	switch m.Op {
	case domain.MutationInsert:
		return r.insert(ctx, m, actorID)
	case domain.MutationUpdate:
		return r.update(ctx, m)
	case domain.MutationDelete:
		return nil, r.delete(ctx, m.EntityID)
	}
	return nil, fmt.Errorf("%w: unknown mutation op %q", domain.ErrApply, m.Op)
}

func (r *Repo) insert(ctx context.Context, m domain.Mutation, actorID uuid.UUID) (*domain.GovernedEntity, error) {
	payload, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("governed_entity marshal payload: %w", err)
	}

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(m.EntityID, string(m.EntityType), m.Key, payload, string(m.Status), actorID, now, now).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build governed_entity insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		mapped := postgres.MapError(err, "governed_entity", m.Key)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: %s %q already exists", domain.ErrConflict, m.EntityType, m.Key)
		}
		return nil, mapped
	}
	return toDomain(rw)
}

func (r *Repo) update(ctx context.Context, m domain.Mutation) (*domain.GovernedEntity, error) {
	payload, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("governed_entity marshal payload: %w", err)
	}

	sql, args, err := postgres.Builder().Update(table).
		Set("entity_key", m.Key).
		Set("payload", payload).
		Set("status", string(m.Status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": m.EntityID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build governed_entity update: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		mapped := postgres.MapError(err, "governed_entity", m.EntityID)
		switch {
		case errors.Is(mapped, domain.ErrNotFound):
			return nil, fmt.Errorf("%w: governed_entity %s vanished", domain.ErrApply, m.EntityID)
		case errors.Is(mapped, domain.ErrAlreadyExists):
			return nil, fmt.Errorf("%w: %s %q already exists", domain.ErrConflict, m.EntityType, m.Key)
		}
		return nil, mapped
	}
	return toDomain(rw)
}

func (r *Repo) delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build governed_entity delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "governed_entity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: governed_entity %s vanished", domain.ErrApply, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) (*domain.GovernedEntity, error) {
	e := &domain.GovernedEntity{
		ID:         rw.ID,
		EntityType: domain.EntityType(rw.EntityType),
		Key:        rw.EntityKey,
		Status:     domain.EntityStatus(rw.Status),
		CreatedBy:  rw.CreatedBy,
		CreatedAt:  rw.CreatedAt.UTC(),
		UpdatedAt:  rw.UpdatedAt.UTC(),
	}
	if len(rw.Payload) > 0 {
		if err := json.Unmarshal(rw.Payload, &e.Payload); err != nil {
			return nil, fmt.Errorf("governed_entity %s unmarshal payload: %w", rw.ID, err)
		}
	}
	return e, nil
}
