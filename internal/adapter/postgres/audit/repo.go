// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
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

const table = "audit_records"

var columns = []string{
	"seq", "id", "entity_type", "entity_id", "action", "actor_id", "change_id", "changes", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	Seq        int64       `db:"seq"`
	ID         uuid.UUID   `db:"id"`
	EntityType string      `db:"entity_type"`
	EntityID   pgtype.UUID `db:"entity_id"`
	Action     string      `db:"action"`
	ActorID    uuid.UUID   `db:"actor_id"`
	ChangeID   pgtype.UUID `db:"change_id"`
	Changes    []byte      `db:"changes"`
	CreatedAt  time.Time   `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns it with its sequence number.
// Inside a transaction a failure here aborts the whole transaction.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (*domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return nil, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder().Insert(table).
		Columns("id", "entity_type", "entity_id", "action", "actor_id", "change_id", "changes", "created_at").
		Values(record.ID, string(record.EntityType), postgres.PgUUID(record.EntityID), string(record.Action),
			record.ActorID, postgres.PgUUID(record.ChangeID), changesJSON, record.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit_record insert: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_record", record.ID)
	}
	return toDomain(rw)
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit records matching filter in reverse insertion order.
func (r *Repo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error) {
	limit, offset := postgres.Page(filter.Limit, filter.Offset)

	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("seq DESC").
		Limit(limit).Offset(offset)
	if filter.EntityType != nil {
		query = query.Where(sq.Eq{"entity_type": string(*filter.EntityType)})
	}
	if filter.EntityID != nil {
		query = query.Where(sq.Eq{"entity_id": *filter.EntityID})
	}
	if filter.ActorID != nil {
		query = query.Where(sq.Eq{"actor_id": *filter.ActorID})
	}
	if filter.Action != nil {
		query = query.Where(sq.Eq{"action": string(*filter.Action)})
	}
	if filter.ChangeID != nil {
		query = query.Where(sq.Eq{"change_id": *filter.ChangeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit_record list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_record", "list")
	}

	records := make([]domain.AuditRecord, 0, len(rows))
	for _, rw := range rows {
		rec, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) (*domain.AuditRecord, error) {
	record := &domain.AuditRecord{
		ID:         rw.ID,
		Seq:        rw.Seq,
		EntityType: domain.EntityType(rw.EntityType),
		EntityID:   postgres.UUIDPtr(rw.EntityID),
		Action:     domain.AuditAction(rw.Action),
		ActorID:    rw.ActorID,
		ChangeID:   postgres.UUIDPtr(rw.ChangeID),
		CreatedAt:  rw.CreatedAt.UTC(),
	}

	if len(rw.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(rw.Changes, &changes); err != nil {
			return nil, fmt.Errorf("audit_record %s unmarshal changes: %w", rw.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}
