// Package change implements the Change Ledger on PostgreSQL. Every pending
// proposal reserves the identifying keys it touches in pending_change_keys,
// so no two pending proposals share a key, and Decide only ever moves a row
// out of pending, releasing its keys in the same statement.
package change

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
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

const (
	table     = "pending_changes"
	keysTable = "pending_change_keys"

	pendingKeyIndex = "pending_changes_one_pending_per_key"
	reservedKeyPK   = "pending_change_keys_pkey"
)

var columns = []string{
	"id", "entity_type", "entity_id", "entity_key", "target_key", "kind", "maker_id", "reviewer_id",
	"old_data", "new_data", "status", "comments", "created_at", "decided_at",
}

// Repo provides pending change persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new change ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID          `db:"id"`
	EntityType string             `db:"entity_type"`
	EntityID   pgtype.UUID        `db:"entity_id"`
	EntityKey  string             `db:"entity_key"`
	TargetKey  *string            `db:"target_key"`
	Kind       string             `db:"kind"`
	MakerID    uuid.UUID          `db:"maker_id"`
	ReviewerID pgtype.UUID        `db:"reviewer_id"`
	OldData    []byte             `db:"old_data"`
	NewData    []byte             `db:"new_data"`
	Status     string             `db:"status"`
	Comments   *string            `db:"comments"`
	CreatedAt  time.Time          `db:"created_at"`
	DecidedAt  pgtype.Timestamptz `db:"decided_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending proposal and reserves its keys. A proposal that
// touches a key another pending proposal holds fails with
// domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, c domain.PendingChange) (*domain.PendingChange, error) {
	oldData, err := marshalPayload(c.OldData)
	if err != nil {
		return nil, fmt.Errorf("pending_change marshal old_data: %w", err)
	}
	newData, err := marshalPayload(c.NewData)
	if err != nil {
		return nil, fmt.Errorf("pending_change marshal new_data: %w", err)
	}

	var targetKey *string
	if c.TargetKey != "" && c.TargetKey != c.EntityKey {
		targetKey = &c.TargetKey
	}

	insert, args, err := postgres.Builder().Insert(table).
		Columns("id", "entity_type", "entity_id", "entity_key", "target_key", "kind", "maker_id", "old_data", "new_data", "status", "created_at").
		Values(c.ID, string(c.EntityType), postgres.PgUUID(c.EntityID), c.EntityKey, targetKey, string(c.Kind), c.MakerID,
			oldData, newData, string(domain.ChangeStatusPending), c.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending_change insert: %w", err)
	}

	args = append(args, c.ReservedKeys())
	sql := fmt.Sprintf(`WITH created AS (%s), reserved AS (
		INSERT INTO %s (entity_type, entity_key, change_id)
		SELECT created.entity_type, k, created.id FROM created, unnest($%d::text[]) AS k
	) SELECT * FROM created`, insert, keysTable, len(args))

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		switch postgres.ConstraintName(err) {
		case pendingKeyIndex, reservedKeyPK:
			return nil, fmt.Errorf("%w: %s %q already has a pending change touching %s",
				domain.ErrConflict, c.EntityType, c.EntityKey, strings.Join(c.ReservedKeys(), ", "))
		}
		return nil, postgres.MapError(err, "pending_change", c.ID)
	}
	return toDomain(rw)
}

// Decide moves a pending change to a terminal status and releases its
// reserved keys. A change that is no longer pending fails with
// domain.ErrAlreadyDecided.
func (r *Repo) Decide(ctx context.Context, p domain.DecisionRecord) (*domain.PendingChange, error) {
	if !p.Status.IsTerminal() {
		return nil, fmt.Errorf("pending_change %s: %w", p.ChangeID, domain.NewValidationError("status", "must be approved or rejected"))
	}

	query := postgres.Builder().Update(table).
		Set("status", string(p.Status)).
		Set("reviewer_id", p.ReviewerID).
		Set("comments", p.Comments).
		Set("decided_at", p.DecidedAt).
		Where(sq.Eq{"id": p.ChangeID, "status": string(domain.ChangeStatusPending)}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if p.EntityID != nil {
		query = query.Set("entity_id", *p.EntityID)
	}

	update, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending_change decide: %w", err)
	}
	sql := fmt.Sprintf(`WITH decided AS (%s), released AS (
		DELETE FROM %s k USING decided WHERE k.change_id = decided.id
	) SELECT * FROM decided`, update, keysTable)

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		mapped := postgres.MapError(err, "pending_change", p.ChangeID)
		if errors.Is(mapped, domain.ErrNotFound) {
			return nil, fmt.Errorf("pending_change %s: %w", p.ChangeID, domain.ErrAlreadyDecided)
		}
		return nil, mapped
	}
	return toDomain(rw)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a change by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingChange, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a change and locks its row until the enclosing
// transaction ends, so concurrent decisions on it serialise.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PendingChange, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.PendingChange, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending_change query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "pending_change", id)
	}
	return toDomain(rw)
}

// List returns changes matching filter, newest first. A nil Status lists
// every status.
func (r *Repo) List(ctx context.Context, filter domain.ChangeFilter) ([]domain.PendingChange, error) {
	limit, offset := postgres.Page(filter.Limit, filter.Offset)

	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id").
		Limit(limit).Offset(offset)
	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.EntityType != nil {
		query = query.Where(sq.Eq{"entity_type": string(*filter.EntityType)})
	}
	if filter.Kind != nil {
		query = query.Where(sq.Eq{"kind": string(*filter.Kind)})
	}
	if filter.MakerID != nil {
		query = query.Where(sq.Eq{"maker_id": *filter.MakerID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending_change list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "pending_change", "list")
	}

	out := make([]domain.PendingChange, 0, len(rows))
	for _, rw := range rows {
		c, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// CountPending returns the number of undecided proposals.
func (r *Repo) CountPending(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).
		Where(sq.Eq{"status": string(domain.ChangeStatusPending)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build pending_change count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "pending_change", "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func marshalPayload(p domain.Payload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func unmarshalPayload(raw []byte) (domain.Payload, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p domain.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func toDomain(rw row) (*domain.PendingChange, error) {
	c := &domain.PendingChange{
		ID:         rw.ID,
		EntityType: domain.EntityType(rw.EntityType),
		EntityID:   postgres.UUIDPtr(rw.EntityID),
		EntityKey:  rw.EntityKey,
		Kind:       domain.ChangeKind(rw.Kind),
		MakerID:    rw.MakerID,
		ReviewerID: postgres.UUIDPtr(rw.ReviewerID),
		Status:     domain.ChangeStatus(rw.Status),
		Comments:   rw.Comments,
		CreatedAt:  rw.CreatedAt.UTC(),
		DecidedAt:  postgres.TimePtr(rw.DecidedAt),
	}
	if rw.TargetKey != nil {
		c.TargetKey = *rw.TargetKey
	}

	var err error
	if c.OldData, err = unmarshalPayload(rw.OldData); err != nil {
		return nil, fmt.Errorf("pending_change %s unmarshal old_data: %w", rw.ID, err)
	}
	if c.NewData, err = unmarshalPayload(rw.NewData); err != nil {
		return nil, fmt.Errorf("pending_change %s unmarshal new_data: %w", rw.ID, err)
	}
	return c, nil
}
