package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for non-conflicting test keys.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ConnectionPayload returns a valid connection payload for node id nodeID.
func ConnectionPayload(nodeID string) domain.Payload {
	return domain.Payload{
		"client_type":       "acquiring",
		"connection_type":   "client_listener",
		"client_node_id":    nodeID,
		"client_ip_address": "10.0.0.1",
		"client_port":       float64(5000),
		"mti_supported":     []any{"0100", "0200"},
	}
}

// SeedEntity inserts a live connection entity and returns it.
func SeedEntity(t *testing.T, pool *pgxpool.Pool, status domain.EntityStatus) domain.GovernedEntity {
	t.Helper()

	key := "NODE-" + UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.GovernedEntity{
		ID:         uuid.New(),
		EntityType: domain.EntityTypeConnection,
		Key:        key,
		Payload:    ConnectionPayload(key),
		Status:     status,
		CreatedBy:  uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	payload, err := json.Marshal(e.Payload)
	if err != nil {
		t.Fatalf("testhelper: SeedEntity marshal payload: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO governed_entities (id, entity_type, entity_key, payload, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, string(e.EntityType), e.Key, payload, string(e.Status), e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntity insert: %v", err)
	}

	return e
}

// SeedPendingChange inserts a pending create proposal for a fresh key.
func SeedPendingChange(t *testing.T, pool *pgxpool.Pool, makerID uuid.UUID) domain.PendingChange {
	t.Helper()

	key := "NODE-" + UniqueSuffix()
	c := domain.PendingChange{
		ID:         uuid.New(),
		EntityType: domain.EntityTypeConnection,
		EntityKey:  key,
		Kind:       domain.ChangeKindCreate,
		MakerID:    makerID,
		NewData:    ConnectionPayload(key),
		Status:     domain.ChangeStatusPending,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	newData, err := json.Marshal(c.NewData)
	if err != nil {
		t.Fatalf("testhelper: SeedPendingChange marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO pending_changes (id, entity_type, entity_key, kind, maker_id, new_data, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, string(c.EntityType), c.EntityKey, string(c.Kind), c.MakerID, newData, string(c.Status), c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPendingChange insert: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO pending_change_keys (entity_type, entity_key, change_id) VALUES ($1, $2, $3)`,
		string(c.EntityType), c.EntityKey, c.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPendingChange reserve key: %v", err)
	}

	return c
}

// SeedThreshold inserts an active threshold on the given metric.
func SeedThreshold(t *testing.T, pool *pgxpool.Pool, metric string, cmp domain.Comparison, value float64) domain.Threshold {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	th := domain.Threshold{
		ID:         uuid.New(),
		Name:       metric + " " + string(cmp) + " " + UniqueSuffix(),
		Metric:     metric,
		Comparison: cmp,
		Value:      value,
		EntityType: domain.EntityTypeConnection,
		Severity:   domain.SeverityMedium,
		IsActive:   true,
		CreatedBy:  uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO thresholds (id, name, metric, comparison, value, entity_type, severity, is_active, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		th.ID, th.Name, th.Metric, string(th.Comparison), th.Value, string(th.EntityType),
		string(th.Severity), th.IsActive, th.CreatedBy, th.CreatedAt, th.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedThreshold insert: %v", err)
	}

	return th
}
