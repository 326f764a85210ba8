package schema

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

// Resolve returns the payload an entity would hold after the change and its
// identifying key. For update it merges newData onto the live payload; for
// delete it returns the live payload unchanged.
func (r *Registry) Resolve(kind domain.ChangeKind, t domain.EntityType, live *domain.GovernedEntity, newData domain.Payload) (domain.Payload, string, error) {
	switch kind {
	case domain.ChangeKindCreate:
		key, err := r.KeyOf(t, newData)
		if err != nil {
			return nil, "", err
		}
		return newData.Clone(), key, nil

	case domain.ChangeKindUpdate:
		if live == nil {
			return nil, "", domain.ErrNotFound
		}
		if len(newData) == 0 {
			return nil, "", domain.NewValidationError("new_data", "required")
		}
		merged := live.Payload.Merge(newData)
		key, err := r.KeyOf(t, merged)
		if err != nil {
			return nil, "", err
		}
		return merged, key, nil

	case domain.ChangeKindDelete:
		if live == nil {
			return nil, "", domain.ErrNotFound
		}
		return live.Payload.Clone(), live.Key, nil
	}
	return nil, "", domain.NewValidationError("kind", fmt.Sprintf("invalid change kind %q", kind))
}

// Apply maps an approved change onto the live entity and returns the write to
// perform. live is nil for create. A missing target for update or delete, or
// a payload that no longer validates, is domain.ErrApply.
func (r *Registry) Apply(change *domain.PendingChange, live *domain.GovernedEntity) (domain.Mutation, error) {
	if change.Kind.RequiresOldData() && live == nil {
		return domain.Mutation{}, fmt.Errorf("%w: %s target %s vanished", domain.ErrApply, change.Kind, change.EntityKey)
	}

	payload, key, err := r.Resolve(change.Kind, change.EntityType, live, change.NewData)
	if err != nil {
		return domain.Mutation{}, fmt.Errorf("%w: %w", domain.ErrApply, err)
	}

	m := domain.Mutation{
		EntityType: change.EntityType,
		Key:        key,
		Payload:    payload,
	}

	switch change.Kind {
	case domain.ChangeKindCreate:
		m.Op = domain.MutationInsert
		m.EntityID = uuid.New()
		m.Status = domain.EntityStatusPending
		if s, ok := change.NewData.Status(); ok {
			m.Status = s
		}
	case domain.ChangeKindUpdate:
		m.Op = domain.MutationUpdate
		m.EntityID = live.ID
		m.Status = live.Status
		if s, ok := change.NewData.Status(); ok {
			m.Status = s
		}
	case domain.ChangeKindDelete:
		m.Op = domain.MutationDelete
		m.EntityID = live.ID
		m.Status = live.Status
	}
	return m, nil
}
