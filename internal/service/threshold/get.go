package threshold

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

// Get returns a threshold by id. Deactivated thresholds are not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Threshold, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	th, err := s.thresholds.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get threshold: %w", err)
	}
	if !th.IsActive {
		return nil, fmt.Errorf("threshold %s: %w", id, domain.ErrNotFound)
	}
	return th, nil
}

// List returns active thresholds ordered by name.
func (s *Service) List(ctx context.Context, filter domain.ThresholdFilter) ([]domain.Threshold, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.thresholds.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list thresholds: %w", err)
	}
	return list, nil
}
