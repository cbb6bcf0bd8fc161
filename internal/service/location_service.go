package service

import (
	"context"
	"log/slog"

	"geotrack/internal/cache"
	"geotrack/internal/domain"
	"geotrack/pkg/validator"

	"github.com/google/uuid"
)

// LocationTracker fronts the cache manager: request validation lives here,
// tier orchestration stays in the manager.
type LocationTracker struct {
	manager *cache.Manager
	logger  *slog.Logger
}

func NewLocationTracker(manager *cache.Manager, logger *slog.Logger) *LocationTracker {
	return &LocationTracker{manager: manager, logger: logger}
}

func (s *LocationTracker) Update(ctx context.Context, req domain.LocationUpdateRequest) (*domain.LocationRecord, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.manager.UpdateLocation(ctx, req)
}

func (s *LocationTracker) Get(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error) {
	return s.manager.GetLocation(ctx, entityID)
}

func (s *LocationTracker) Search(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error) {
	return s.manager.SearchLocations(ctx, q)
}

func (s *LocationTracker) Delete(ctx context.Context, entityID uuid.UUID) error {
	s.manager.DeleteLocation(ctx, entityID)
	return nil
}
