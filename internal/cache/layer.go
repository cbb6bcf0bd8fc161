package cache

import (
	"context"

	"geotrack/internal/domain"

	"github.com/google/uuid"
)

// Layer is one tier of the location cache. Get returns (nil, nil) on a miss.
// Search may return (nil, nil) when the layer cannot serve the predicate set;
// only the durable layer executes arbitrary spatial queries.
type Layer interface {
	Name() string
	Get(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error)
	Set(ctx context.Context, rec *domain.LocationRecord) error
	Delete(ctx context.Context, entityID uuid.UUID) error
	Search(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error)
}

// GeohashIndex maintains the bucket membership used for coarse candidate
// lookups around a point.
type GeohashIndex interface {
	Update(ctx context.Context, entityID uuid.UUID, lat, lng float64) error
	Remove(ctx context.Context, entityID uuid.UUID) error
}

// HistoryAppender records every accepted update into the append-only durable
// history. Failures are logged, never surfaced: history is analytics, not
// the source of truth for current positions.
type HistoryAppender interface {
	AppendHistory(ctx context.Context, rec *domain.LocationRecord) error
}
