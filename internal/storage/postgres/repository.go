package postgres

import (
	"context"
	"time"

	"geotrack/internal/domain"

	"github.com/google/uuid"
)

// LocationRepository is the durable tier of the location cache plus the
// append-only history. Get returns (nil, nil) when no fresh row exists.
type LocationRepository interface {
	Name() string
	Get(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error)
	Set(ctx context.Context, rec *domain.LocationRecord) error
	Delete(ctx context.Context, entityID uuid.UUID) error
	Search(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error)
	AppendHistory(ctx context.Context, rec *domain.LocationRecord) error
	SweepExpired(ctx context.Context, historyRetention time.Duration) (int64, error)
}

type GeofenceRepository interface {
	Create(ctx context.Context, gf *domain.Geofence) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error)
	List(ctx context.Context, page, limit int) ([]*domain.Geofence, int64, error)
	Update(ctx context.Context, gf *domain.Geofence) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete
	ListActive(ctx context.Context) ([]*domain.Geofence, error)
	ListInBounds(ctx context.Context, b domain.Bounds, f domain.GeofenceBoundsFilter) ([]*domain.Geofence, error)
}

type EventRepository interface {
	SaveBatch(ctx context.Context, events []domain.GeofenceEvent) error
	ListByEntity(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.GeofenceEvent, error)
	CountUniqueEntities(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Locations() LocationRepository { return p.Location }
func (p *Postgres) Geofences() GeofenceRepository { return p.Geofence }
func (p *Postgres) Events() EventRepository       { return p.Event }
