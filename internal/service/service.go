package service

import (
	"context"
	"time"

	"geotrack/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// LocationService is the write/read surface of the multi-tier location cache.
type LocationService interface {
	Update(ctx context.Context, req domain.LocationUpdateRequest) (*domain.LocationRecord, error)
	Get(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error)
	Search(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error)
	Delete(ctx context.Context, entityID uuid.UUID) error
}

// GeofenceService is the admin registry plus the candidate lookup used by the
// evaluator.
type GeofenceService interface {
	Create(ctx context.Context, req domain.CreateGeofenceRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error)
	List(ctx context.Context, page, limit int) ([]*domain.Geofence, int64, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateGeofenceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListInBounds(ctx context.Context, b domain.Bounds, f domain.GeofenceBoundsFilter) ([]*domain.Geofence, error)
	CandidatesNear(ctx context.Context, lat, lng float64) ([]domain.Geofence, error)
}

// CheckService evaluates one position against every relevant geofence.
type CheckService interface {
	Check(ctx context.Context, req domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error)
}

type StatsService interface {
	EntityEvents(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.GeofenceEvent, error)
	ActiveEntities(ctx context.Context, minutes int) (int64, error)
}

// GeofenceStore mirrors the durable geofence repository.
type GeofenceStore interface {
	Create(ctx context.Context, gf *domain.Geofence) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error)
	List(ctx context.Context, page, limit int) ([]*domain.Geofence, int64, error)
	Update(ctx context.Context, gf *domain.Geofence) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]*domain.Geofence, error)
	ListInBounds(ctx context.Context, b domain.Bounds, f domain.GeofenceBoundsFilter) ([]*domain.Geofence, error)
}

// GeofenceCacheStore is the hot-side geofence state: cached definitions, the
// active set, the recently-evaluated index and per-entity inside/outside
// state.
type GeofenceCacheStore interface {
	GetGeofence(ctx context.Context, id uuid.UUID) (*domain.Geofence, error)
	SetGeofence(ctx context.Context, gf *domain.Geofence) error
	DeleteGeofence(ctx context.Context, id uuid.UUID) error
	GetActive(ctx context.Context) ([]domain.Geofence, error)
	SetActive(ctx context.Context, fences []domain.Geofence) error
	InvalidateActive(ctx context.Context) error
	TouchRecent(ctx context.Context, id uuid.UUID) error
	RecentIDs(ctx context.Context, limit int64) ([]uuid.UUID, error)
	EntityFences(ctx context.Context, entityID uuid.UUID) ([]uuid.UUID, bool, error)
	SetEntityFences(ctx context.Context, entityID uuid.UUID, ids []uuid.UUID) error
}

// GeoBucketIndex is the coarse geohash candidate index.
type GeoBucketIndex interface {
	Update(ctx context.Context, id uuid.UUID, lat, lng float64) error
	Remove(ctx context.Context, id uuid.UUID) error
	Near(ctx context.Context, lat, lng float64, limit int) ([]uuid.UUID, error)
}

// EventLog is the append-only geofence event store.
type EventLog interface {
	SaveBatch(ctx context.Context, events []domain.GeofenceEvent) error
	ListByEntity(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.GeofenceEvent, error)
	CountUniqueEntities(ctx context.Context, minutes int) (int64, error)
}

type ActionEnqueuer interface {
	Enqueue(ctx context.Context, payload domain.ActionPayload) error
}

// EventStream fans events out to the analytics pipeline.
type EventStream interface {
	Publish(ctx context.Context, events []domain.GeofenceEvent) error
}

type ActionDequeuer interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*domain.ActionPayload, error)
}

type ctxKey string

type Service struct {
	LocationService LocationService
	GeofenceService GeofenceService
	CheckService    CheckService
	StatsService    StatsService
}

func NewService(
	locationService LocationService,
	geofenceService GeofenceService,
	checkService CheckService,
	statsService StatsService,
) *Service {
	return &Service{
		LocationService: locationService,
		GeofenceService: geofenceService,
		CheckService:    checkService,
		StatsService:    statsService,
	}
}

func (s *Service) Check(ctx context.Context, req domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error) {
	return s.CheckService.Check(ctx, req)
}
