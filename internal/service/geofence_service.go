package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geotrack/internal/config"
	"geotrack/internal/domain"
	"geotrack/internal/geo"
	"geotrack/pkg/e"
	"geotrack/pkg/validator"

	"github.com/google/uuid"
)

// GeofenceRegistry owns geofence definitions. Postgres is the source of
// truth; Redis carries hot copies, the active set and the geohash buckets
// used for candidate lookups. Every write invalidates the hot side.
type GeofenceRegistry struct {
	store   GeofenceStore
	cache   GeofenceCacheStore
	buckets GeoBucketIndex
	cfg     config.GeofenceConfig
	logger  *slog.Logger
}

func NewGeofenceRegistry(
	store GeofenceStore,
	cache GeofenceCacheStore,
	buckets GeoBucketIndex,
	cfg config.GeofenceConfig,
	logger *slog.Logger,
) *GeofenceRegistry {
	return &GeofenceRegistry{
		store:   store,
		cache:   cache,
		buckets: buckets,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *GeofenceRegistry) Create(ctx context.Context, req domain.CreateGeofenceRequest) (uuid.UUID, error) {
	const op = "service.Geofence.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	gf := &domain.Geofence{
		Name:        req.Name,
		Description: req.Description,
		Ring:        req.Ring,
		Center:      req.Center,
		RadiusM:     req.RadiusM,
		IsActive:    true,
		Rules:       req.Rules,
		Metadata:    req.Metadata,
		ExpiresAt:   req.ExpiresAt,
	}
	if err := s.normalizeGeometry(gf); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.Create(ctx, gf); err != nil {
		return uuid.Nil, e.Wrap(op, err)
	}

	s.refreshHotState(ctx, gf)
	return gf.ID, nil
}

func (s *GeofenceRegistry) Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error) {
	const op = "service.Geofence.Get"

	cached, err := s.cache.GetGeofence(ctx, id)
	if err != nil {
		s.logger.Warn("geofence cache read failed", slog.String("op", op), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	gf, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetGeofence(ctx, gf); err != nil {
		s.logger.Warn("geofence cache warm failed", slog.String("op", op), slog.Any("error", err))
	}
	return gf, nil
}

func (s *GeofenceRegistry) List(ctx context.Context, page, limit int) ([]*domain.Geofence, int64, error) {
	return s.store.List(ctx, page, limit)
}

func (s *GeofenceRegistry) Update(ctx context.Context, id uuid.UUID, req domain.UpdateGeofenceRequest) error {
	const op = "service.Geofence.Update"

	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	gf, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		gf.Name = *req.Name
	}
	if req.Description != nil {
		gf.Description = *req.Description
	}
	if req.Ring != nil {
		gf.Ring = req.Ring
	}
	if req.Center != nil {
		gf.Center = *req.Center
	}
	if req.RadiusM != nil {
		gf.RadiusM = *req.RadiusM
	}
	if req.IsActive != nil {
		gf.IsActive = *req.IsActive
	}
	if req.Rules != nil {
		gf.Rules = *req.Rules
	}
	if req.Metadata != nil {
		gf.Metadata = req.Metadata
	}
	if req.ExpiresAt != nil {
		gf.ExpiresAt = req.ExpiresAt
	}

	if err := s.normalizeGeometry(gf); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.store.Update(ctx, gf); err != nil {
		return e.Wrap(op, err)
	}

	s.refreshHotState(ctx, gf)
	return nil
}

func (s *GeofenceRegistry) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.Geofence.Delete"

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.DeleteGeofence(ctx, id); err != nil {
		s.logger.Warn("geofence cache delete failed", slog.String("op", op), slog.Any("error", err))
	}
	if err := s.buckets.Remove(ctx, id); err != nil {
		s.logger.Warn("geofence bucket remove failed", slog.String("op", op), slog.Any("error", err))
	}
	return nil
}

func (s *GeofenceRegistry) ListInBounds(ctx context.Context, b domain.Bounds, f domain.GeofenceBoundsFilter) ([]*domain.Geofence, error) {
	const op = "service.Geofence.ListInBounds"

	if !geo.ValidLat(b.MinLat) || !geo.ValidLat(b.MaxLat) ||
		!geo.ValidLng(b.MinLng) || !geo.ValidLng(b.MaxLng) ||
		b.MinLat > b.MaxLat || b.MinLng > b.MaxLng {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	return s.store.ListInBounds(ctx, b, f)
}

// CandidatesNear returns the geofences worth an exact test around the point:
// bucket neighbors first, then the recently-evaluated set, then the full
// active set as a fallback. Capped at the configured maximum.
func (s *GeofenceRegistry) CandidatesNear(ctx context.Context, lat, lng float64) ([]domain.Geofence, error) {
	const op = "service.Geofence.CandidatesNear"

	now := time.Now().UTC()
	seen := make(map[uuid.UUID]struct{})
	var out []domain.Geofence

	add := func(gf *domain.Geofence) bool {
		if gf == nil || !gf.IsActive || gf.ExpiredAt(now) {
			return false
		}
		if _, ok := seen[gf.ID]; ok {
			return false
		}
		seen[gf.ID] = struct{}{}
		out = append(out, *gf)
		return len(out) >= s.cfg.MaxCandidates
	}

	ids, err := s.buckets.Near(ctx, lat, lng, s.cfg.MaxCandidates)
	if err != nil {
		s.logger.Warn("geofence bucket lookup failed", slog.String("op", op), slog.Any("error", err))
	}

	if len(ids) < s.cfg.MaxCandidates {
		recent, err := s.cache.RecentIDs(ctx, int64(s.cfg.MaxCandidates))
		if err != nil {
			s.logger.Warn("recent geofence lookup failed", slog.String("op", op), slog.Any("error", err))
		}
		ids = append(ids, recent...)
	}

	for _, id := range ids {
		gf, err := s.Get(ctx, id)
		if err != nil {
			s.logger.Warn("candidate fetch failed",
				slog.String("op", op),
				slog.String("geofence_id", id.String()),
				slog.Any("error", err),
			)
			continue
		}
		if add(gf) {
			return out, nil
		}
	}

	if len(out) > 0 {
		return out, nil
	}

	// Cold start: nothing bucketed yet, fall back to the full active set.
	active, err := s.activeFences(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	for i := range active {
		if add(&active[i]) {
			break
		}
	}
	return out, nil
}

func (s *GeofenceRegistry) activeFences(ctx context.Context) ([]domain.Geofence, error) {
	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("active set cache read failed", slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	fences, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Geofence, 0, len(fences))
	for _, gf := range fences {
		out = append(out, *gf)
	}
	if err := s.cache.SetActive(ctx, out); err != nil {
		s.logger.Warn("active set cache write failed", slog.Any("error", err))
	}
	return out, nil
}

// normalizeGeometry enforces the geometry invariants: valid coordinates, a
// radius inside the configured maximum and, for polygons, a ring of at least
// 3 vertices whose circle pre-filter fully covers the polygon. The radius is
// clamped up to the farthest vertex so the pre-filter can never cut off a
// point that is inside the ring.
func (s *GeofenceRegistry) normalizeGeometry(gf *domain.Geofence) error {
	if !geo.ValidLat(gf.Center.Latitude) || !geo.ValidLng(gf.Center.Longitude) {
		return e.ErrInvalidCoordinates
	}
	if gf.RadiusM <= 0 || gf.RadiusM > s.cfg.MaxRadiusM {
		return e.ErrRadiusTooLarge
	}

	if len(gf.Ring) == 0 {
		return nil
	}
	coords := gf.RingCoords()
	distinct := len(coords)
	if coords[0] == coords[distinct-1] {
		distinct--
	}
	if distinct < 3 {
		return e.ErrInvalidGeometry
	}
	for _, p := range gf.Ring {
		if !geo.ValidLat(p.Latitude) || !geo.ValidLng(p.Longitude) {
			return e.ErrInvalidCoordinates
		}
	}

	if far := geo.MaxDistanceFromM(gf.Center.Latitude, gf.Center.Longitude, coords); far > gf.RadiusM {
		if far > s.cfg.MaxRadiusM {
			return e.ErrRadiusTooLarge
		}
		gf.RadiusM = far
	}
	return nil
}

// refreshHotState re-caches the definition, drops the stale active set and
// re-buckets the fence center. All best effort.
func (s *GeofenceRegistry) refreshHotState(ctx context.Context, gf *domain.Geofence) {
	if err := s.cache.SetGeofence(ctx, gf); err != nil {
		s.logger.Warn("geofence cache write failed", slog.Any("error", err))
	}
	if err := s.cache.InvalidateActive(ctx); err != nil {
		s.logger.Warn("active set invalidation failed", slog.Any("error", err))
	}
	if err := s.buckets.Update(ctx, gf.ID, gf.Center.Latitude, gf.Center.Longitude); err != nil {
		s.logger.Warn("geofence bucket update failed", slog.Any("error", err))
	}
}
