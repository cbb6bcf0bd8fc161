package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"geotrack/internal/domain"
	"geotrack/internal/geo"
	"geotrack/pkg/e"

	"github.com/google/uuid"
)

// Manager fans location updates out to the configured tiers and probes them
// in priority order on reads. It is constructed explicitly and injected into
// callers; there is no package-level instance.
type Manager struct {
	hot     []Layer // probed in order, failures tolerated
	durable Layer   // source of truth, write failures propagate
	index   GeohashIndex
	history HistoryAppender
	logger  *slog.Logger

	ttl       time.Duration
	opTimeout time.Duration
	now       func() time.Time
}

type ManagerOption func(*Manager)

func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

func NewManager(
	hot []Layer,
	durable Layer,
	index GeohashIndex,
	history HistoryAppender,
	logger *slog.Logger,
	ttl time.Duration,
	opTimeout time.Duration,
	opts ...ManagerOption,
) *Manager {
	if opTimeout <= 0 {
		opTimeout = 2 * time.Second
	}
	m := &Manager{
		hot:       hot,
		durable:   durable,
		index:     index,
		history:   history,
		logger:    logger,
		ttl:       ttl,
		opTimeout: opTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) (*domain.LocationRecord, error) {
	const op = "cache.Manager.UpdateLocation"

	if !geo.ValidLat(req.Location.Latitude) || !geo.ValidLng(req.Location.Longitude) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if !req.EntityType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	rec := &domain.LocationRecord{
		ID:           uuid.New(),
		UserID:       userID,
		EntityID:     entityID,
		EntityType:   req.EntityType,
		Latitude:     req.Location.Latitude,
		Longitude:    req.Location.Longitude,
		Accuracy:     req.Accuracy,
		Altitude:     req.Altitude,
		Speed:        req.Speed,
		Heading:      req.Heading,
		BatteryLevel: req.BatteryLevel,
		Metadata:     req.Metadata,
		Timestamp:    m.now().UTC(),
		TTLSeconds:   int(m.ttl.Seconds()),
	}

	// All tier writes go out concurrently. Hot tiers are best effort; the
	// durable tier is the only source of truth for history and cold lookups,
	// so its failure surfaces to the caller.
	var wg sync.WaitGroup
	var durableErr error

	for _, layer := range m.hot {
		layer := layer
		wg.Add(1)
		go func() {
			defer wg.Done()
			lctx, cancel := context.WithTimeout(ctx, m.opTimeout)
			defer cancel()
			if err := layer.Set(lctx, rec); err != nil {
				m.logger.Warn("hot layer write failed",
					slog.String("layer", layer.Name()),
					slog.String("entity_id", rec.EntityID.String()),
					slog.Any("error", err),
				)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		lctx, cancel := context.WithTimeout(ctx, m.opTimeout)
		defer cancel()
		durableErr = m.durable.Set(lctx, rec)
	}()

	wg.Wait()

	if durableErr != nil {
		m.logger.Error("durable layer write failed",
			slog.String("entity_id", rec.EntityID.String()),
			slog.Any("error", durableErr),
		)
		return nil, e.Wrap(op, durableErr)
	}

	if m.index != nil {
		ictx, cancel := context.WithTimeout(ctx, m.opTimeout)
		if err := m.index.Update(ictx, rec.EntityID, rec.Latitude, rec.Longitude); err != nil {
			m.logger.Warn("geohash index update failed",
				slog.String("entity_id", rec.EntityID.String()),
				slog.Any("error", err),
			)
		}
		cancel()
	}

	if m.history != nil {
		hctx, cancel := context.WithTimeout(ctx, m.opTimeout)
		if err := m.history.AppendHistory(hctx, rec); err != nil {
			m.logger.Warn("history append failed",
				slog.String("entity_id", rec.EntityID.String()),
				slog.Any("error", err),
			)
		}
		cancel()
	}

	return rec, nil
}

// GetLocation probes tiers in priority order and returns the first fresh
// hit. Stale hits are purged from every tier (self-healing expiry) and
// reported as absent.
func (m *Manager) GetLocation(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error) {
	const op = "cache.Manager.GetLocation"

	for i, layer := range m.layers() {
		lctx, cancel := context.WithTimeout(ctx, m.opTimeout)
		rec, err := layer.Get(lctx, entityID)
		cancel()
		if err != nil {
			m.logger.Warn("layer read failed, falling through",
				slog.String("layer", layer.Name()),
				slog.Any("error", err),
			)
			continue
		}
		if rec == nil {
			continue
		}
		if rec.Expired(m.now()) {
			m.DeleteLocation(ctx, entityID)
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		m.warm(ctx, rec, i)
		return rec, nil
	}

	return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
}

// SearchLocations answers from the fastest layer able to serve the query,
// warming faster tiers when a slower one answers. When every layer fails the
// query returns empty: absence of location data is a valid business state.
func (m *Manager) SearchLocations(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error) {
	if q.Limit <= 0 || q.Limit > 1000 {
		q.Limit = 100
	}
	if q.MaxAgeSeconds <= 0 {
		q.MaxAgeSeconds = int(m.ttl.Seconds())
	}
	if q.OrderBy == "" {
		// newest first, like the durable layer's default ordering
		q.OrderBy = domain.OrderByTimestamp
		q.Descending = true
	}

	for _, layer := range m.hot {
		lctx, cancel := context.WithTimeout(ctx, m.opTimeout)
		res, err := layer.Search(lctx, q)
		cancel()
		if err != nil {
			m.logger.Warn("hot layer search failed",
				slog.String("layer", layer.Name()),
				slog.Any("error", err),
			)
			continue
		}
		if res != nil {
			return m.postFilter(res, q), nil
		}
	}

	lctx, cancel := context.WithTimeout(ctx, m.opTimeout)
	res, err := m.durable.Search(lctx, q)
	cancel()
	if err != nil {
		m.logger.Error("durable search failed, returning empty", slog.Any("error", err))
		return []domain.LocationRecord{}, nil
	}

	// Warm the hot tiers so an identical follow-up query is served above.
	for i := range res {
		rec := res[i]
		for _, layer := range m.hot {
			wctx, wcancel := context.WithTimeout(ctx, m.opTimeout)
			if err := layer.Set(wctx, &rec); err != nil {
				m.logger.Warn("search warm-back failed",
					slog.String("layer", layer.Name()),
					slog.Any("error", err),
				)
			}
			wcancel()
		}
	}

	return m.postFilter(res, q), nil
}

// DeleteLocation removes the record from every tier and the geohash index.
func (m *Manager) DeleteLocation(ctx context.Context, entityID uuid.UUID) {
	var wg sync.WaitGroup
	for _, layer := range m.layers() {
		layer := layer
		wg.Add(1)
		go func() {
			defer wg.Done()
			lctx, cancel := context.WithTimeout(ctx, m.opTimeout)
			defer cancel()
			if err := layer.Delete(lctx, entityID); err != nil {
				m.logger.Warn("layer delete failed",
					slog.String("layer", layer.Name()),
					slog.String("entity_id", entityID.String()),
					slog.Any("error", err),
				)
			}
		}()
	}
	wg.Wait()

	if m.index != nil {
		ictx, cancel := context.WithTimeout(ctx, m.opTimeout)
		defer cancel()
		if err := m.index.Remove(ictx, entityID); err != nil {
			m.logger.Warn("geohash index remove failed",
				slog.String("entity_id", entityID.String()),
				slog.Any("error", err),
			)
		}
	}
}

func (m *Manager) layers() []Layer {
	out := make([]Layer, 0, len(m.hot)+1)
	out = append(out, m.hot...)
	return append(out, m.durable)
}

// warm writes a record found in layer hitIdx back into every faster layer.
func (m *Manager) warm(ctx context.Context, rec *domain.LocationRecord, hitIdx int) {
	for i := 0; i < hitIdx && i < len(m.hot); i++ {
		lctx, cancel := context.WithTimeout(ctx, m.opTimeout)
		if err := m.hot[i].Set(lctx, rec); err != nil {
			m.logger.Warn("warm-back failed",
				slog.String("layer", m.hot[i].Name()),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}

// postFilter re-applies staleness, bounds and radius predicates in memory:
// the durable query may have used an approximate spatial index, and hot
// layers do not check freshness at all.
func (m *Manager) postFilter(recs []domain.LocationRecord, q domain.LocationQuery) []domain.LocationRecord {
	now := m.now()
	maxAge := time.Duration(q.MaxAgeSeconds) * time.Second

	out := make([]domain.LocationRecord, 0, len(recs))
	for _, rec := range recs {
		if rec.Expired(now) || now.Sub(rec.Timestamp) > maxAge {
			continue
		}
		if q.EntityType != "" && rec.EntityType != q.EntityType {
			continue
		}
		if q.MinAccuracy != nil && (rec.Accuracy == nil || *rec.Accuracy > *q.MinAccuracy) {
			continue
		}
		if q.Bounds != nil && !q.Bounds.Contains(rec.Latitude, rec.Longitude) {
			continue
		}
		if q.Center != nil && q.RadiusM > 0 {
			d := geo.HaversineM(rec.Latitude, rec.Longitude, q.Center.Latitude, q.Center.Longitude)
			if d > q.RadiusM {
				continue
			}
		}
		out = append(out, rec)
	}

	m.sortRecords(out, q)
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func (m *Manager) sortRecords(recs []domain.LocationRecord, q domain.LocationQuery) {
	var less func(i, j int) bool

	switch q.OrderBy {
	case domain.OrderByDistance:
		if q.Center == nil {
			return
		}
		dist := func(r *domain.LocationRecord) float64 {
			return geo.HaversineM(r.Latitude, r.Longitude, q.Center.Latitude, q.Center.Longitude)
		}
		less = func(i, j int) bool { return dist(&recs[i]) < dist(&recs[j]) }
	case domain.OrderByAccuracy:
		acc := func(r *domain.LocationRecord) float64 {
			if r.Accuracy == nil {
				return 101 // unknown accuracy sorts last
			}
			return *r.Accuracy
		}
		less = func(i, j int) bool { return acc(&recs[i]) < acc(&recs[j]) }
	default:
		less = func(i, j int) bool { return recs[i].Timestamp.Before(recs[j].Timestamp) }
	}

	if q.Descending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(recs, less)
}
