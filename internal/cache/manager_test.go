package cache

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"geotrack/internal/domain"
	"geotrack/pkg/e"

	"github.com/google/uuid"
)

type fakeLayer struct {
	mu      sync.Mutex
	name    string
	records map[uuid.UUID]*domain.LocationRecord

	failSet    bool
	failGet    bool
	searchable bool

	setCalls    int
	deleteCalls int
}

func newFakeLayer(name string, searchable bool) *fakeLayer {
	return &fakeLayer{
		name:       name,
		records:    make(map[uuid.UUID]*domain.LocationRecord),
		searchable: searchable,
	}
}

func (f *fakeLayer) Name() string { return f.name }

func (f *fakeLayer) Get(_ context.Context, id uuid.UUID) (*domain.LocationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, errors.New("layer down")
	}
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeLayer) Set(_ context.Context, rec *domain.LocationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failSet {
		return errors.New("layer down")
	}
	cp := *rec
	f.records[rec.EntityID] = &cp
	return nil
}

func (f *fakeLayer) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	delete(f.records, id)
	return nil
}

func (f *fakeLayer) Search(_ context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.searchable {
		return nil, nil
	}
	out := make([]domain.LocationRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func validUpdate() domain.LocationUpdateRequest {
	return domain.LocationUpdateRequest{
		UserID:     uuid.New().String(),
		EntityID:   uuid.New().String(),
		EntityType: domain.EntityVehicle,
		Location:   domain.Point{Latitude: 19.4326, Longitude: -99.1332},
	}
}

func newTestManager(mem, kv, db *fakeLayer, opts ...ManagerOption) *Manager {
	return NewManager([]Layer{mem, kv}, db, nil, nil, testLogger(), 5*time.Minute, time.Second, opts...)
}

func TestManager_UpdateThenGet_RoundTrips(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)
	m := newTestManager(mem, kv, db)

	req := validUpdate()
	rec, err := m.UpdateLocation(context.Background(), req)
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if rec.ID == uuid.Nil || rec.Timestamp.IsZero() {
		t.Fatalf("record not stamped: %+v", rec)
	}

	got, err := m.GetLocation(context.Background(), rec.EntityID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if got.Latitude != req.Location.Latitude || got.Longitude != req.Location.Longitude {
		t.Fatalf("coordinates do not round-trip: %+v", got)
	}
}

func TestManager_UpdateLocation_RejectsBadInput(t *testing.T) {
	t.Parallel()

	m := newTestManager(newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true))

	req := validUpdate()
	req.Location.Latitude = 91
	if _, err := m.UpdateLocation(context.Background(), req); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("lat=91: err=%v want ErrInvalidCoordinates", err)
	}

	req = validUpdate()
	req.Location.Longitude = -181
	if _, err := m.UpdateLocation(context.Background(), req); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("lng=-181: err=%v want ErrInvalidCoordinates", err)
	}

	req = validUpdate()
	req.EntityType = "spaceship"
	if _, err := m.UpdateLocation(context.Background(), req); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("bad entity type: err=%v want ErrInvalidInput", err)
	}

	req = validUpdate()
	req.EntityID = "not-a-uuid"
	if _, err := m.UpdateLocation(context.Background(), req); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("bad entity id: err=%v want ErrInvalidInput", err)
	}
}

func TestManager_UpdateLocation_ToleratesHotFailures(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)
	mem.failSet = true
	kv.failSet = true
	m := newTestManager(mem, kv, db)

	rec, err := m.UpdateLocation(context.Background(), validUpdate())
	if err != nil {
		t.Fatalf("hot failures must be tolerated: %v", err)
	}
	if _, ok := db.records[rec.EntityID]; !ok {
		t.Fatal("durable layer missed the write")
	}
}

func TestManager_UpdateLocation_DurableFailurePropagates(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)
	db.failSet = true
	m := newTestManager(mem, kv, db)

	if _, err := m.UpdateLocation(context.Background(), validUpdate()); err == nil {
		t.Fatal("durable write failure must surface")
	}
}

func TestManager_GetLocation_ProbeOrderAndWarmBack(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)
	m := newTestManager(mem, kv, db)

	entityID := uuid.New()
	rec := newRecord(entityID, time.Now())
	db.records[entityID] = rec // only the durable tier knows this entity

	got, err := m.GetLocation(context.Background(), entityID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if got.EntityID != entityID {
		t.Fatalf("wrong record: %+v", got)
	}
	if _, ok := mem.records[entityID]; !ok {
		t.Fatal("memory layer was not warmed")
	}
	if _, ok := kv.records[entityID]; !ok {
		t.Fatal("kv layer was not warmed")
	}
}

func TestManager_GetLocation_FallsThroughFailedLayer(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)
	mem.failGet = true
	kv.failGet = true
	m := newTestManager(mem, kv, db)

	entityID := uuid.New()
	db.records[entityID] = newRecord(entityID, time.Now())

	if _, err := m.GetLocation(context.Background(), entityID); err != nil {
		t.Fatalf("durable tier should have answered: %v", err)
	}
}

func TestManager_GetLocation_StaleRecordSelfHeals(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)

	now := time.Now()
	m := newTestManager(mem, kv, db, WithClock(func() time.Time { return now }))

	entityID := uuid.New()
	stale := newRecord(entityID, now.Add(-10*time.Minute)) // ttl is 300s
	mem.records[entityID] = stale
	kv.records[entityID] = stale
	db.records[entityID] = stale

	_, err := m.GetLocation(context.Background(), entityID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("stale record must be absent: err=%v", err)
	}

	for _, l := range []*fakeLayer{mem, kv, db} {
		if _, ok := l.records[entityID]; ok {
			t.Fatalf("stale record survived in %s", l.name)
		}
	}
}

func TestManager_GetLocation_Absent(t *testing.T) {
	t.Parallel()

	m := newTestManager(newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true))
	if _, err := m.GetLocation(context.Background(), uuid.New()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestManager_Search_WarmsHotLayersAndStaysConsistent(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)
	m := newTestManager(mem, kv, db)

	ids := make(map[uuid.UUID]bool)
	for i := 0; i < 3; i++ {
		rec, err := m.UpdateLocation(context.Background(), validUpdate())
		if err != nil {
			t.Fatalf("UpdateLocation: %v", err)
		}
		ids[rec.EntityID] = true
	}

	q := domain.LocationQuery{
		Bounds: &domain.Bounds{MinLng: -100, MinLat: 19, MaxLng: -99, MaxLat: 20},
	}

	first, err := m.SearchLocations(context.Background(), q)
	if err != nil {
		t.Fatalf("SearchLocations: %v", err)
	}
	if len(first) != len(ids) {
		t.Fatalf("durable search returned %d records, want %d", len(first), len(ids))
	}

	// identical query again: whichever layer answers, the entity set must match
	second, err := m.SearchLocations(context.Background(), q)
	if err != nil {
		t.Fatalf("SearchLocations (warm): %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("warmed search returned %d records, want %d", len(second), len(first))
	}
	for _, rec := range second {
		if !ids[rec.EntityID] {
			t.Fatalf("unexpected entity %s", rec.EntityID)
		}
	}
}

func TestManager_Search_DurableFailureReturnsEmpty(t *testing.T) {
	t.Parallel()

	mem, kv := newFakeLayer("memory", false), newFakeLayer("redis", false)
	failing := &failingSearchLayer{fakeLayer: newFakeLayer("postgres", false)}
	m := NewManager([]Layer{mem, kv}, failing, nil, nil, testLogger(), 5*time.Minute, time.Second)

	res, err := m.SearchLocations(context.Background(), domain.LocationQuery{
		Center:  &domain.Point{Latitude: 19.43, Longitude: -99.13},
		RadiusM: 500,
	})
	if err != nil {
		t.Fatalf("search must not error when the durable layer is down: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("want empty result, got %d", len(res))
	}
}

type failingSearchLayer struct{ *fakeLayer }

func (f *failingSearchLayer) Search(context.Context, domain.LocationQuery) ([]domain.LocationRecord, error) {
	return nil, errors.New("database down")
}

func TestManager_Search_RadiusPostFilter(t *testing.T) {
	t.Parallel()

	mem, kv, db := newFakeLayer("memory", false), newFakeLayer("redis", false), newFakeLayer("postgres", true)
	m := newTestManager(mem, kv, db)

	near := newRecord(uuid.New(), time.Now())
	near.Latitude, near.Longitude = 19.4330, -99.1330 // ~55m from center

	far := newRecord(uuid.New(), time.Now())
	far.Latitude, far.Longitude = 19.5000, -99.5000 // >40km away

	db.records[near.EntityID] = near
	db.records[far.EntityID] = far

	res, err := m.SearchLocations(context.Background(), domain.LocationQuery{
		Center:  &domain.Point{Latitude: 19.4326, Longitude: -99.1332},
		RadiusM: 500,
	})
	if err != nil {
		t.Fatalf("SearchLocations: %v", err)
	}
	if len(res) != 1 || res[0].EntityID != near.EntityID {
		t.Fatalf("radius post-filter failed: %+v", res)
	}
}
