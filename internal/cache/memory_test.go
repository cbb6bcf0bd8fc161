package cache

import (
	"context"
	"testing"
	"time"

	"geotrack/internal/domain"

	"github.com/google/uuid"
)

func newRecord(entityID uuid.UUID, ts time.Time) *domain.LocationRecord {
	return &domain.LocationRecord{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		EntityID:   entityID,
		EntityType: domain.EntityVehicle,
		Latitude:   19.4326,
		Longitude:  -99.1332,
		Timestamp:  ts,
		TTLSeconds: 300,
	}
}

func TestMemoryLayer_SetGetDelete(t *testing.T) {
	t.Parallel()

	m := NewMemoryLayer(10)
	ctx := context.Background()
	entityID := uuid.New()

	got, err := m.Get(ctx, entityID)
	if err != nil || got != nil {
		t.Fatalf("empty layer: got=%v err=%v", got, err)
	}

	rec := newRecord(entityID, time.Now())
	if err := m.Set(ctx, rec); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err = m.Get(ctx, entityID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Latitude != rec.Latitude || got.Longitude != rec.Longitude {
		t.Fatalf("coordinates do not round-trip: %+v", got)
	}

	// returned record is a copy, mutating it must not touch the cache
	got.Latitude = 0
	again, _ := m.Get(ctx, entityID)
	if again.Latitude != rec.Latitude {
		t.Fatal("Get must return a copy")
	}

	if err := m.Delete(ctx, entityID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ = m.Get(ctx, entityID)
	if got != nil {
		t.Fatal("record survived delete")
	}
}

func TestMemoryLayer_EvictsOldestOnOverflow(t *testing.T) {
	t.Parallel()

	m := NewMemoryLayer(2)
	ctx := context.Background()

	oldID := uuid.New()
	base := time.Now()
	_ = m.Set(ctx, newRecord(oldID, base.Add(-time.Minute)))
	_ = m.Set(ctx, newRecord(uuid.New(), base))
	_ = m.Set(ctx, newRecord(uuid.New(), base.Add(time.Second)))

	if m.Len() != 2 {
		t.Fatalf("capacity not enforced: len=%d", m.Len())
	}
	if rec, _ := m.Get(ctx, oldID); rec != nil {
		t.Fatal("oldest record should have been evicted")
	}
}

func TestMemoryLayer_OverwriteDoesNotEvict(t *testing.T) {
	t.Parallel()

	m := NewMemoryLayer(1)
	ctx := context.Background()
	entityID := uuid.New()

	_ = m.Set(ctx, newRecord(entityID, time.Now()))
	_ = m.Set(ctx, newRecord(entityID, time.Now().Add(time.Second)))

	if m.Len() != 1 {
		t.Fatalf("len=%d want 1", m.Len())
	}
}

func TestMemoryLayer_SearchOnlyExplicitEntities(t *testing.T) {
	t.Parallel()

	m := NewMemoryLayer(10)
	ctx := context.Background()
	entityID := uuid.New()
	_ = m.Set(ctx, newRecord(entityID, time.Now()))

	res, err := m.Search(ctx, domain.LocationQuery{EntityIDs: []uuid.UUID{entityID}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("len=%d want 1", len(res))
	}

	// spatial queries are not this layer's job
	res, err = m.Search(ctx, domain.LocationQuery{
		Bounds: &domain.Bounds{MinLng: -100, MinLat: 19, MaxLng: -99, MaxLat: 20},
	})
	if err != nil || res != nil {
		t.Fatalf("spatial search must fall through: res=%v err=%v", res, err)
	}

	// a miss on any requested entity falls through too
	res, _ = m.Search(ctx, domain.LocationQuery{EntityIDs: []uuid.UUID{entityID, uuid.New()}})
	if res != nil {
		t.Fatal("partial answers must fall through")
	}
}
