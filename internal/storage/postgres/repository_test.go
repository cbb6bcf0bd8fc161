//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"geotrack/internal/domain"
	"geotrack/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS locations (
			id            uuid NOT NULL,
			user_id       uuid NOT NULL,
			entity_id     uuid PRIMARY KEY,
			entity_type   text NOT NULL,
			geo           geometry(Point, 4326) NOT NULL,
			accuracy      double precision,
			altitude      double precision,
			speed         double precision,
			heading       double precision,
			battery_level double precision,
			metadata      jsonb,
			recorded_at   timestamptz NOT NULL,
			ttl_seconds   integer NOT NULL,
			expires_at    timestamptz NOT NULL
		);
		CREATE INDEX IF NOT EXISTS locations_geo_idx ON locations USING gist (geo);

		CREATE TABLE IF NOT EXISTS location_history (
			id            uuid NOT NULL,
			user_id       uuid NOT NULL,
			entity_id     uuid NOT NULL,
			entity_type   text NOT NULL,
			geo           geometry(Point, 4326) NOT NULL,
			accuracy      double precision,
			altitude      double precision,
			speed         double precision,
			heading       double precision,
			battery_level double precision,
			metadata      jsonb,
			recorded_at   timestamptz NOT NULL
		);
		CREATE INDEX IF NOT EXISTS location_history_entity_idx ON location_history (entity_id, recorded_at);

		CREATE TABLE IF NOT EXISTS geofences (
			id          uuid PRIMARY KEY,
			name        text NOT NULL,
			description text NOT NULL DEFAULT '',
			ring        jsonb,
			center      geometry(Point, 4326) NOT NULL,
			radius_m    double precision NOT NULL,
			is_active   boolean NOT NULL,
			rules       jsonb,
			metadata    jsonb,
			expires_at  timestamptz,
			created_at  timestamptz NOT NULL,
			updated_at  timestamptz NOT NULL
		);
		CREATE INDEX IF NOT EXISTS geofences_center_idx ON geofences USING gist (center);

		CREATE TABLE IF NOT EXISTS geofence_events (
			id                uuid PRIMARY KEY,
			geofence_id       uuid NOT NULL,
			entity_id         uuid NOT NULL,
			entity_type       text NOT NULL,
			event_type        text NOT NULL,
			location          geometry(Point, 4326) NOT NULL,
			previous_location geometry(Point, 4326),
			distance_m        double precision NOT NULL,
			speed             double precision,
			heading           double precision,
			accuracy          double precision,
			recorded_at       timestamptz NOT NULL
		);
		CREATE INDEX IF NOT EXISTS geofence_events_entity_idx ON geofence_events (entity_id, recorded_at);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE locations, location_history, geofences, geofence_events`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func testRecord(entityID uuid.UUID, lat, lng float64) *domain.LocationRecord {
	return &domain.LocationRecord{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		EntityID:   entityID,
		EntityType: domain.EntityVehicle,
		Latitude:   lat,
		Longitude:  lng,
		Timestamp:  time.Now().UTC(),
		TTLSeconds: 300,
	}
}

func TestLocationRepo_SetGet_Roundtrip(t *testing.T) {
	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	entityID := uuid.New()

	rec := testRecord(entityID, 55.75, 37.61)
	rec.Metadata = map[string]any{"driver": "ivan"}

	if err := repo.Set(context.Background(), rec); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := repo.Get(context.Background(), entityID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record, got nil")
	}
	if got.EntityID != entityID || got.Latitude != 55.75 || got.Longitude != 37.61 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Metadata["driver"] != "ivan" {
		t.Fatalf("metadata lost: %+v", got.Metadata)
	}
}

func TestLocationRepo_Set_UpsertLastWriteWins(t *testing.T) {
	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	entityID := uuid.New()

	first := testRecord(entityID, 55.75, 37.61)
	if err := repo.Set(context.Background(), first); err != nil {
		t.Fatalf("Set first: %v", err)
	}

	second := testRecord(entityID, 59.93, 30.33)
	if err := repo.Set(context.Background(), second); err != nil {
		t.Fatalf("Set second: %v", err)
	}

	got, err := repo.Get(context.Background(), entityID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Latitude != 59.93 || got.Longitude != 30.33 {
		t.Fatalf("expected second write to win, got %+v", got)
	}

	var count int
	if err := testPool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM locations WHERE entity_id = $1`, entityID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 current row, got %d", count)
	}
}

func TestLocationRepo_Get_ExpiredRowIsInvisible(t *testing.T) {
	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())
	entityID := uuid.New()

	rec := testRecord(entityID, 55.75, 37.61)
	rec.Timestamp = time.Now().UTC().Add(-10 * time.Minute)
	rec.TTLSeconds = 60

	if err := repo.Set(context.Background(), rec); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := repo.Get(context.Background(), entityID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss for expired row, got %+v", got)
	}
}

func TestLocationRepo_Search_RadiusAndType(t *testing.T) {
	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())

	near := testRecord(uuid.New(), 55.7500, 37.6100)
	alsoNear := testRecord(uuid.New(), 55.7510, 37.6110)
	far := testRecord(uuid.New(), 59.93, 30.33)
	wrongType := testRecord(uuid.New(), 55.7505, 37.6105)
	wrongType.EntityType = domain.EntityUser

	for _, rec := range []*domain.LocationRecord{near, alsoNear, far, wrongType} {
		if err := repo.Set(context.Background(), rec); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	got, err := repo.Search(context.Background(), domain.LocationQuery{
		EntityType: domain.EntityVehicle,
		Center:     &domain.Point{Latitude: 55.75, Longitude: 37.61},
		RadiusM:    500,
		OrderBy:    domain.OrderByDistance,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(got), got)
	}
	if got[0].EntityID != near.EntityID {
		t.Fatalf("expected nearest first, got %+v", got[0])
	}
}

func TestLocationRepo_Search_Bounds(t *testing.T) {
	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())

	in := testRecord(uuid.New(), 55.75, 37.61)
	out := testRecord(uuid.New(), 59.93, 30.33)

	for _, rec := range []*domain.LocationRecord{in, out} {
		if err := repo.Set(context.Background(), rec); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	got, err := repo.Search(context.Background(), domain.LocationQuery{
		Bounds: &domain.Bounds{MinLng: 37.5, MinLat: 55.7, MaxLng: 37.7, MaxLat: 55.8},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].EntityID != in.EntityID {
		t.Fatalf("expected only the in-bounds record, got %+v", got)
	}
}

func TestLocationRepo_SweepExpired(t *testing.T) {
	truncateAll(t)

	repo := NewLocationRepo(testPool, testLogger())

	stale := testRecord(uuid.New(), 55.75, 37.61)
	stale.Timestamp = time.Now().UTC().Add(-1 * time.Hour)
	stale.TTLSeconds = 60
	fresh := testRecord(uuid.New(), 55.76, 37.62)

	for _, rec := range []*domain.LocationRecord{stale, fresh} {
		if err := repo.Set(context.Background(), rec); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := repo.AppendHistory(context.Background(), rec); err != nil {
			t.Fatalf("AppendHistory: %v", err)
		}
	}

	swept, err := repo.SweepExpired(context.Background(), 30*time.Minute)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	// one expired current row plus one trimmed history row
	if swept != 2 {
		t.Fatalf("expected 2 swept rows, got %d", swept)
	}

	got, err := repo.Get(context.Background(), fresh.EntityID)
	if err != nil || got == nil {
		t.Fatalf("fresh row must survive: rec=%v err=%v", got, err)
	}
}

func testGeofence(name string) *domain.Geofence {
	return &domain.Geofence{
		Name:     name,
		Center:   domain.Point{Latitude: 55.75, Longitude: 37.61},
		RadiusM:  1000,
		IsActive: true,
		Rules:    domain.GeofenceRules{NotifyOnEntry: true},
	}
}

func TestGeofenceRepo_CreateGet_Roundtrip(t *testing.T) {
	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())

	gf := testGeofence("depot")
	gf.Ring = []domain.Point{
		{Latitude: 55.749, Longitude: 37.609},
		{Latitude: 55.749, Longitude: 37.611},
		{Latitude: 55.751, Longitude: 37.611},
	}
	gf.Metadata = map[string]any{"zone": "A"}

	if err := repo.Create(context.Background(), gf); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gf.ID == uuid.Nil {
		t.Fatal("expected ID set")
	}

	got, err := repo.Get(context.Background(), gf.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "depot" || len(got.Ring) != 3 || !got.Rules.NotifyOnEntry {
		t.Fatalf("unexpected geofence: %+v", got)
	}
	if got.Center.Latitude != 55.75 || got.Center.Longitude != 37.61 {
		t.Fatalf("center lost: %+v", got.Center)
	}
}

func TestGeofenceRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGeofenceRepo_Delete_SoftAndIdempotent(t *testing.T) {
	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())

	gf := testGeofence("depot")
	if err := repo.Create(context.Background(), gf); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), gf.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// row survives, only deactivated
	got, err := repo.Get(context.Background(), gf.ID)
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got.IsActive {
		t.Fatal("expected is_active=false after delete")
	}

	// second delete hits no active row
	if err := repo.Delete(context.Background(), gf.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestGeofenceRepo_ListActive_SkipsInactiveAndExpired(t *testing.T) {
	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())

	active := testGeofence("active")
	inactive := testGeofence("inactive")
	inactive.IsActive = false
	expired := testGeofence("expired")
	past := time.Now().UTC().Add(-1 * time.Hour)
	expired.ExpiresAt = &past

	for _, gf := range []*domain.Geofence{active, inactive, expired} {
		if err := repo.Create(context.Background(), gf); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(got) != 1 || got[0].ID != active.ID {
		t.Fatalf("expected only the active fence, got %+v", got)
	}
}

func TestGeofenceRepo_ListInBounds_MatchesOverlappingCircle(t *testing.T) {
	truncateAll(t)

	repo := NewGeofenceRepo(testPool, testLogger())

	// centered outside the viewport but the 5km circle reaches in
	reaching := testGeofence("reaching")
	reaching.Center = domain.Point{Latitude: 55.83, Longitude: 37.61}
	reaching.RadiusM = 5000

	farAway := testGeofence("far")
	farAway.Center = domain.Point{Latitude: 59.93, Longitude: 30.33}

	for _, gf := range []*domain.Geofence{reaching, farAway} {
		if err := repo.Create(context.Background(), gf); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListInBounds(context.Background(),
		domain.Bounds{MinLng: 37.5, MinLat: 55.7, MaxLng: 37.7, MaxLat: 55.8},
		domain.GeofenceBoundsFilter{ActiveOnly: true},
	)
	if err != nil {
		t.Fatalf("ListInBounds: %v", err)
	}
	if len(got) != 1 || got[0].ID != reaching.ID {
		t.Fatalf("expected the reaching fence, got %+v", got)
	}
}

func TestEventRepo_SaveBatch_ListByEntity(t *testing.T) {
	truncateAll(t)

	repo := NewEventRepo(testPool, testLogger())

	entityID := uuid.New()
	geofenceID := uuid.New()
	now := time.Now().UTC()

	events := []domain.GeofenceEvent{
		{
			GeofenceID: geofenceID,
			EntityID:   entityID,
			EntityType: domain.EntityVehicle,
			EventType:  domain.EventEntry,
			Location:   domain.Point{Latitude: 55.75, Longitude: 37.61},
			PreviousLocation: &domain.Point{
				Latitude:  55.76,
				Longitude: 37.62,
			},
			DistanceM: 120,
			Timestamp: now.Add(-time.Minute),
		},
		{
			GeofenceID: geofenceID,
			EntityID:   entityID,
			EntityType: domain.EntityVehicle,
			EventType:  domain.EventExit,
			Location:   domain.Point{Latitude: 55.76, Longitude: 37.62},
			DistanceM:  1500,
			Timestamp:  now,
		},
	}

	if err := repo.SaveBatch(context.Background(), events); err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	for _, ev := range events {
		if ev.ID == uuid.Nil {
			t.Fatal("expected event IDs assigned")
		}
	}

	got, err := repo.ListByEntity(context.Background(), entityID, 10)
	if err != nil {
		t.Fatalf("ListByEntity: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// newest first
	if got[0].EventType != domain.EventExit || got[1].EventType != domain.EventEntry {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].PreviousLocation == nil || got[1].PreviousLocation.Latitude != 55.76 {
		t.Fatalf("previous location lost: %+v", got[1])
	}
}

func TestEventRepo_CountUniqueEntities(t *testing.T) {
	truncateAll(t)

	repo := NewEventRepo(testPool, testLogger())

	now := time.Now().UTC()
	a, b := uuid.New(), uuid.New()

	events := []domain.GeofenceEvent{
		{GeofenceID: uuid.New(), EntityID: a, EntityType: domain.EntityVehicle, EventType: domain.EventEntry, Location: domain.Point{Latitude: 55.75, Longitude: 37.61}, Timestamp: now},
		{GeofenceID: uuid.New(), EntityID: a, EntityType: domain.EntityVehicle, EventType: domain.EventExit, Location: domain.Point{Latitude: 55.75, Longitude: 37.61}, Timestamp: now},
		{GeofenceID: uuid.New(), EntityID: b, EntityType: domain.EntityUser, EventType: domain.EventEntry, Location: domain.Point{Latitude: 55.75, Longitude: 37.61}, Timestamp: now},
		// outside the window
		{GeofenceID: uuid.New(), EntityID: uuid.New(), EntityType: domain.EntityUser, EventType: domain.EventEntry, Location: domain.Point{Latitude: 55.75, Longitude: 37.61}, Timestamp: now.Add(-2 * time.Hour)},
	}

	if err := repo.SaveBatch(context.Background(), events); err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}

	count, err := repo.CountUniqueEntities(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountUniqueEntities: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unique entities, got %d", count)
	}
}
