package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"geotrack/internal/domain"
	"geotrack/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepo is the append-only geofence event log.
type EventRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEventRepo(pool *pgxpool.Pool, logger *slog.Logger) *EventRepo {
	return &EventRepo{pool: pool, logger: logger}
}

// SaveBatch writes all events from one evaluation in a single round trip.
func (p *EventRepo) SaveBatch(ctx context.Context, events []domain.GeofenceEvent) error {
	const op = "postgres.Event.SaveBatch"

	if len(events) == 0 {
		return nil
	}

	const query = `
		INSERT INTO geofence_events (
			id, geofence_id, entity_id, entity_type, event_type,
			location, previous_location, distance_m,
			speed, heading, accuracy, recorded_at
		)
		VALUES (
			$1, $2, $3, $4, $5,
			ST_SetSRID(ST_MakePoint($6, $7), 4326), ST_GeomFromEWKT($8), $9,
			$10, $11, $12, $13
		)
	`

	batch := &pgx.Batch{}
	for i := range events {
		ev := &events[i]
		if ev.ID == uuid.Nil {
			ev.ID = uuid.New()
		}

		var prev any
		if ev.PreviousLocation != nil {
			prev = fmt.Sprintf("SRID=4326;POINT(%f %f)", ev.PreviousLocation.Longitude, ev.PreviousLocation.Latitude)
		}

		batch.Queue(query,
			ev.ID,
			ev.GeofenceID,
			ev.EntityID,
			ev.EntityType,
			ev.EventType,
			ev.Location.Longitude,
			ev.Location.Latitude,
			prev,
			ev.DistanceM,
			ev.Speed,
			ev.Heading,
			ev.Accuracy,
			ev.Timestamp,
		)
	}

	br := p.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range events {
		if _, err := br.Exec(); err != nil {
			p.logger.Error("db batch exec failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	return nil
}

func (p *EventRepo) ListByEntity(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.GeofenceEvent, error) {
	const op = "postgres.Event.ListByEntity"

	if limit <= 0 || limit > 500 {
		limit = 50
	}

	const query = `
		SELECT id,
			   geofence_id,
			   entity_id,
			   entity_type,
			   event_type,
			   ST_Y(location::geometry) AS lat,
			   ST_X(location::geometry) AS lng,
			   ST_Y(previous_location::geometry) AS prev_lat,
			   ST_X(previous_location::geometry) AS prev_lng,
			   distance_m,
			   speed,
			   heading,
			   accuracy,
			   recorded_at
		FROM geofence_events
		WHERE entity_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, entityID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var events []domain.GeofenceEvent
	for rows.Next() {
		var (
			ev               domain.GeofenceEvent
			prevLat, prevLng *float64
		)
		if err := rows.Scan(
			&ev.ID,
			&ev.GeofenceID,
			&ev.EntityID,
			&ev.EntityType,
			&ev.EventType,
			&ev.Location.Latitude,
			&ev.Location.Longitude,
			&prevLat,
			&prevLng,
			&ev.DistanceM,
			&ev.Speed,
			&ev.Heading,
			&ev.Accuracy,
			&ev.Timestamp,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		if prevLat != nil && prevLng != nil {
			ev.PreviousLocation = &domain.Point{Latitude: *prevLat, Longitude: *prevLng}
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return events, nil
}

// CountUniqueEntities reports how many distinct entities produced events in
// the trailing window. Feeds the health/stats endpoint.
func (p *EventRepo) CountUniqueEntities(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Event.CountUniqueEntities"

	if minutes <= 0 {
		minutes = 60
	}

	const query = `
		SELECT COUNT(DISTINCT entity_id)
		FROM geofence_events
		WHERE recorded_at > NOW() - make_interval(mins => $1)
	`

	var count int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}
