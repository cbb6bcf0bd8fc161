package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"geotrack/internal/domain"
	"geotrack/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LocationRepo is the durable tier. Current positions live in `locations`,
// one row per entity; every accepted update is also appended to
// `location_history` for replay and analytics.
type LocationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLocationRepo(pool *pgxpool.Pool, logger *slog.Logger) *LocationRepo {
	return &LocationRepo{pool: pool, logger: logger}
}

func (p *LocationRepo) Name() string { return "postgres" }

const locationColumns = `
	id,
	user_id,
	entity_id,
	entity_type,
	ST_Y(geo::geometry) AS lat,
	ST_X(geo::geometry) AS lng,
	accuracy,
	altitude,
	speed,
	heading,
	battery_level,
	metadata,
	recorded_at,
	ttl_seconds
`

func (p *LocationRepo) Set(ctx context.Context, rec *domain.LocationRecord) error {
	const op = "postgres.Location.Set"

	if rec == nil || rec.EntityID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO locations (
			id, user_id, entity_id, entity_type, geo,
			accuracy, altitude, speed, heading, battery_level,
			metadata, recorded_at, ttl_seconds, expires_at
		)
		VALUES (
			$1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326),
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15
		)
		ON CONFLICT (entity_id) DO UPDATE SET
			id            = EXCLUDED.id,
			user_id       = EXCLUDED.user_id,
			entity_type   = EXCLUDED.entity_type,
			geo           = EXCLUDED.geo,
			accuracy      = EXCLUDED.accuracy,
			altitude      = EXCLUDED.altitude,
			speed         = EXCLUDED.speed,
			heading       = EXCLUDED.heading,
			battery_level = EXCLUDED.battery_level,
			metadata      = EXCLUDED.metadata,
			recorded_at   = EXCLUDED.recorded_at,
			ttl_seconds   = EXCLUDED.ttl_seconds,
			expires_at    = EXCLUDED.expires_at
	`

	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	expiresAt := rec.Timestamp.Add(time.Duration(rec.TTLSeconds) * time.Second)

	_, err = p.pool.Exec(ctx, query,
		rec.ID,
		rec.UserID,
		rec.EntityID,
		rec.EntityType,
		rec.Longitude,
		rec.Latitude,
		rec.Accuracy,
		rec.Altitude,
		rec.Speed,
		rec.Heading,
		rec.BatteryLevel,
		metadata,
		rec.Timestamp,
		rec.TTLSeconds,
		expiresAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("entity_id", rec.EntityID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *LocationRepo) Get(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error) {
	const op = "postgres.Location.Get"

	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE entity_id = $1 AND expires_at > NOW()
	`

	rec, err := scanLocation(p.pool.QueryRow(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("entity_id", entityID.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return rec, nil
}

func (p *LocationRepo) Delete(ctx context.Context, entityID uuid.UUID) error {
	const op = "postgres.Location.Delete"

	_, err := p.pool.Exec(ctx, `DELETE FROM locations WHERE entity_id = $1`, entityID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("entity_id", entityID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Search executes the full predicate set. Spatial filters cast to geography
// so distances are meters, not degrees.
func (p *LocationRepo) Search(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error) {
	const op = "postgres.Location.Search"

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where = append(where, "expires_at > NOW()")

	if len(q.EntityIDs) > 0 {
		where = append(where, fmt.Sprintf("entity_id = ANY(%s)", arg(q.EntityIDs)))
	}
	if q.EntityType != "" {
		where = append(where, fmt.Sprintf("entity_type = %s", arg(q.EntityType)))
	}
	if q.Bounds != nil {
		where = append(where, fmt.Sprintf(
			"geo && ST_MakeEnvelope(%s, %s, %s, %s, 4326)",
			arg(q.Bounds.MinLng), arg(q.Bounds.MinLat), arg(q.Bounds.MaxLng), arg(q.Bounds.MaxLat),
		))
	}
	if q.Center != nil && q.RadiusM > 0 {
		where = append(where, fmt.Sprintf(
			"ST_DWithin(geo::geography, ST_SetSRID(ST_MakePoint(%s, %s), 4326)::geography, %s)",
			arg(q.Center.Longitude), arg(q.Center.Latitude), arg(q.RadiusM),
		))
	}
	if q.MinAccuracy != nil {
		where = append(where, fmt.Sprintf("accuracy IS NOT NULL AND accuracy <= %s", arg(*q.MinAccuracy)))
	}
	if q.MaxAgeSeconds > 0 {
		where = append(where, fmt.Sprintf("recorded_at > NOW() - make_interval(secs => %s)", arg(q.MaxAgeSeconds)))
	}

	orderBy := "recorded_at"
	switch q.OrderBy {
	case domain.OrderByDistance:
		if q.Center != nil {
			orderBy = fmt.Sprintf(
				"ST_Distance(geo::geography, ST_SetSRID(ST_MakePoint(%s, %s), 4326)::geography)",
				arg(q.Center.Longitude), arg(q.Center.Latitude),
			)
		}
	case domain.OrderByAccuracy:
		orderBy = "accuracy NULLS LAST"
	}
	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}

	limit := q.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY ` + orderBy + ` ` + dir + `
		LIMIT ` + arg(limit)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	records := make([]domain.LocationRecord, 0, limit)
	for rows.Next() {
		rec, err := scanLocation(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return records, nil
}

func (p *LocationRepo) AppendHistory(ctx context.Context, rec *domain.LocationRecord) error {
	const op = "postgres.Location.AppendHistory"

	if rec == nil || rec.EntityID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO location_history (
			id, user_id, entity_id, entity_type, geo,
			accuracy, altitude, speed, heading, battery_level,
			metadata, recorded_at
		)
		VALUES (
			$1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326),
			$7, $8, $9, $10, $11,
			$12, $13
		)
	`

	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = p.pool.Exec(ctx, query,
		rec.ID,
		rec.UserID,
		rec.EntityID,
		rec.EntityType,
		rec.Longitude,
		rec.Latitude,
		rec.Accuracy,
		rec.Altitude,
		rec.Speed,
		rec.Heading,
		rec.BatteryLevel,
		metadata,
		rec.Timestamp,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// SweepExpired drops stale current rows and, when a retention is set, trims
// old history. Run by the background sweeper, never on the request path.
func (p *LocationRepo) SweepExpired(ctx context.Context, historyRetention time.Duration) (int64, error) {
	const op = "postgres.Location.SweepExpired"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM locations WHERE expires_at <= NOW()`)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	swept := cmd.RowsAffected()

	if historyRetention > 0 {
		cmd, err = p.pool.Exec(ctx,
			`DELETE FROM location_history WHERE recorded_at < NOW() - make_interval(secs => $1)`,
			int64(historyRetention.Seconds()),
		)
		if err != nil {
			p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
			return swept, e.WrapError(ctx, op, err)
		}
		swept += cmd.RowsAffected()
	}

	return swept, nil
}

func scanLocation(row pgx.Row) (*domain.LocationRecord, error) {
	var (
		rec      domain.LocationRecord
		metadata []byte
	)
	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.EntityID,
		&rec.EntityType,
		&rec.Latitude,
		&rec.Longitude,
		&rec.Accuracy,
		&rec.Altitude,
		&rec.Speed,
		&rec.Heading,
		&rec.BatteryLevel,
		&metadata,
		&rec.Timestamp,
		&rec.TTLSeconds,
	); err != nil {
		return nil, err
	}
	if len(metadata) > 0 && string(metadata) != "null" {
		if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
