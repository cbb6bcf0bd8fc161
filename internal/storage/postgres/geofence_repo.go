package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"geotrack/internal/domain"
	"geotrack/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GeofenceRepo persists geofence definitions. The center point is a PostGIS
// geometry so bounds queries can use the spatial index; the polygon ring and
// rules ride along as jsonb since the exact point-in-polygon test runs in the
// evaluator, not in SQL.
type GeofenceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGeofenceRepo(pool *pgxpool.Pool, logger *slog.Logger) *GeofenceRepo {
	return &GeofenceRepo{pool: pool, logger: logger}
}

const geofenceColumns = `
	id,
	name,
	description,
	ring,
	ST_Y(center::geometry) AS center_lat,
	ST_X(center::geometry) AS center_lng,
	radius_m,
	is_active,
	rules,
	metadata,
	expires_at,
	created_at,
	updated_at
`

func (p *GeofenceRepo) Create(ctx context.Context, gf *domain.Geofence) error {
	const op = "postgres.Geofence.Create"

	if gf == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if gf.ID == uuid.Nil {
		gf.ID = uuid.New()
	}
	now := time.Now().UTC()
	if gf.CreatedAt.IsZero() {
		gf.CreatedAt = now
	}
	gf.UpdatedAt = now

	const query = `
		INSERT INTO geofences (
			id, name, description, ring, center, radius_m,
			is_active, rules, metadata, expires_at, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7,
			$8, $9, $10, $11, $12, $13
		)
	`

	ring, rules, metadata, err := marshalGeofenceJSON(gf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = p.pool.Exec(ctx, query,
		gf.ID,
		gf.Name,
		gf.Description,
		ring,
		gf.Center.Longitude,
		gf.Center.Latitude,
		gf.RadiusM,
		gf.IsActive,
		rules,
		metadata,
		gf.ExpiresAt,
		gf.CreatedAt,
		gf.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *GeofenceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error) {
	const op = "postgres.Geofence.Get"

	query := `
		SELECT ` + geofenceColumns + `
		FROM geofences
		WHERE id = $1
	`

	gf, err := scanGeofence(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return gf, nil
}

func (p *GeofenceRepo) List(ctx context.Context, page, limit int) ([]*domain.Geofence, int64, error) {
	const op = "postgres.Geofence.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM geofences`).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := `
		SELECT ` + geofenceColumns + `
		FROM geofences
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	fences, err := collectGeofences(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return fences, total, nil
}

func (p *GeofenceRepo) Update(ctx context.Context, gf *domain.Geofence) error {
	const op = "postgres.Geofence.Update"

	const query = `
		UPDATE geofences
		SET name        = $2,
			description = $3,
			ring        = $4,
			center      = ST_SetSRID(ST_MakePoint($5, $6), 4326),
			radius_m    = $7,
			is_active   = $8,
			rules       = $9,
			metadata    = $10,
			expires_at  = $11,
			updated_at  = $12
		WHERE id = $1
	`

	ring, rules, metadata, err := marshalGeofenceJSON(gf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	gf.UpdatedAt = time.Now().UTC()

	cmd, err := p.pool.Exec(ctx, query,
		gf.ID,
		gf.Name,
		gf.Description,
		ring,
		gf.Center.Longitude,
		gf.Center.Latitude,
		gf.RadiusM,
		gf.IsActive,
		rules,
		metadata,
		gf.ExpiresAt,
		gf.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", gf.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *GeofenceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Geofence.Delete"

	const query = `
		UPDATE geofences
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *GeofenceRepo) ListActive(ctx context.Context) ([]*domain.Geofence, error) {
	const op = "postgres.Geofence.ListActive"

	query := `
		SELECT ` + geofenceColumns + `
		FROM geofences
		WHERE is_active = TRUE
		  AND (expires_at IS NULL OR expires_at > NOW())
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	fences, err := collectGeofences(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return fences, nil
}

// ListInBounds matches geofences whose circle overlaps the envelope, so a
// fence centered just outside the viewport but reaching into it still shows.
func (p *GeofenceRepo) ListInBounds(ctx context.Context, b domain.Bounds, f domain.GeofenceBoundsFilter) ([]*domain.Geofence, error) {
	const op = "postgres.Geofence.ListInBounds"

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT ` + geofenceColumns + `
		FROM geofences
		WHERE ST_DWithin(
			center::geography,
			ST_MakeEnvelope($1, $2, $3, $4, 4326)::geography,
			radius_m
		)
	`
	if f.ActiveOnly {
		query += ` AND is_active = TRUE AND (expires_at IS NULL OR expires_at > NOW())`
	}
	query += ` ORDER BY created_at DESC LIMIT $5`

	rows, err := p.pool.Query(ctx, query, b.MinLng, b.MinLat, b.MaxLng, b.MaxLat, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	fences, err := collectGeofences(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return fences, nil
}

func marshalGeofenceJSON(gf *domain.Geofence) (ring, rules, metadata []byte, err error) {
	if ring, err = json.Marshal(gf.Ring); err != nil {
		return nil, nil, nil, err
	}
	if rules, err = json.Marshal(gf.Rules); err != nil {
		return nil, nil, nil, err
	}
	if metadata, err = json.Marshal(gf.Metadata); err != nil {
		return nil, nil, nil, err
	}
	return ring, rules, metadata, nil
}

func scanGeofence(row pgx.Row) (*domain.Geofence, error) {
	var (
		gf       domain.Geofence
		ring     []byte
		rules    []byte
		metadata []byte
	)
	if err := row.Scan(
		&gf.ID,
		&gf.Name,
		&gf.Description,
		&ring,
		&gf.Center.Latitude,
		&gf.Center.Longitude,
		&gf.RadiusM,
		&gf.IsActive,
		&rules,
		&metadata,
		&gf.ExpiresAt,
		&gf.CreatedAt,
		&gf.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(ring) > 0 && string(ring) != "null" {
		if err := json.Unmarshal(ring, &gf.Ring); err != nil {
			return nil, err
		}
	}
	if len(rules) > 0 && string(rules) != "null" {
		if err := json.Unmarshal(rules, &gf.Rules); err != nil {
			return nil, err
		}
	}
	if len(metadata) > 0 && string(metadata) != "null" {
		if err := json.Unmarshal(metadata, &gf.Metadata); err != nil {
			return nil, err
		}
	}
	return &gf, nil
}

func collectGeofences(rows pgx.Rows) ([]*domain.Geofence, error) {
	var fences []*domain.Geofence
	for rows.Next() {
		gf, err := scanGeofence(rows)
		if err != nil {
			return nil, err
		}
		fences = append(fences, gf)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fences, nil
}
