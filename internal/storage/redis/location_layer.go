package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"geotrack/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// LocationLayer is the shared key-value tier of the location cache: one JSON
// record per entity with a TTL mirroring the record's freshness window.
type LocationLayer struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewLocationLayer(r *Redis, ttl time.Duration) *LocationLayer {
	return &LocationLayer{client: r.Client, ttl: ttl}
}

func (l *LocationLayer) Name() string { return "redis" }

func locationKey(entityID uuid.UUID) string {
	return "location:" + entityID.String()
}

func (l *LocationLayer) Get(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error) {
	data, err := l.client.Get(ctx, locationKey(entityID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var rec domain.LocationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (l *LocationLayer) Set(ctx context.Context, rec *domain.LocationRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	ttl := l.ttl
	if rec.TTLSeconds > 0 {
		ttl = time.Duration(rec.TTLSeconds) * time.Second
	}
	return l.client.Set(ctx, locationKey(rec.EntityID), b, ttl).Err()
}

func (l *LocationLayer) Delete(ctx context.Context, entityID uuid.UUID) error {
	return l.client.Del(ctx, locationKey(entityID)).Err()
}

// Search answers single-entity lookups only; anything spatial belongs to the
// durable tier.
func (l *LocationLayer) Search(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error) {
	if len(q.EntityIDs) != 1 || q.Bounds != nil || q.Center != nil {
		return nil, nil
	}

	rec, err := l.Get(ctx, q.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if q.EntityType != "" && rec.EntityType != q.EntityType {
		return []domain.LocationRecord{}, nil
	}
	return []domain.LocationRecord{*rec}, nil
}
