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

const (
	activeSetKey = "geofences:active"
	recentSetKey = "geofences:recent"
)

// GeofenceCache holds hot copies of geofence definitions, the active set, a
// recently-evaluated index and the per-entity "currently inside" state that
// drives entry/exit transitions.
type GeofenceCache struct {
	client    *goredis.Client
	ttl       time.Duration
	statusTTL time.Duration
}

func NewGeofenceCache(r *Redis, ttl, statusTTL time.Duration) *GeofenceCache {
	return &GeofenceCache{client: r.Client, ttl: ttl, statusTTL: statusTTL}
}

func geofenceKey(id uuid.UUID) string {
	return "geofence:" + id.String()
}

func entityFencesKey(entityID uuid.UUID) string {
	return "entity:" + entityID.String() + ":fences"
}

func (c *GeofenceCache) GetGeofence(ctx context.Context, id uuid.UUID) (*domain.Geofence, error) {
	data, err := c.client.Get(ctx, geofenceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var gf domain.Geofence
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, err
	}
	return &gf, nil
}

func (c *GeofenceCache) SetGeofence(ctx context.Context, gf *domain.Geofence) error {
	data, err := json.Marshal(gf)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, geofenceKey(gf.ID), data, c.ttl).Err()
}

func (c *GeofenceCache) DeleteGeofence(ctx context.Context, id uuid.UUID) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, geofenceKey(id))
	pipe.Del(ctx, activeSetKey)
	pipe.ZRem(ctx, recentSetKey, id.String())
	_, err := pipe.Exec(ctx)
	return err
}

func (c *GeofenceCache) GetActive(ctx context.Context) ([]domain.Geofence, error) {
	data, err := c.client.Get(ctx, activeSetKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var fences []domain.Geofence
	if err := json.Unmarshal(data, &fences); err != nil {
		return nil, err
	}
	return fences, nil
}

func (c *GeofenceCache) SetActive(ctx context.Context, fences []domain.Geofence) error {
	data, err := json.Marshal(fences)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeSetKey, data, c.ttl).Err()
}

func (c *GeofenceCache) InvalidateActive(ctx context.Context) error {
	return c.client.Del(ctx, activeSetKey).Err()
}

// TouchRecent bumps the geofence in the recently-evaluated index so future
// candidate lookups can prefer fences that actually see traffic.
func (c *GeofenceCache) TouchRecent(ctx context.Context, id uuid.UUID) error {
	pipe := c.client.Pipeline()
	pipe.ZAdd(ctx, recentSetKey, goredis.Z{
		Score:  float64(time.Now().UnixMilli()),
		Member: id.String(),
	})
	pipe.Expire(ctx, recentSetKey, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *GeofenceCache) RecentIDs(ctx context.Context, limit int64) ([]uuid.UUID, error) {
	members, err := c.client.ZRevRange(ctx, recentSetKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// EntityFences returns the set of geofence IDs the entity was last known to
// be inside, or (nil, nil) when no state is cached.
func (c *GeofenceCache) EntityFences(ctx context.Context, entityID uuid.UUID) ([]uuid.UUID, bool, error) {
	data, err := c.client.Get(ctx, entityFencesKey(entityID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, false, err
	}
	return ids, true, nil
}

func (c *GeofenceCache) SetEntityFences(ctx context.Context, entityID uuid.UUID, ids []uuid.UUID) error {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, entityFencesKey(entityID), data, c.statusTTL).Err()
}
