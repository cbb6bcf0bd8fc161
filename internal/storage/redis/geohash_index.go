package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"geotrack/internal/geo"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// GeoBuckets keeps time-scored geohash buckets at several precisions so the
// evaluator can pull candidates around a point without scanning everything.
// A per-member set remembers which buckets a member sits in, so removal does
// not need a keyspace scan. A zero ttl makes the buckets permanent: entries
// only leave via Remove. That mode serves geofence centers, which outlive any
// freshness window.
type GeoBuckets struct {
	client     *goredis.Client
	prefix     string
	precisions []int
	ttl        time.Duration
}

func NewGeoBuckets(r *Redis, prefix string, precisions []int, ttl time.Duration) *GeoBuckets {
	return &GeoBuckets{
		client:     r.Client,
		prefix:     prefix,
		precisions: precisions,
		ttl:        ttl,
	}
}

func (b *GeoBuckets) bucketKey(precision int, hash string) string {
	return fmt.Sprintf("geo:%s:%d:%s", b.prefix, precision, hash)
}

func (b *GeoBuckets) memberKey(id uuid.UUID) string {
	return fmt.Sprintf("geo:%s:member:%s", b.prefix, id.String())
}

// Update re-buckets the member at every configured precision. Previous
// buckets are cleared first so a moving member never lingers in two cells.
func (b *GeoBuckets) Update(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	if err := b.Remove(ctx, id); err != nil {
		return err
	}

	score := float64(time.Now().UnixMilli())
	member := id.String()

	pipe := b.client.Pipeline()
	for _, p := range b.precisions {
		key := b.bucketKey(p, geo.GeohashEncode(lat, lng, p))
		pipe.ZAdd(ctx, key, goredis.Z{Score: score, Member: member})
		if b.ttl > 0 {
			pipe.Expire(ctx, key, b.ttl)
		}
		pipe.SAdd(ctx, b.memberKey(id), key)
	}
	if b.ttl > 0 {
		pipe.Expire(ctx, b.memberKey(id), b.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (b *GeoBuckets) Remove(ctx context.Context, id uuid.UUID) error {
	keys, err := b.client.SMembers(ctx, b.memberKey(id)).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	pipe := b.client.Pipeline()
	for _, key := range keys {
		pipe.ZRem(ctx, key, id.String())
	}
	pipe.Del(ctx, b.memberKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Near collects members from the 3x3 neighbor grid around the point at every
// configured precision, finest first, dropping entries older than the bucket
// TTL. Results are deduplicated and capped at limit.
func (b *GeoBuckets) Near(ctx context.Context, lat, lng float64, limit int) ([]uuid.UUID, error) {
	minScore := "-inf"
	if b.ttl > 0 {
		minScore = strconv.FormatInt(time.Now().Add(-b.ttl).UnixMilli(), 10)
	}

	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID

	for i := len(b.precisions) - 1; i >= 0; i-- {
		p := b.precisions[i]
		cells := geo.GeohashNeighbors(geo.GeohashEncode(lat, lng, p))

		for _, cell := range cells {
			members, err := b.client.ZRangeByScore(ctx, b.bucketKey(p, cell), &goredis.ZRangeBy{
				Min: minScore,
				Max: "+inf",
			}).Result()
			if err != nil {
				return nil, err
			}
			for _, m := range members {
				id, err := uuid.Parse(m)
				if err != nil {
					continue
				}
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, id)
				if limit > 0 && len(out) >= limit {
					return out, nil
				}
			}
		}
	}
	return out, nil
}
