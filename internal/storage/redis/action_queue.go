package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"geotrack/internal/domain"
	"geotrack/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// ActionQueue buffers triggered geofence actions for the dispatcher worker.
type ActionQueue struct {
	client *goredis.Client
	key    string
	logger *slog.Logger
}

func NewActionQueue(r *Redis, key string, logger *slog.Logger) *ActionQueue {
	return &ActionQueue{client: r.Client, key: key, logger: logger}
}

func (q *ActionQueue) Enqueue(ctx context.Context, payload domain.ActionPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		q.logger.Error("Failed to marshal action payload", slog.String("error", err.Error()))
		return err
	}
	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		q.logger.Error("Failed to push action to queue", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Dequeue blocks up to timeout waiting for the next action. Returns
// e.ErrQueueEmpty when the wait expires with nothing queued.
func (q *ActionQueue) Dequeue(ctx context.Context, timeout time.Duration) (*domain.ActionPayload, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, e.ErrQueueEmpty
		}
		return nil, err
	}
	if len(res) < 2 {
		return nil, e.ErrQueueEmpty
	}

	var payload domain.ActionPayload
	if err := json.Unmarshal([]byte(res[1]), &payload); err != nil {
		q.logger.Error("Failed to unmarshal action payload", slog.String("error", err.Error()))
		return nil, err
	}
	return &payload, nil
}

func (q *ActionQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
