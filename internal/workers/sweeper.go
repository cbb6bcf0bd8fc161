package workers

import (
	"context"
	"log/slog"
	"time"
)

// ExpiredSweeper clears expired rows from the durable tier on a fixed
// interval. The cache layers self-heal on read; this keeps the tables from
// accumulating dead rows between reads.
type ExpiredSweeper struct {
	sweep    func(ctx context.Context, historyRetention time.Duration) (int64, error)
	interval time.Duration
	// history older than this is trimmed on every pass; zero keeps it forever
	historyRetention time.Duration
	logger           *slog.Logger
}

func NewExpiredSweeper(
	sweep func(ctx context.Context, historyRetention time.Duration) (int64, error),
	interval time.Duration,
	historyRetention time.Duration,
	logger *slog.Logger,
) *ExpiredSweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ExpiredSweeper{
		sweep:            sweep,
		interval:         interval,
		historyRetention: historyRetention,
		logger:           logger,
	}
}

func (w *ExpiredSweeper) Run(ctx context.Context) {
	w.logger.Info("expiredSweeper STARTED", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expiredSweeper STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			swept, err := w.sweep(ctx, w.historyRetention)
			if err != nil {
				w.logger.Error("sweep failed", slog.Any("error", err))
				continue
			}
			if swept > 0 {
				w.logger.Info("swept expired locations", slog.Int64("rows", swept))
			}
		}
	}
}
