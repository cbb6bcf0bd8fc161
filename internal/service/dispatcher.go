package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"geotrack/internal/config"
	"geotrack/internal/domain"
	"geotrack/pkg/e"
)

// ActionDispatcher drains the action queue and delivers each payload to the
// configured webhook. Delivery is at-least-once with a short linear backoff;
// a payload that still fails after the retries is dropped with an error log,
// its event stays in the log for replay.
type ActionDispatcher struct {
	logger *slog.Logger
	cfg    config.DispatcherConfig
	queue  ActionDequeuer
	http   *http.Client
}

func NewActionDispatcher(logger *slog.Logger, cfg config.DispatcherConfig, q ActionDequeuer) *ActionDispatcher {
	return &ActionDispatcher{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *ActionDispatcher) Run(ctx context.Context) {
	s.logger.Info("actionDispatcher STARTED", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("actionDispatcher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			s.logger.Error("Dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("dispatching action",
			slog.String("action", payload.Action),
			slog.String("entity_id", payload.EntityID.String()),
		)
		s.sendWithRetry(ctx, *payload)
	}
}

func (s *ActionDispatcher) sendWithRetry(ctx context.Context, p domain.ActionPayload) {
	const maxRetries = 3

	if s.cfg.Disabled || s.cfg.WebhookURL == "" {
		return
	}

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal action payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create action request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("action delivery failed",
			slog.Int("attempt", attempt),
			slog.String("action", p.Action),
			slog.String("event_id", p.EventID.String()),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	s.logger.Error("action dropped after retries",
		slog.String("action", p.Action),
		slog.String("event_id", p.EventID.String()),
	)
}
