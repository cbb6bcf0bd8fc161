package service

import (
	"context"

	"geotrack/internal/domain"

	"github.com/google/uuid"
)

// EventStats serves the read side of the event log.
type EventStats struct {
	events EventLog
}

func NewEventStats(events EventLog) *EventStats {
	return &EventStats{events: events}
}

func (s *EventStats) EntityEvents(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.GeofenceEvent, error) {
	return s.events.ListByEntity(ctx, entityID, limit)
}

func (s *EventStats) ActiveEntities(ctx context.Context, minutes int) (int64, error) {
	return s.events.CountUniqueEntities(ctx, minutes)
}
