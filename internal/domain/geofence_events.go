package domain

import (
	"time"

	"github.com/google/uuid"
)

type GeofenceEventType string

const (
	EventEntry     GeofenceEventType = "entry"
	EventExit      GeofenceEventType = "exit"
	EventInside    GeofenceEventType = "inside"
	EventNearby    GeofenceEventType = "nearby"
	EventViolation GeofenceEventType = "violation"
)

// GeofenceEvent is derived by the evaluator, written once, never mutated.
type GeofenceEvent struct {
	ID               uuid.UUID         `json:"id"`
	GeofenceID       uuid.UUID         `json:"geofence_id"`
	EntityID         uuid.UUID         `json:"entity_id"`
	EntityType       EntityType        `json:"entity_type"`
	EventType        GeofenceEventType `json:"event_type"`
	Location         Point             `json:"location"`
	PreviousLocation *Point            `json:"previous_location,omitempty"`
	DistanceM        float64           `json:"distance_m"`
	Speed            *float64          `json:"speed,omitempty"`
	Heading          *float64          `json:"heading,omitempty"`
	Accuracy         *float64          `json:"accuracy,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type CheckType string

const (
	CheckEntry     CheckType = "entry"
	CheckExit      CheckType = "exit"
	CheckInside    CheckType = "inside"
	CheckViolation CheckType = "violation"
)

type GeofenceCheckRequest struct {
	UserID           string      `json:"user_id" validate:"required,uuid"`
	EntityID         string      `json:"entity_id" validate:"required,uuid"`
	EntityType       EntityType  `json:"entity_type" validate:"required,oneof=user vehicle service asset"`
	Location         Point       `json:"location" validate:"required"`
	PreviousLocation *Point      `json:"previous_location,omitempty"`
	Speed            *float64    `json:"speed,omitempty" validate:"omitempty,min=0"`
	Heading          *float64    `json:"heading,omitempty" validate:"omitempty,min=0,max=360"`
	Accuracy         *float64    `json:"accuracy,omitempty" validate:"omitempty,min=0,max=100"`
	CheckTypes       []CheckType `json:"check_types,omitempty" validate:"dive,oneof=entry exit inside violation"`
}

// Wants reports whether the caller asked for the given check type. An empty
// CheckTypes list means everything.
func (r *GeofenceCheckRequest) Wants(t CheckType) bool {
	if len(r.CheckTypes) == 0 {
		return true
	}
	for _, ct := range r.CheckTypes {
		if ct == t {
			return true
		}
	}
	return false
}

type GeofenceCheckResponse struct {
	Events            []GeofenceEvent `json:"events"`
	ActiveGeofenceIDs []string        `json:"active_geofence_ids"`
	TriggeredActions  []string        `json:"triggered_actions"`
}

// ActionPayload is what the evaluator enqueues and the dispatcher delivers.
// EventID is carried so failed deliveries can be replayed from the event log.
type ActionPayload struct {
	Action     string    `json:"action"`
	EventID    uuid.UUID `json:"event_id"`
	GeofenceID uuid.UUID `json:"geofence_id"`
	EntityID   uuid.UUID `json:"entity_id"`
	EntityType string    `json:"entity_type"`
	Location   Point     `json:"location"`
	QueuedAt   time.Time `json:"queued_at"`
}
