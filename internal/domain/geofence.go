package domain

import (
	"time"

	"github.com/google/uuid"
)

// Triggered action identifiers handed to the dispatcher. AutoActions from a
// geofence's rules are passed through verbatim on entry.
const (
	ActionNotifyEntry    = "notify_entry"
	ActionNotifyExit     = "notify_exit"
	ActionSpeedViolation = "speed_violation"
	ActionRestrictAccess = "restrict_access"
)

// OperatingHours restricts when entities may be inside a geofence.
// Weekdays uses time.Weekday values (0 = Sunday).
type OperatingHours struct {
	StartHour int   `json:"start_hour" validate:"min=0,max=23"`
	EndHour   int   `json:"end_hour" validate:"min=0,max=23"`
	Weekdays  []int `json:"weekdays" validate:"dive,min=0,max=6"`
}

// Allows reports whether t falls inside the operating window.
func (o OperatingHours) Allows(t time.Time) bool {
	if len(o.Weekdays) > 0 {
		ok := false
		for _, d := range o.Weekdays {
			if int(t.Weekday()) == d {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	h := t.Hour()
	return o.StartHour <= h && h <= o.EndHour
}

type GeofenceRules struct {
	NotifyOnEntry  bool            `json:"notify_on_entry"`
	NotifyOnExit   bool            `json:"notify_on_exit"`
	SpeedLimitKmh  *float64        `json:"speed_limit_kmh,omitempty" validate:"omitempty,min=0"`
	OperatingHours *OperatingHours `json:"operating_hours,omitempty"`
	AutoActions    []string        `json:"auto_actions,omitempty"`
}

// Geofence is a named polygon with a denormalized center+radius used as a
// cheap circular pre-filter before the exact polygon test. A geofence with an
// empty ring is a pure circle and is tested by radius alone.
type Geofence struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Ring        []Point        `json:"ring,omitempty"`
	Center      Point          `json:"center"`
	RadiusM     float64        `json:"radius_m"`
	IsActive    bool           `json:"is_active"`
	Rules       GeofenceRules  `json:"rules"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (g *Geofence) ExpiredAt(now time.Time) bool {
	return g.ExpiresAt != nil && now.After(*g.ExpiresAt)
}

// RingCoords returns the ring as lng/lat pairs for the geometry routines.
func (g *Geofence) RingCoords() [][2]float64 {
	if len(g.Ring) == 0 {
		return nil
	}
	coords := make([][2]float64, len(g.Ring))
	for i, p := range g.Ring {
		coords[i] = [2]float64{p.Longitude, p.Latitude}
	}
	return coords
}

type CreateGeofenceRequest struct {
	Name        string         `json:"name" validate:"required,min=1,max=200"`
	Description string         `json:"description,omitempty" validate:"max=1000"`
	Ring        []Point        `json:"ring,omitempty"`
	Center      Point          `json:"center" validate:"required"`
	RadiusM     float64        `json:"radius_m" validate:"required,radius_m"`
	Rules       GeofenceRules  `json:"rules"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
}

type UpdateGeofenceRequest struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=1000"`
	Ring        []Point        `json:"ring,omitempty"`
	Center      *Point         `json:"center,omitempty"`
	RadiusM     *float64       `json:"radius_m,omitempty" validate:"omitempty,radius_m"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Rules       *GeofenceRules `json:"rules,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
}

type GeofenceBoundsFilter struct {
	ActiveOnly bool
	Limit      int
}
