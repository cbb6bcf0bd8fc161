package domain

import (
	"time"

	"github.com/google/uuid"
)

type EntityType string

const (
	EntityUser    EntityType = "user"
	EntityVehicle EntityType = "vehicle"
	EntityService EntityType = "service"
	EntityAsset   EntityType = "asset"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityUser, EntityVehicle, EntityService, EntityAsset:
		return true
	}
	return false
}

type Point struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

// LocationRecord is the current known position of an entity. At most one
// record per entity lives in the hot cache layers; history rows in Postgres
// are append-only.
type LocationRecord struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	EntityID     uuid.UUID      `json:"entity_id"`
	EntityType   EntityType     `json:"entity_type"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Accuracy     *float64       `json:"accuracy,omitempty"`
	Altitude     *float64       `json:"altitude,omitempty"`
	Speed        *float64       `json:"speed,omitempty"`
	Heading      *float64       `json:"heading,omitempty"`
	BatteryLevel *float64       `json:"battery_level,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	TTLSeconds   int            `json:"ttl_seconds"`
}

// Expired reports whether the record is stale at the given instant and must
// be treated as absent by every layer.
func (r *LocationRecord) Expired(now time.Time) bool {
	if r.TTLSeconds <= 0 {
		return false
	}
	return now.Sub(r.Timestamp) > time.Duration(r.TTLSeconds)*time.Second
}

type LocationUpdateRequest struct {
	UserID       string         `json:"user_id" validate:"required,uuid"`
	EntityID     string         `json:"entity_id" validate:"required,uuid"`
	EntityType   EntityType     `json:"entity_type" validate:"required,oneof=user vehicle service asset"`
	Location     Point          `json:"location" validate:"required"`
	Accuracy     *float64       `json:"accuracy,omitempty" validate:"omitempty,min=0,max=100"`
	Altitude     *float64       `json:"altitude,omitempty"`
	Speed        *float64       `json:"speed,omitempty" validate:"omitempty,min=0"`
	Heading      *float64       `json:"heading,omitempty" validate:"omitempty,min=0,max=360"`
	BatteryLevel *float64       `json:"battery_level,omitempty" validate:"omitempty,min=0,max=100"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type Bounds struct {
	MinLng float64 `json:"min_lng" validate:"lng"`
	MinLat float64 `json:"min_lat" validate:"lat"`
	MaxLng float64 `json:"max_lng" validate:"lng"`
	MaxLat float64 `json:"max_lat" validate:"lat"`
}

func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

type OrderBy string

const (
	OrderByTimestamp OrderBy = "timestamp"
	OrderByDistance  OrderBy = "distance"
	OrderByAccuracy  OrderBy = "accuracy"
)

// LocationQuery combines any subset of predicates. Only the durable layer can
// execute the full set; hot layers serve single-entity lookups.
type LocationQuery struct {
	EntityIDs     []uuid.UUID `json:"entity_ids,omitempty"`
	EntityType    EntityType  `json:"entity_type,omitempty"`
	Bounds        *Bounds     `json:"bounds,omitempty"`
	Center        *Point      `json:"center,omitempty"`
	RadiusM       float64     `json:"radius_m,omitempty" validate:"omitempty,min=0"`
	MinAccuracy   *float64    `json:"min_accuracy,omitempty"`
	MaxAgeSeconds int         `json:"max_age_seconds,omitempty"`
	OrderBy       OrderBy     `json:"order_by,omitempty"`
	Descending    bool        `json:"descending,omitempty"`
	Limit         int         `json:"limit,omitempty"`
}
