package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geotrack/internal/config"
	"geotrack/internal/domain"
	"geotrack/internal/geo"
	"geotrack/pkg/e"
	"geotrack/pkg/validator"

	"github.com/google/uuid"
)

// CandidateSource yields the geofences worth an exact test around a point.
type CandidateSource interface {
	CandidatesNear(ctx context.Context, lat, lng float64) ([]domain.Geofence, error)
}

// Evaluator runs one position against the candidate geofences and derives
// entry/exit/inside/violation events. Event persistence, stream fan-out and
// action dispatch are side channels: their failures are logged and never fail
// the check itself.
type Evaluator struct {
	candidates CandidateSource
	state      GeofenceCacheStore
	events     EventLog
	queue      ActionEnqueuer
	stream     EventStream // optional
	cfg        config.GeofenceConfig
	logger     *slog.Logger
	now        func() time.Time
}

type EvaluatorOption func(*Evaluator)

func WithEvaluatorClock(now func() time.Time) EvaluatorOption {
	return func(ev *Evaluator) { ev.now = now }
}

func NewEvaluator(
	candidates CandidateSource,
	state GeofenceCacheStore,
	events EventLog,
	queue ActionEnqueuer,
	stream EventStream,
	cfg config.GeofenceConfig,
	logger *slog.Logger,
	opts ...EvaluatorOption,
) *Evaluator {
	ev := &Evaluator{
		candidates: candidates,
		state:      state,
		events:     events,
		queue:      queue,
		stream:     stream,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

func (ev *Evaluator) Check(ctx context.Context, req domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error) {
	const op = "service.Evaluator.Check"

	resp := domain.GeofenceCheckResponse{
		Events:            []domain.GeofenceEvent{},
		ActiveGeofenceIDs: []string{},
		TriggeredActions:  []string{},
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return resp, fmt.Errorf("%s: %w", op, err)
	}
	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		return resp, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !geo.ValidLat(req.Location.Latitude) || !geo.ValidLng(req.Location.Longitude) {
		return resp, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	fences, err := ev.candidates.CandidatesNear(ctx, req.Location.Latitude, req.Location.Longitude)
	if err != nil {
		return resp, e.Wrap(op, err)
	}

	prevInside := ev.previousInside(ctx, entityID, &req, fences)
	now := ev.now().UTC()

	var (
		events  []domain.GeofenceEvent
		actions []domain.ActionPayload
		inside  []uuid.UUID
	)

	for i := range fences {
		gf := &fences[i]
		eventsBefore := len(events)
		dist := geo.HaversineM(req.Location.Latitude, req.Location.Longitude, gf.Center.Latitude, gf.Center.Longitude)
		insideNow := ev.within(gf, req.Location.Latitude, req.Location.Longitude, dist)
		wasInside := prevInside[gf.ID]

		newEvent := func(t domain.GeofenceEventType) domain.GeofenceEvent {
			return domain.GeofenceEvent{
				ID:               uuid.New(),
				GeofenceID:       gf.ID,
				EntityID:         entityID,
				EntityType:       req.EntityType,
				EventType:        t,
				Location:         req.Location,
				PreviousLocation: req.PreviousLocation,
				DistanceM:        dist,
				Speed:            req.Speed,
				Heading:          req.Heading,
				Accuracy:         req.Accuracy,
				Timestamp:        now,
			}
		}
		trigger := func(evt domain.GeofenceEvent, action string) {
			actions = append(actions, domain.ActionPayload{
				Action:     action,
				EventID:    evt.ID,
				GeofenceID: gf.ID,
				EntityID:   entityID,
				EntityType: string(req.EntityType),
				Location:   req.Location,
				QueuedAt:   now,
			})
		}

		if insideNow {
			inside = append(inside, gf.ID)
		}

		switch {
		case insideNow && !wasInside:
			if req.Wants(domain.CheckEntry) {
				evt := newEvent(domain.EventEntry)
				events = append(events, evt)
				if gf.Rules.NotifyOnEntry {
					trigger(evt, domain.ActionNotifyEntry)
				}
				for _, a := range gf.Rules.AutoActions {
					trigger(evt, a)
				}
			}
		case !insideNow && wasInside:
			if req.Wants(domain.CheckExit) {
				evt := newEvent(domain.EventExit)
				events = append(events, evt)
				if gf.Rules.NotifyOnExit {
					trigger(evt, domain.ActionNotifyExit)
				}
			}
		}

		if insideNow {
			if req.Wants(domain.CheckInside) {
				events = append(events, newEvent(domain.EventInside))
			}
			if req.Wants(domain.CheckViolation) {
				if gf.Rules.SpeedLimitKmh != nil && req.Speed != nil && *req.Speed > *gf.Rules.SpeedLimitKmh {
					evt := newEvent(domain.EventViolation)
					events = append(events, evt)
					trigger(evt, domain.ActionSpeedViolation)
				}
				if gf.Rules.OperatingHours != nil && !gf.Rules.OperatingHours.Allows(now) {
					evt := newEvent(domain.EventViolation)
					events = append(events, evt)
					trigger(evt, domain.ActionRestrictAccess)
				}
			}
		} else if !wasInside && dist <= gf.RadiusM*ev.cfg.NearbyFactor {
			events = append(events, newEvent(domain.EventNearby))
		}

		if insideNow || len(events) > eventsBefore {
			if err := ev.state.TouchRecent(ctx, gf.ID); err != nil {
				ev.logger.Warn("touch recent failed", slog.String("geofence_id", gf.ID.String()), slog.Any("error", err))
			}
		}
	}

	ev.flush(ctx, entityID, events, actions, inside)

	resp.Events = events
	for _, id := range inside {
		resp.ActiveGeofenceIDs = append(resp.ActiveGeofenceIDs, id.String())
	}
	seen := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		if _, ok := seen[a.Action]; ok {
			continue
		}
		seen[a.Action] = struct{}{}
		resp.TriggeredActions = append(resp.TriggeredActions, a.Action)
	}
	return resp, nil
}

// previousInside reconstructs which fences the entity was inside before this
// position. An explicit previous location wins; otherwise the cached state is
// used; with neither, the entity is assumed outside everything, so the first
// report from inside a fence produces an entry event.
func (ev *Evaluator) previousInside(ctx context.Context, entityID uuid.UUID, req *domain.GeofenceCheckRequest, fences []domain.Geofence) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool, len(fences))

	if req.PreviousLocation != nil {
		for i := range fences {
			gf := &fences[i]
			dist := geo.HaversineM(req.PreviousLocation.Latitude, req.PreviousLocation.Longitude, gf.Center.Latitude, gf.Center.Longitude)
			out[gf.ID] = ev.within(gf, req.PreviousLocation.Latitude, req.PreviousLocation.Longitude, dist)
		}
		return out
	}

	ids, found, err := ev.state.EntityFences(ctx, entityID)
	if err != nil {
		ev.logger.Warn("entity state read failed", slog.String("entity_id", entityID.String()), slog.Any("error", err))
		return out
	}
	if !found {
		return out
	}
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// within runs the cheap circle pre-filter, then the exact polygon test when
// the fence has a ring. The registry guarantees the circle covers the ring.
func (ev *Evaluator) within(gf *domain.Geofence, lat, lng, dist float64) bool {
	if dist > gf.RadiusM {
		return false
	}
	if coords := gf.RingCoords(); len(coords) >= 3 {
		return geo.PointInRing(lat, lng, coords)
	}
	return true
}

// flush pushes the evaluation's side effects: event log, analytics stream,
// action queue and the per-entity inside set. All best effort.
func (ev *Evaluator) flush(ctx context.Context, entityID uuid.UUID, events []domain.GeofenceEvent, actions []domain.ActionPayload, inside []uuid.UUID) {
	if len(events) > 0 {
		if err := ev.events.SaveBatch(ctx, events); err != nil {
			ev.logger.Error("event batch save failed", slog.Int("count", len(events)), slog.Any("error", err))
		}
		if ev.stream != nil {
			if err := ev.stream.Publish(ctx, events); err != nil {
				ev.logger.Warn("event stream publish failed", slog.Any("error", err))
			}
		}
	}

	for _, a := range actions {
		if err := ev.queue.Enqueue(ctx, a); err != nil {
			ev.logger.Error("action enqueue failed", slog.String("action", a.Action), slog.Any("error", err))
		}
	}

	if err := ev.state.SetEntityFences(ctx, entityID, inside); err != nil {
		ev.logger.Warn("entity state write failed", slog.String("entity_id", entityID.String()), slog.Any("error", err))
	}
}
