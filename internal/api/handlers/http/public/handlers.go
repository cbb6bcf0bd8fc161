package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"geotrack/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LocationTracker interface {
	Update(ctx context.Context, req domain.LocationUpdateRequest) (*domain.LocationRecord, error)
	Get(ctx context.Context, entityID uuid.UUID) (*domain.LocationRecord, error)
	Search(ctx context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error)
	Delete(ctx context.Context, entityID uuid.UUID) error
}

type GeofenceChecker interface {
	Check(ctx context.Context, req domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error)
}

type GeofenceReader interface {
	ListInBounds(ctx context.Context, b domain.Bounds, f domain.GeofenceBoundsFilter) ([]*domain.Geofence, error)
}

type Handler struct {
	logger    *slog.Logger
	Locations LocationTracker
	Checker   GeofenceChecker
	Geofences GeofenceReader
}

func NewHandler(logger *slog.Logger, locations LocationTracker, checker GeofenceChecker, geofences GeofenceReader) *Handler {
	return &Handler{
		logger:    logger,
		Locations: locations,
		Checker:   checker,
		Geofences: geofences,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) LocationUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.LocationUpdateRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	rec, err := h.Locations.Update(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("location updated",
		slog.String("entity_id", rec.EntityID.String()),
		slog.String("entity_type", string(rec.EntityType)),
	)
	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) LocationGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "entityID")
	entityID, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid entity id", slog.String("entity_id", idStr))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entity id"})
		return
	}

	rec, err := h.Locations.Get(r.Context(), entityID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) LocationSearch(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var q domain.LocationQuery
	if !decodeStrict(w, r, &q) {
		return
	}

	records, err := h.Locations.Search(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("location search", slog.Int("count", len(records)))
	writeJSON(w, http.StatusOK, map[string]any{
		"locations": records,
		"count":     len(records),
	})
}

func (h *Handler) LocationDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "entityID")
	entityID, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid entity id", slog.String("entity_id", idStr))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entity id"})
		return
	}

	if err := h.Locations.Delete(r.Context(), entityID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GeofenceCheck(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.GeofenceCheckRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	resp, err := h.Checker.Check(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("geofence check",
		slog.String("entity_id", req.EntityID),
		slog.Int("events", len(resp.Events)),
		slog.Int("active", len(resp.ActiveGeofenceIDs)),
	)
	writeJSON(w, http.StatusOK, resp)
}

// GeofenceListInBounds answers the map viewport query:
// GET /geofences?min_lng=&min_lat=&max_lng=&max_lat=&active_only=&limit=
func (h *Handler) GeofenceListInBounds(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	qv := r.URL.Query()
	bounds := domain.Bounds{}
	var err error
	if bounds.MinLng, err = strconv.ParseFloat(qv.Get("min_lng"), 64); err == nil {
		if bounds.MinLat, err = strconv.ParseFloat(qv.Get("min_lat"), 64); err == nil {
			if bounds.MaxLng, err = strconv.ParseFloat(qv.Get("max_lng"), 64); err == nil {
				bounds.MaxLat, err = strconv.ParseFloat(qv.Get("max_lat"), 64)
			}
		}
	}
	if err != nil {
		l.Warn("invalid bounds", slog.String("query", r.URL.RawQuery))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "min_lng, min_lat, max_lng, max_lat are required"})
		return
	}

	filter := domain.GeofenceBoundsFilter{
		ActiveOnly: qv.Get("active_only") != "false",
		Limit:      parseInt(qv.Get("limit"), 100),
	}

	fences, err := h.Geofences.ListInBounds(r.Context(), bounds, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"geofences": fences,
		"count":     len(fences),
	})
}

// decodeStrict rejects bodies with trailing garbage after the JSON object.
func decodeStrict(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}
