package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"geotrack/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Geofences interface {
	Create(ctx context.Context, req domain.CreateGeofenceRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Geofence, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateGeofenceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	EntityEvents(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.GeofenceEvent, error)
	ActiveEntities(ctx context.Context, minutes int) (int64, error)
}

type Handler struct {
	logger    *slog.Logger
	Geofences Geofences
	Stats     StatsGetter
}

func NewHandler(logger *slog.Logger, geofences Geofences, stats StatsGetter) *Handler {
	return &Handler{
		logger:    logger,
		Geofences: geofences,
		Stats:     stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminGeofenceCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminGeofenceCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateGeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating geofence",
		slog.String("name", req.Name),
		slog.Float64("center_lat", req.Center.Latitude),
		slog.Float64("center_lng", req.Center.Longitude),
		slog.Float64("radius_m", req.RadiusM),
		slog.Int("ring_vertices", len(req.Ring)),
	)

	id, err := h.Geofences.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("geofence created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminGeofenceList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminGeofenceList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	fences, total, err := h.Geofences.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("geofences listed", slog.Int("count", len(fences)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"geofences": fences,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func (h *Handler) AdminGeofenceGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminGeofenceGet", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	gf, err := h.Geofences.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, gf)
}

func (h *Handler) AdminGeofenceUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminGeofenceUpdate", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateGeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Geofences.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminGeofenceDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminGeofenceDelete", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Geofences.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdminStats reports how many distinct entities produced geofence events in
// the trailing window: GET /admin/stats?minutes=60
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	count, err := h.Stats.ActiveEntities(r.Context(), minutes)
	if err != nil {
		l.Error("Stats.ActiveEntities failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"active_entities": count,
		"minutes":         minutes,
	})
}

// AdminEntityEvents lists the recent event log rows for one entity:
// GET /admin/entities/{entityID}/events?limit=50
func (h *Handler) AdminEntityEvents(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEntityEvents", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "entityID")
	entityID, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid entity id", slog.String("entity_id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entity id"})
		return
	}

	limit := parseInt(r.URL.Query().Get("limit"), 50)

	events, err := h.Stats.EntityEvents(r.Context(), entityID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"count":  len(events),
	})
}
