package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"geotrack/internal/api/handlers/http/admin"
	mock_admin "geotrack/internal/api/handlers/http/admin/mocks"
	"geotrack/internal/domain"
	"geotrack/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type adminMocks struct {
	geofences *mock_admin.MockGeofences
	stats     *mock_admin.MockStatsGetter
}

func newAdminHandler(ctrl *gomock.Controller) (*admin.Handler, adminMocks) {
	m := adminMocks{
		geofences: mock_admin.NewMockGeofences(ctrl),
		stats:     mock_admin.NewMockStatsGetter(ctrl),
	}
	return admin.NewHandler(newTestLogger(), m.geofences, m.stats), m
}

func TestAdminGeofenceCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	id := uuid.New()
	reqBody := `{"name":"depot","center":{"latitude":55.75,"longitude":37.61},"radius_m":500}`

	m.geofences.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(id, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/geofences", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AdminGeofenceCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != id.String() {
		t.Fatalf("expected id %s got %s", id, resp["id"])
	}
}

func TestAdminGeofenceCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newAdminHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/geofences", bytes.NewBufferString("{bad"))
	rr := httptest.NewRecorder()

	h.AdminGeofenceCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminGeofenceCreate_InvalidGeometry_422(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	reqBody := `{"name":"depot","center":{"latitude":55.75,"longitude":37.61},"radius_m":500}`

	m.geofences.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, e.ErrInvalidGeometry).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/geofences", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AdminGeofenceCreate(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d got %d body=%s", http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	}
}

func TestAdminGeofenceCreate_RadiusTooLarge_422(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	reqBody := `{"name":"depot","center":{"latitude":55.75,"longitude":37.61},"radius_m":9999999}`

	m.geofences.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, e.ErrRadiusTooLarge).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/geofences", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AdminGeofenceCreate(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d got %d body=%s", http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	}
}

func TestAdminGeofenceList_OK_CapsLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	fences := []*domain.Geofence{{ID: uuid.New(), Name: "a"}, {ID: uuid.New(), Name: "b"}}

	m.geofences.EXPECT().
		List(gomock.Any(), 2, 100).
		Return(fences, int64(250), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/geofences?page=2&limit=500", nil)
	rr := httptest.NewRecorder()

	h.AdminGeofenceList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	var total int64
	if err := json.Unmarshal(resp["total"], &total); err != nil || total != 250 {
		t.Fatalf("unexpected total in %s", rr.Body.String())
	}
}

func TestAdminGeofenceGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	id := uuid.New()

	m.geofences.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/geofences/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminGeofenceGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminGeofenceGet_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newAdminHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/geofences/zzz", nil)
	req = addChiURLParam(req, "id", "zzz")
	rr := httptest.NewRecorder()

	h.AdminGeofenceGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminGeofenceUpdate_NoContent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	id := uuid.New()
	reqBody := `{"name":"renamed"}`

	m.geofences.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/geofences/"+id.String(), bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminGeofenceUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminGeofenceDelete_NoContent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	id := uuid.New()

	m.geofences.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/geofences/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminGeofenceDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminStats_OK_DefaultMinutes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	m.stats.EXPECT().
		ActiveEntities(gomock.Any(), 60).
		Return(int64(7), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	var count int64
	if err := json.Unmarshal(resp["active_entities"], &count); err != nil || count != 7 {
		t.Fatalf("unexpected active_entities in %s", rr.Body.String())
	}
}

func TestAdminStats_BadMinutes_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newAdminHandler(ctrl)

	for _, minutes := range []string{"0", "-5", "1441", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes="+minutes, nil)
		rr := httptest.NewRecorder()

		h.AdminStats(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("minutes=%s: expected %d got %d", minutes, http.StatusBadRequest, rr.Code)
		}
	}
}

func TestAdminStats_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	m.stats.EXPECT().
		ActiveEntities(gomock.Any(), 60).
		Return(int64(0), errors.New("boom")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

func TestAdminEntityEvents_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAdminHandler(ctrl)

	entityID := uuid.New()
	events := []domain.GeofenceEvent{
		{ID: uuid.New(), EntityID: entityID, EventType: domain.EventEntry},
	}

	m.stats.EXPECT().
		EntityEvents(gomock.Any(), entityID, 50).
		Return(events, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/entities/"+entityID.String()+"/events", nil)
	req = addChiURLParam(req, "entityID", entityID.String())
	rr := httptest.NewRecorder()

	h.AdminEntityEvents(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	var count int
	if err := json.Unmarshal(resp["count"], &count); err != nil || count != 1 {
		t.Fatalf("unexpected count in %s", rr.Body.String())
	}
}
