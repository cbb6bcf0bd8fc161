package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"geotrack/internal/config"
	"geotrack/internal/domain"
	"geotrack/internal/service"
	"geotrack/pkg/e"

	mock_service "geotrack/internal/service/mocks"
)

func TestActionDispatcher_DeliversPayload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	queue := mock_service.NewMockActionDequeuer(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := domain.ActionPayload{
		Action:   domain.ActionNotifyEntry,
		EventID:  uuid.New(),
		EntityID: uuid.New(),
	}

	queue.EXPECT().
		Dequeue(gomock.Any(), 5*time.Second).
		Return(&payload, nil).
		Times(1)
	queue.EXPECT().
		Dequeue(gomock.Any(), 5*time.Second).
		DoAndReturn(func(context.Context, time.Duration) (*domain.ActionPayload, error) {
			cancel()
			return nil, e.ErrQueueEmpty
		}).
		AnyTimes()

	d := service.NewActionDispatcher(discardLogger(), config.DispatcherConfig{WebhookURL: srv.URL}, queue)
	d.Run(ctx)

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected 1 delivery, got %d", got)
	}
}

func TestActionDispatcher_DisabledSkipsDelivery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("disabled dispatcher must not call the webhook")
	}))
	defer srv.Close()

	queue := mock_service.NewMockActionDequeuer(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := domain.ActionPayload{Action: domain.ActionNotifyExit, EventID: uuid.New()}

	queue.EXPECT().
		Dequeue(gomock.Any(), 5*time.Second).
		Return(&payload, nil).
		Times(1)
	queue.EXPECT().
		Dequeue(gomock.Any(), 5*time.Second).
		DoAndReturn(func(context.Context, time.Duration) (*domain.ActionPayload, error) {
			cancel()
			return nil, e.ErrQueueEmpty
		}).
		AnyTimes()

	d := service.NewActionDispatcher(discardLogger(), config.DispatcherConfig{WebhookURL: srv.URL, Disabled: true}, queue)
	d.Run(ctx)
}
