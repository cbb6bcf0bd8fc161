package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"

	"geotrack/internal/domain"
	"geotrack/internal/service"

	mock_service "geotrack/internal/service/mocks"
)

func TestService_Check_Delegates_OK_EmptyEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkSvc := mock_service.NewMockCheckService(ctrl)

	req := checkRequest()
	want := domain.GeofenceCheckResponse{
		Events:            []domain.GeofenceEvent{},
		ActiveGeofenceIDs: []string{},
		TriggeredActions:  []string{},
	}

	checkSvc.EXPECT().
		Check(gomock.Any(), req).
		Return(want, nil).
		Times(1)

	svc := service.NewService(nil, nil, checkSvc, nil)

	got, err := svc.Check(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestService_Check_Delegates_ErrorPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkSvc := mock_service.NewMockCheckService(ctrl)

	req := checkRequest()
	wantErr := errors.New("boom")

	checkSvc.EXPECT().
		Check(gomock.Any(), req).
		Return(domain.GeofenceCheckResponse{}, wantErr).
		Times(1)

	svc := service.NewService(nil, nil, checkSvc, nil)

	_, err := svc.Check(context.Background(), req)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected err=%v got=%v", wantErr, err)
	}
}

func TestService_Check_PassesContext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkSvc := mock_service.NewMockCheckService(ctrl)

	type key string
	const requestKey key = "request-id"

	ctx := context.WithValue(context.Background(), requestKey, "abc-123")
	req := checkRequest()

	checkSvc.EXPECT().
		Check(gomock.Any(), req).
		DoAndReturn(func(ctx context.Context, _ domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error) {
			if v, _ := ctx.Value(requestKey).(string); v != "abc-123" {
				t.Errorf("context value lost: %v", ctx.Value(requestKey))
			}
			return domain.GeofenceCheckResponse{}, nil
		}).
		Times(1)

	svc := service.NewService(nil, nil, checkSvc, nil)

	if _, err := svc.Check(ctx, req); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
