package handler

import (
	"net/http"
	"testing"
	"time"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/errors"
	mockusecase "workgroup/internal/mocks/usecase"
	"workgroup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationHandler_SubmitEvent(t *testing.T) {
	t.Parallel()

	principal := tenantMember(9, 7, entity.RoleMember)
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockusecase.MockNotificationUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"raw_notification":"Ana paid 12.50","name":"Ana","amount":12.5,"security_code":"123","notification_timestamp":"2026-03-01T12:00:00Z"}`,
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().SubmitEvent(mock.Anything, principal, &usecase.SubmitEventInput{
					RawNotification:       "Ana paid 12.50",
					Name:                  "Ana",
					Amount:                12.5,
					SecurityCode:          "123",
					NotificationTimestamp: stamp,
				}).Return(&entity.Notification{ID: 1, WorkingGroupID: 7, Name: "Ana", Amount: 12.5, Status: entity.NotificationStatusReceived}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "missing fields",
			body:       `{"amount":1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "tenantless caller",
			body: `{"raw_notification":"x","name":"Ana","amount":1,"notification_timestamp":"2026-03-01T12:00:00Z"}`,
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().SubmitEvent(mock.Anything, principal, mock.Anything).Return(nil, domainerrors.ErrNoActiveGroup)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "NO_ACTIVE_GROUP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mockusecase.NewMockNotificationUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: uc})

			rec := serve(newTestEcho(), http.MethodPost, "/notifications/incoming", "/notifications/incoming", tt.body, &principal, h.SubmitEvent)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))

				return
			}
			got := decodeEnvelope[entity.Notification](t, rec)
			assert.Equal(t, int64(7), got.WorkingGroupID)
			assert.Equal(t, entity.NotificationStatusReceived, got.Status)
		})
	}
}

func TestNotificationHandler_RegisterDeliveryDuplicate(t *testing.T) {
	t.Parallel()

	principal := tenantMember(9, 7, entity.RoleMember)
	uc := mockusecase.NewMockNotificationUsecase(t)
	uc.EXPECT().RegisterDelivery(mock.Anything, principal, &usecase.RegisterDeliveryInput{NotificationID: 1, DeviceID: 3, UserID: 9}).
		Return(nil, errors.Wrap(errors.Join(domainerrors.ErrDuplicateDelivery, errors.New("unique violation")), "register delivery"))
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: uc})

	rec := serve(newTestEcho(), http.MethodPost, "/notifications/deliveries", "/notifications/deliveries",
		`{"notification_id":1,"device_id":3,"user_id":9}`, &principal, h.RegisterDelivery)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DELIVERY_ALREADY_REGISTERED", decodeErrorCode(t, rec))
}

func TestNotificationHandler_ListForGroupPaging(t *testing.T) {
	t.Parallel()

	principal := tenantMember(9, 7, entity.RoleMember)

	tests := []struct {
		name       string
		target     string
		setup      func(uc *mockusecase.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name:   "explicit page",
			target: "/groups/7/notifications?skip=10&limit=5",
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().ListForGroup(mock.Anything, principal, int64(7), usecase.Page{Skip: 10, Limit: 5}).
					Return([]*entity.Notification{{ID: 3}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "defaults",
			target: "/groups/7/notifications",
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().ListForGroup(mock.Anything, principal, int64(7), usecase.Page{}).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non numeric limit",
			target:     "/groups/7/notifications?limit=many",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad group id",
			target:     "/groups/zero/notifications",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mockusecase.NewMockNotificationUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: uc})

			rec := serve(newTestEcho(), http.MethodGet, "/groups/:id/notifications", tt.target, "", &principal, h.ListForGroup)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNotificationHandler_RequiresPrincipal(t *testing.T) {
	t.Parallel()

	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: mockusecase.NewMockNotificationUsecase(t)})

	rec := serve(newTestEcho(), http.MethodGet, "/notifications/:id", "/notifications/1", "", nil, h.Get)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeErrorCode(t, rec))
}
