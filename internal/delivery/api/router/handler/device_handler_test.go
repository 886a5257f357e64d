package handler

import (
	"net/http"
	"testing"
	"time"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	mockusecase "workgroup/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_ProvisioningQR(t *testing.T) {
	t.Parallel()

	principal := tenantMember(1, 7, entity.RoleAdmin)
	png := []byte{0x89, 'P', 'N', 'G'}

	uc := mockusecase.NewMockDeviceUsecase(t)
	uc.EXPECT().ProvisioningQR(mock.Anything, principal, int64(3)).Return(png, nil)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: newDiscardLogger()})

	rec := serve(newTestEcho(), http.MethodGet, "/devices/:id/qr", "/devices/3/qr", "", &principal, h.ProvisioningQR)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDeviceHandler_HeartbeatUsesClientAddress(t *testing.T) {
	t.Parallel()

	principal := tenantMember(9, 7, entity.RoleMember)
	seen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := mockusecase.NewMockDeviceUsecase(t)
	// httptest requests originate from 192.0.2.1.
	uc.EXPECT().Heartbeat(mock.Anything, principal, int64(3), "192.0.2.1").
		Return(&entity.Device{ID: 3, WorkingGroupID: 7, LastSeen: &seen, LastIPAddress: "192.0.2.1"}, nil)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: newDiscardLogger()})

	rec := serve(newTestEcho(), http.MethodPost, "/devices/:id/heartbeat", "/devices/3/heartbeat", "", &principal, h.Heartbeat)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeEnvelope[entity.Device](t, rec)
	assert.Equal(t, "192.0.2.1", got.LastIPAddress)
	require.NotNil(t, got.LastSeen)
	assert.True(t, seen.Equal(*got.LastSeen))
}

func TestDeviceHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	principal := tenantMember(9, 7, entity.RoleMember)

	tests := []struct {
		name       string
		target     string
		setup      func(uc *mockusecase.MockDeviceUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "not found",
			target: "/devices/404",
			setup: func(uc *mockusecase.MockDeviceUsecase) {
				uc.EXPECT().Get(mock.Anything, principal, int64(404)).Return(nil, domainerrors.ErrDeviceNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "DEVICE_NOT_FOUND",
		},
		{
			name:   "other tenant",
			target: "/devices/5",
			setup: func(uc *mockusecase.MockDeviceUsecase) {
				uc.EXPECT().Get(mock.Anything, principal, int64(5)).Return(nil, domainerrors.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "negative id",
			target:     "/devices/-1",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mockusecase.NewMockDeviceUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: newDiscardLogger()})

			rec := serve(newTestEcho(), http.MethodGet, "/devices/:id", tt.target, "", &principal, h.Get)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
		})
	}
}

func TestDeviceHandler_RemoveAssignment(t *testing.T) {
	t.Parallel()

	principal := tenantMember(1, 7, entity.RoleAdmin)
	uc := mockusecase.NewMockDeviceUsecase(t)
	uc.EXPECT().RemoveAssignment(mock.Anything, principal, int64(11)).Return(nil)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: newDiscardLogger()})

	rec := serve(newTestEcho(), http.MethodDelete, "/devices/assignments/:assignmentId", "/devices/assignments/11", "", &principal, h.RemoveAssignment)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
