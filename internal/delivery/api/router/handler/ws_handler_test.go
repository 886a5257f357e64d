package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workgroup/config"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/infra/realtime"
	mockusecase "workgroup/internal/mocks/usecase"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWSTestServer(t *testing.T, authUC *mockusecase.MockAuthUsecase, origins ...string) (*httptest.Server, *realtime.Hub) {
	t.Helper()

	hub := realtime.NewHub(time.Second, newDiscardLogger(), nil)
	cfg := &config.Config{Realtime: &config.RealtimeConfig{
		SendTimeout:     time.Second,
		PingInterval:    time.Second,
		PongWait:        2 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		MaxMessageSize:  4096,
		AllowedOrigins:  origins,
	}}
	h := NewWSHandler(WSHandlerParams{AuthUC: authUC, Hub: hub, Config: cfg, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/ws", h.Stream)
	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		_ = hub.Shutdown(context.Background())
		srv.Close()
	})

	return srv, hub
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
}

func TestWSHandler_StreamReceivesTenantBroadcasts(t *testing.T) {
	t.Parallel()

	authUC := mockusecase.NewMockAuthUsecase(t)
	authUC.EXPECT().Authenticate(mock.Anything, "t7").Return(tenantMember(9, 7, entity.RoleMember), nil)
	srv, hub := newWSTestServer(t, authUC)

	client, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "?token=t7"), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer client.Close()

	require.Eventually(t, func() bool { return hub.Connections(7) == 1 }, 2*time.Second, 10*time.Millisecond)

	result := hub.Broadcast(context.Background(), 8, []byte(`{"type":"other"}`))
	assert.Equal(t, 0, result.Delivered)
	result = hub.Broadcast(context.Background(), 7, []byte(`{"type":"notification.created"}`))
	assert.Equal(t, 1, result.Delivered)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, payload, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	assert.JSONEq(t, `{"type":"notification.created"}`, string(payload))

	require.NoError(t, client.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second)))
	assert.Eventually(t, func() bool { return hub.Connections(7) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWSHandler_RejectsBeforeUpgrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setup      func(authUC *mockusecase.MockAuthUsecase)
		wantStatus int
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "invalid token",
			query: "?token=bad",
			setup: func(authUC *mockusecase.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "bad").Return(entity.Principal{}, domainerrors.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "no active group",
			query: "?token=lonely",
			setup: func(authUC *mockusecase.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "lonely").Return(entity.Principal{UserID: 4, Role: entity.RoleMember}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authUC := mockusecase.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(authUC)
			}
			srv, hub := newWSTestServer(t, authUC)

			_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, tt.query), nil)
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, 0, hub.Tenants())
		})
	}
}

func TestOriginChecker(t *testing.T) {
	t.Parallel()

	check := originChecker([]string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	assert.True(t, check(req), "non-browser clients send no origin")

	req.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))

	assert.True(t, originChecker(nil)(req), "no allow list accepts every origin")
}
