package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"workgroup/config"
	deliverycontext "workgroup/internal/delivery/context"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/infra/realtime"
	"workgroup/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultWriteWait = 10 * time.Second
	closeGracePeriod = time.Second
)

// WSHandlerParams holds dependencies for WSHandler, injected by Fx.
type WSHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Hub    *realtime.Hub
	Config *config.Config
	Logger *slog.Logger
}

// WSHandler upgrades authenticated clients and registers them under their tenant.
type WSHandler struct {
	authUC   usecase.AuthUsecase
	hub      *realtime.Hub
	cfg      *config.RealtimeConfig
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewWSHandler(params WSHandlerParams) *WSHandler {
	cfg := params.Config.Realtime

	return &WSHandler{
		authUC: params.AuthUC,
		hub:    params.Hub,
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
		logger: params.Logger.With(slog.String("component", "ws")),
	}
}

// originChecker allows any origin when none are configured. Requests without
// an Origin header come from non-browser clients and are accepted.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}

		origin := r.Header.Get("Origin")

		return origin == "" || slices.Contains(allowed, origin)
	}
}

// Stream serves GET /ws?token=... until the client goes away.
func (h *WSHandler) Stream(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return domainerrors.ErrUnauthorized.WithDetails("token query parameter is required")
	}

	ctx := c.Request().Context()
	principal, err := h.authUC.Authenticate(ctx, token)
	if err != nil {
		return err
	}

	tenantID, ok := principal.TenantID()
	if !ok {
		return domainerrors.ErrNoActiveGroup
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.Int64("user_id", principal.UserID),
		slog.Int64("working_group_id", tenantID),
	)

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the client.
		logger.Debug("WebSocket upgrade failed", slog.String("error", err.Error()))

		return nil
	}

	conn := newWSConn(ws)
	if err := h.hub.Connect(conn, tenantID); err != nil {
		logger.Warn("Rejecting stream", slog.String("error", err.Error()))
		_ = conn.Close()

		return nil
	}

	logger.Info("Stream opened", slog.String("conn_id", conn.ID()))

	go h.keepAlive(conn)
	h.readLoop(conn, logger)

	h.hub.Disconnect(conn, tenantID)
	_ = conn.Close()

	logger.Info("Stream closed", slog.String("conn_id", conn.ID()))

	return nil
}

// readLoop drains inbound frames so control messages are processed. It returns
// once the peer is gone or stops answering pings.
func (h *WSHandler) readLoop(conn *wsConn, logger *slog.Logger) {
	ws := conn.ws
	ws.SetReadLimit(h.cfg.MaxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Stream read failed", slog.String("error", err.Error()))
			}

			return
		}
	}
}

func (h *WSHandler) keepAlive(conn *wsConn) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-conn.done:
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}

// wsConn adapts a gorilla connection to realtime.Conn.
type wsConn struct {
	id string
	ws *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

var _ realtime.Conn = (*wsConn)(nil)

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{
		id:   uuid.NewString(),
		ws:   ws,
		done: make(chan struct{}),
	}
}

func (c *wsConn) ID() string {
	return c.id
}

// Send writes one text frame, bounded by ctx's deadline.
func (c *wsConn) Send(ctx context.Context, message []byte) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultWriteWait)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return err //nolint:wrapcheck // surfaced to the hub as a send failure
	}

	return c.ws.WriteMessage(websocket.TextMessage, message) //nolint:wrapcheck // same
}

func (c *wsConn) ping() error {
	//nolint:wrapcheck // keepAlive only needs to know it failed
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(defaultWriteWait))
}

// Close sends a close frame and releases the socket. Safe to call repeatedly.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod))
		c.closeErr = c.ws.Close()
	})

	return c.closeErr
}
