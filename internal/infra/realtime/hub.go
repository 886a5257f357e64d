// Package realtime keeps the live streaming connections of every tenant and fans events out to them.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"workgroup/config"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	"workgroup/internal/infra/metrics"

	"github.com/goccy/go-json"
	"go.uber.org/fx"
)

const defaultSendTimeout = 5 * time.Second

// ErrHubClosed is returned by Connect after Shutdown.
var ErrHubClosed = errors.New("realtime hub is shut down")

// Conn is one live client connection.
type Conn interface {
	// ID identifies the connection for the lifetime of the process.
	ID() string
	// Send writes one message. It must respect ctx's deadline.
	Send(ctx context.Context, message []byte) error
	Close() error
}

// Hub is the tenant-keyed connection registry. It implements service.Broadcaster.
type Hub struct {
	mu     sync.RWMutex
	groups map[int64][]Conn
	closed bool

	sendTimeout time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

var _ service.Broadcaster = (*Hub)(nil)

// Params defines the dependencies of the hub, injected by fx.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New builds the process hub and closes every connection when the app stops.
func New(params Params) *Hub {
	timeout := defaultSendTimeout
	if params.Config.Realtime != nil && params.Config.Realtime.SendTimeout > 0 {
		timeout = params.Config.Realtime.SendTimeout
	}

	hub := NewHub(timeout, params.Logger, params.Metrics)

	params.Lc.Append(fx.Hook{
		OnStop: hub.Shutdown,
	})

	return hub
}

// NewHub builds a hub outside fx. m may be nil.
func NewHub(sendTimeout time.Duration, logger *slog.Logger, m *metrics.Metrics) *Hub {
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}

	return &Hub{
		groups:      make(map[int64][]Conn),
		sendTimeout: sendTimeout,
		logger:      logger.With(slog.String("component", "realtime")),
		metrics:     m,
		now:         time.Now,
	}
}

// Connect adds conn to the tenant's group. Connecting the same conn twice is a no-op.
func (h *Hub) Connect(conn Conn, tenantID int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	for _, existing := range h.groups[tenantID] {
		if existing.ID() == conn.ID() {
			return nil
		}
	}

	h.groups[tenantID] = append(h.groups[tenantID], conn)
	if h.metrics != nil {
		h.metrics.RealtimeConnections.Inc()
	}

	h.logger.Debug("connection registered",
		slog.String("conn_id", conn.ID()),
		slog.Int64("working_group_id", tenantID),
		slog.Int("group_size", len(h.groups[tenantID])),
	)

	return nil
}

// Disconnect removes conn from the tenant's group. Removing an absent conn does nothing.
func (h *Hub) Disconnect(conn Conn, tenantID int64) {
	h.mu.Lock()
	removed := h.removeLocked(conn.ID(), tenantID)
	h.mu.Unlock()

	if removed {
		h.logger.Debug("connection removed",
			slog.String("conn_id", conn.ID()),
			slog.Int64("working_group_id", tenantID),
		)
	}
}

func (h *Hub) removeLocked(connID string, tenantID int64) bool {
	group, ok := h.groups[tenantID]
	if !ok {
		return false
	}

	for i, existing := range group {
		if existing.ID() != connID {
			continue
		}

		// Copy so snapshots taken by in-flight broadcasts stay intact.
		next := make([]Conn, 0, len(group)-1)
		next = append(next, group[:i]...)
		next = append(next, group[i+1:]...)

		if len(next) == 0 {
			delete(h.groups, tenantID)
		} else {
			h.groups[tenantID] = next
		}
		if h.metrics != nil {
			h.metrics.RealtimeConnections.Dec()
		}

		return true
	}

	return false
}

// Broadcast sends message to every connection of the tenant concurrently. Each send gets at most
// the configured send timeout; a connection whose send fails is removed and closed.
func (h *Hub) Broadcast(ctx context.Context, tenantID int64, message []byte) service.BroadcastResult {
	h.mu.RLock()
	snapshot := h.groups[tenantID]
	h.mu.RUnlock()

	if len(snapshot) == 0 {
		return service.BroadcastResult{}
	}

	start := h.now()
	if h.metrics != nil {
		h.metrics.RealtimeBroadcastsTotal.Inc()
	}

	var delivered, failed atomic.Int64
	var wg sync.WaitGroup
	for _, conn := range snapshot {
		wg.Add(1)
		go func(conn Conn) {
			defer wg.Done()

			if err := h.send(ctx, conn, message); err != nil {
				failed.Add(1)
				h.drop(ctx, conn, tenantID, err)

				return
			}
			delivered.Add(1)
		}(conn)
	}
	wg.Wait()

	result := service.BroadcastResult{Delivered: int(delivered.Load()), Failed: int(failed.Load())}
	if h.metrics != nil {
		h.metrics.RealtimeSendsTotal.WithLabelValues(metrics.ResultDelivered).Add(float64(result.Delivered))
		h.metrics.RealtimeSendsTotal.WithLabelValues(metrics.ResultFailed).Add(float64(result.Failed))
		h.metrics.RealtimeBroadcastDuration.Observe(h.now().Sub(start).Seconds())
	}

	return result
}

// send bounds one Send by the send timeout even when the connection ignores ctx.
func (h *Hub) send(ctx context.Context, conn Conn, message []byte) error {
	sendCtx, cancel := context.WithTimeout(ctx, h.sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- conn.Send(sendCtx, message)
	}()

	select {
	case err := <-done:
		return err
	case <-sendCtx.Done():
		return errors.Wrap(sendCtx.Err(), "send timed out")
	}
}

func (h *Hub) drop(ctx context.Context, conn Conn, tenantID int64, cause error) {
	h.logger.WarnContext(ctx, "send failed, dropping connection",
		slog.String("conn_id", conn.ID()),
		slog.Int64("working_group_id", tenantID),
		slog.String("error", cause.Error()),
	)

	h.Disconnect(conn, tenantID)
	if err := conn.Close(); err != nil {
		h.logger.DebugContext(ctx, "close after failed send",
			slog.String("conn_id", conn.ID()),
			slog.String("error", err.Error()),
		)
	}
}

// Publish stamps, encodes and broadcasts event to event.WorkingGroupID.
func (h *Hub) Publish(ctx context.Context, event service.Event) (service.BroadcastResult, error) {
	if event.SentAt.IsZero() {
		event.SentAt = h.now().UTC()
	}

	message, err := json.Marshal(event)
	if err != nil {
		return service.BroadcastResult{}, errors.Wrap(err, "encode event")
	}

	return h.Broadcast(ctx, event.WorkingGroupID, message), nil
}

// Connections returns the number of live connections of a tenant.
func (h *Hub) Connections(tenantID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.groups[tenantID])
}

// Tenants returns the number of tenants with at least one live connection.
func (h *Hub) Tenants() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.groups)
}

// Shutdown closes every connection and refuses new ones.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	groups := h.groups
	h.groups = make(map[int64][]Conn)
	h.closed = true
	h.mu.Unlock()

	var closed int
	for _, group := range groups {
		for _, conn := range group {
			if err := conn.Close(); err != nil {
				h.logger.DebugContext(ctx, "close on shutdown", slog.String("conn_id", conn.ID()), slog.String("error", err.Error()))
			}
			closed++
		}
	}
	if h.metrics != nil {
		h.metrics.RealtimeConnections.Set(0)
	}

	h.logger.InfoContext(ctx, "realtime hub stopped", slog.Int("closed_connections", closed))

	return nil
}
