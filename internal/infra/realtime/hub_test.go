package realtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	"workgroup/internal/infra/metrics"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id     string
	sendFn func(ctx context.Context, message []byte) error

	mu       sync.Mutex
	received [][]byte
	closed   atomic.Bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(ctx context.Context, message []byte) error {
	if c.sendFn != nil {
		if err := c.sendFn(ctx, message); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.received = append(c.received, message)

	return nil
}

func (c *fakeConn) Close() error {
	c.closed.Store(true)

	return nil
}

func (c *fakeConn) messages() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([][]byte(nil), c.received...)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHub(t *testing.T, timeout time.Duration) (*Hub, *metrics.Metrics) {
	t.Helper()

	m := metrics.New()

	return NewHub(timeout, newDiscardLogger(), m), m
}

func TestHub_BroadcastIsTenantScoped(t *testing.T) {
	t.Parallel()

	hub, _ := newTestHub(t, time.Second)
	a1, a2, b1 := newFakeConn("a1"), newFakeConn("a2"), newFakeConn("b1")
	require.NoError(t, hub.Connect(a1, 1))
	require.NoError(t, hub.Connect(a2, 1))
	require.NoError(t, hub.Connect(b1, 2))

	result := hub.Broadcast(context.Background(), 1, []byte("hello"))

	assert.Equal(t, service.BroadcastResult{Delivered: 2}, result)
	assert.Equal(t, [][]byte{[]byte("hello")}, a1.messages())
	assert.Equal(t, [][]byte{[]byte("hello")}, a2.messages())
	assert.Empty(t, b1.messages())
}

func TestHub_BroadcastToEmptyTenant(t *testing.T) {
	t.Parallel()

	hub, m := newTestHub(t, time.Second)

	result := hub.Broadcast(context.Background(), 99, []byte("x"))

	assert.Equal(t, service.BroadcastResult{}, result)
	assert.InDelta(t, 0, testutil.ToFloat64(m.RealtimeBroadcastsTotal), 0.0001)
}

func TestHub_ConnectIsIdempotent(t *testing.T) {
	t.Parallel()

	hub, m := newTestHub(t, time.Second)
	conn := newFakeConn("c1")

	require.NoError(t, hub.Connect(conn, 1))
	require.NoError(t, hub.Connect(conn, 1))

	assert.Equal(t, 1, hub.Connections(1))
	assert.InDelta(t, 1, testutil.ToFloat64(m.RealtimeConnections), 0.0001)
}

func TestHub_DisconnectRemovesEmptyGroup(t *testing.T) {
	t.Parallel()

	hub, m := newTestHub(t, time.Second)
	c1, c2 := newFakeConn("c1"), newFakeConn("c2")
	require.NoError(t, hub.Connect(c1, 1))
	require.NoError(t, hub.Connect(c2, 1))

	hub.Disconnect(c1, 1)
	assert.Equal(t, 1, hub.Connections(1))
	assert.Equal(t, 1, hub.Tenants())

	hub.Disconnect(c2, 1)
	assert.Equal(t, 0, hub.Connections(1))
	assert.Equal(t, 0, hub.Tenants())

	// absent conn and unknown tenant
	hub.Disconnect(c2, 1)
	hub.Disconnect(newFakeConn("ghost"), 42)
	assert.InDelta(t, 0, testutil.ToFloat64(m.RealtimeConnections), 0.0001)
}

func TestHub_FailedSendDropsOnlyThatConnection(t *testing.T) {
	t.Parallel()

	hub, m := newTestHub(t, time.Second)
	healthy1, healthy2 := newFakeConn("ok1"), newFakeConn("ok2")
	broken := newFakeConn("broken")
	broken.sendFn = func(context.Context, []byte) error { return errors.New("broken pipe") }

	for _, c := range []*fakeConn{healthy1, broken, healthy2} {
		require.NoError(t, hub.Connect(c, 1))
	}

	result := hub.Broadcast(context.Background(), 1, []byte("event"))

	assert.Equal(t, service.BroadcastResult{Delivered: 2, Failed: 1}, result)
	assert.Len(t, healthy1.messages(), 1)
	assert.Len(t, healthy2.messages(), 1)
	assert.True(t, broken.closed.Load())
	assert.Equal(t, 2, hub.Connections(1))

	hub.Broadcast(context.Background(), 1, []byte("again"))
	assert.Len(t, healthy1.messages(), 2)
	assert.Len(t, healthy2.messages(), 2)
	assert.Empty(t, broken.messages())

	assert.InDelta(t, 4, testutil.ToFloat64(m.RealtimeSendsTotal.WithLabelValues(metrics.ResultDelivered)), 0.0001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RealtimeSendsTotal.WithLabelValues(metrics.ResultFailed)), 0.0001)
	assert.InDelta(t, 2, testutil.ToFloat64(m.RealtimeConnections), 0.0001)
}

func TestHub_SlowSendIsBoundedByTimeout(t *testing.T) {
	t.Parallel()

	hub, _ := newTestHub(t, 50*time.Millisecond)
	release := make(chan struct{})
	defer close(release)

	stuck := newFakeConn("stuck")
	stuck.sendFn = func(context.Context, []byte) error {
		<-release // ignores ctx on purpose

		return nil
	}
	fast := newFakeConn("fast")
	require.NoError(t, hub.Connect(stuck, 1))
	require.NoError(t, hub.Connect(fast, 1))

	start := time.Now()
	result := hub.Broadcast(context.Background(), 1, []byte("event"))

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, service.BroadcastResult{Delivered: 1, Failed: 1}, result)
	assert.True(t, stuck.closed.Load())
	assert.Equal(t, 1, hub.Connections(1))
}

func TestHub_PublishEncodesEnvelope(t *testing.T) {
	t.Parallel()

	hub, _ := newTestHub(t, time.Second)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	hub.now = func() time.Time { return fixed }

	conn := newFakeConn("c1")
	require.NoError(t, hub.Connect(conn, 7))

	result, err := hub.Publish(context.Background(), service.Event{
		Type:           service.EventNotificationCreated,
		WorkingGroupID: 7,
		Data:           map[string]any{"id": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Delivered)

	msgs := conn.messages()
	require.Len(t, msgs, 1)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(msgs[0], &frame))
	assert.Equal(t, "notification.created", frame["event"])
	assert.EqualValues(t, 7, frame["working_group_id"])
	assert.Equal(t, "2026-03-01T12:00:00Z", frame["sent_at"])
	assert.Equal(t, map[string]any{"id": float64(1)}, frame["data"])
}

func TestHub_ShutdownClosesAll(t *testing.T) {
	t.Parallel()

	hub, m := newTestHub(t, time.Second)
	conns := []*fakeConn{newFakeConn("a"), newFakeConn("b"), newFakeConn("c")}
	require.NoError(t, hub.Connect(conns[0], 1))
	require.NoError(t, hub.Connect(conns[1], 1))
	require.NoError(t, hub.Connect(conns[2], 2))

	require.NoError(t, hub.Shutdown(context.Background()))

	for _, c := range conns {
		assert.True(t, c.closed.Load(), c.id)
	}
	assert.Equal(t, 0, hub.Tenants())
	assert.InDelta(t, 0, testutil.ToFloat64(m.RealtimeConnections), 0.0001)
	assert.ErrorIs(t, hub.Connect(newFakeConn("late"), 1), ErrHubClosed)
}

func TestHub_ConcurrentMutationAndBroadcast(t *testing.T) {
	t.Parallel()

	hub, m := newTestHub(t, time.Second)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			conn := newFakeConn(fmt.Sprintf("c%d", i))
			tenant := int64(i % 3)
			assert.NoError(t, hub.Connect(conn, tenant))
			hub.Broadcast(context.Background(), tenant, []byte("tick"))
			if i%2 == 0 {
				hub.Disconnect(conn, tenant)
			}
		}(i)
	}
	wg.Wait()

	total := hub.Connections(0) + hub.Connections(1) + hub.Connections(2)
	assert.Equal(t, 25, total)
	assert.InDelta(t, 25, testutil.ToFloat64(m.RealtimeConnections), 0.0001)
}

func TestHub_NilMetrics(t *testing.T) {
	t.Parallel()

	hub := NewHub(0, newDiscardLogger(), nil)
	conn := newFakeConn("c1")
	require.NoError(t, hub.Connect(conn, 1))

	assert.Equal(t, 1, hub.Broadcast(context.Background(), 1, []byte("x")).Delivered)
	hub.Disconnect(conn, 1)
	assert.NoError(t, hub.Shutdown(context.Background()))
	assert.Equal(t, defaultSendTimeout, hub.sendTimeout)
}
