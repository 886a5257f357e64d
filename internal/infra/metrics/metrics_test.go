package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersRealtimeCollectors(t *testing.T) {
	m := New()

	m.RealtimeConnections.Set(3)
	m.RealtimeBroadcastsTotal.Inc()
	m.RealtimeSendsTotal.WithLabelValues(ResultDelivered).Add(2)
	m.RealtimeSendsTotal.WithLabelValues(ResultFailed).Inc()

	assert.InDelta(t, 3, testutil.ToFloat64(m.RealtimeConnections), 0.0001)
	assert.InDelta(t, 2, testutil.ToFloat64(m.RealtimeSendsTotal.WithLabelValues(ResultDelivered)), 0.0001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RealtimeSendsTotal.WithLabelValues(ResultFailed)), 0.0001)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.RealtimeBroadcastsTotal.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "workgroup_realtime_broadcasts_total 1")
	assert.Contains(t, rec.Body.String(), "workgroup_realtime_connections")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.NotificationsIngestedTotal.Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(a.NotificationsIngestedTotal), 0.0001)
	assert.InDelta(t, 0, testutil.ToFloat64(b.NotificationsIngestedTotal), 0.0001)
}
