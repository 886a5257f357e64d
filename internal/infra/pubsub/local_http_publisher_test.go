package pubsub

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workgroup/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	event := &service.NotificationEvent{
		RequestID:      "req-1",
		Event:          service.EventNotificationCreated,
		NotificationID: 42,
		WorkingGroupID: 7,
		Name:           "john",
		Amount:         10.5,
		Status:         "received",
		OccurredAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "7", got.Message.Attributes["working_group_id"])
	assert.Equal(t, "42", got.Message.Attributes["notification_id"])
	assert.Equal(t, localSubscription, got.Subscription)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: 1}))
	assert.NoError(t, publisher.Close())
}
