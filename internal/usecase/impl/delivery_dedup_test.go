package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	"workgroup/internal/infra/realtime"
	mockRepo "workgroup/internal/mocks/repository"
	mockSvc "workgroup/internal/mocks/service"
	"workgroup/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryKey struct {
	notificationID, deviceID, userID int64
}

// memoryNotificationStore enforces the delivery triple the way the unique index does.
type memoryNotificationStore struct {
	mu            sync.Mutex
	notifications map[int64]*entity.Notification
	deliveries    map[deliveryKey]*entity.DeliveryRecord
	nextID        int64
}

func newMemoryNotificationStore(notifications ...*entity.Notification) *memoryNotificationStore {
	store := &memoryNotificationStore{
		notifications: make(map[int64]*entity.Notification),
		deliveries:    make(map[deliveryKey]*entity.DeliveryRecord),
	}
	for _, n := range notifications {
		store.notifications[n.ID] = n
	}

	return store
}

func (s *memoryNotificationStore) Create(_ context.Context, n *entity.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	n.ID = s.nextID
	n.CreatedAt = time.Now().UTC()
	s.notifications[n.ID] = n

	return nil
}

func (s *memoryNotificationStore) FindByID(_ context.Context, id int64) (*entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}
	clone := *n

	return &clone, nil
}

func (s *memoryNotificationStore) ListByGroup(context.Context, int64, int, int) ([]*entity.Notification, error) {
	return nil, nil
}

func (s *memoryNotificationStore) UpdateStatus(_ context.Context, id int64, status entity.NotificationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return repository.ErrNotificationNotFound
	}
	n.Status = status

	return nil
}

func (s *memoryNotificationStore) CreateDeliveryRecord(_ context.Context, record *entity.DeliveryRecord) error {
	key := deliveryKey{record.NotificationID, record.DeviceID, record.UserID}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.deliveries[key]; exists {
		return repository.ErrDuplicateDelivery
	}
	s.nextID++
	record.ID = s.nextID
	s.deliveries[key] = record

	return nil
}

func (s *memoryNotificationStore) ListDeliveryRecords(_ context.Context, notificationID int64) ([]*entity.DeliveryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.DeliveryRecord
	for key, record := range s.deliveries {
		if key.notificationID == notificationID {
			out = append(out, record)
		}
	}

	return out, nil
}

// recordingConn collects the frames the hub pushes.
type recordingConn struct {
	id     string
	mu     sync.Mutex
	frames [][]byte
}

func (c *recordingConn) ID() string { return c.id }

func (c *recordingConn) Send(_ context.Context, message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, message)

	return nil
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) events(t *testing.T) []service.Event {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]service.Event, 0, len(c.frames))
	for _, frame := range c.frames {
		var event service.Event
		require.NoError(t, json.Unmarshal(frame, &event))
		out = append(out, event)
	}

	return out
}

type deliveryHarness struct {
	service usecase.NotificationUsecase
	store   *memoryNotificationStore
	hub     *realtime.Hub
}

// newDeliveryHarness wires tenant 7 with device 3 and member 9 against the in-memory store and a real hub.
func newDeliveryHarness(t *testing.T) deliveryHarness {
	t.Helper()

	groupRepo := mockRepo.NewMockWorkingGroupRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	groupRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.WorkingGroup{ID: 7, IsActive: true}, nil).Maybe()
	deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7, IsActive: true}, nil).Maybe()
	userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(&entity.User{ID: 9, IsActive: true}, nil).Maybe()
	membershipRepo.EXPECT().Find(mock.Anything, int64(7), int64(9)).
		Return(&entity.Membership{WorkingGroupID: 7, UserID: 9, Role: entity.RoleMember, IsActive: true}, nil).Maybe()
	publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	store := newMemoryNotificationStore()
	hub := realtime.NewHub(time.Second, newDiscardLogger(), nil)

	return deliveryHarness{
		service: NewNotificationService(NotificationServiceParams{
			GroupRepo:        groupRepo,
			UserRepo:         userRepo,
			DeviceRepo:       deviceRepo,
			MembershipRepo:   membershipRepo,
			NotificationRepo: store,
			Broadcaster:      hub,
			Publisher:        publisher,
			Logger:           newDiscardLogger(),
		}),
		store: store,
		hub:   hub,
	}
}

func TestRegisterDelivery_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	h := newDeliveryHarness(t)
	h.store.notifications[42] = &entity.Notification{ID: 42, WorkingGroupID: 7, Status: entity.NotificationStatusReceived}
	h.store.nextID = 100

	const callers = 32
	var (
		wg         sync.WaitGroup
		created    atomic.Int32
		duplicates atomic.Int32
		unexpected atomic.Int32
		start      = make(chan struct{})
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := h.service.RegisterDelivery(context.Background(), memberOf(9, 7), &usecase.RegisterDeliveryInput{
				NotificationID: 42,
				DeviceID:       3,
				UserID:         9,
			})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domainerrors.ErrDuplicateDelivery):
				duplicates.Add(1)
			default:
				unexpected.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(callers-1), duplicates.Load())
	assert.Zero(t, unexpected.Load())

	records, err := h.store.ListDeliveryRecords(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNotificationFlow_TenantSevenEndToEnd(t *testing.T) {
	t.Parallel()
	h := newDeliveryHarness(t)
	ctx := context.Background()
	principal := memberOf(9, 7)

	inside := &recordingConn{id: "tenant-7"}
	outside := &recordingConn{id: "tenant-8"}
	require.NoError(t, h.hub.Connect(inside, 7))
	require.NoError(t, h.hub.Connect(outside, 8))

	n, err := h.service.SubmitEvent(ctx, principal, &usecase.SubmitEventInput{
		RawNotification:       "Yape! Ana te envió S/ 30.00",
		Name:                  "Ana",
		Amount:                30,
		SecurityCode:          "987",
		NotificationTimestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), n.WorkingGroupID)

	record, err := h.service.RegisterDelivery(ctx, principal, &usecase.RegisterDeliveryInput{
		NotificationID: n.ID,
		DeviceID:       3,
		UserID:         9,
	})
	require.NoError(t, err)
	assert.True(t, record.IsActive)
	assert.False(t, record.SentAt.IsZero())

	_, err = h.service.RegisterDelivery(ctx, principal, &usecase.RegisterDeliveryInput{
		NotificationID: n.ID,
		DeviceID:       3,
		UserID:         9,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateDelivery)

	updated, err := h.service.UpdateStatus(ctx, principal, n.ID, entity.NotificationStatusSent)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, updated.Status)

	events := inside.events(t)
	require.Len(t, events, 3)
	assert.Equal(t, service.EventNotificationCreated, events[0].Type)
	assert.Equal(t, service.EventDeliveryRegistered, events[1].Type)
	assert.Equal(t, service.EventNotificationStatusChanged, events[2].Type)
	for _, e := range events {
		assert.Equal(t, int64(7), e.WorkingGroupID)
	}
	assert.Empty(t, outside.events(t))
}
