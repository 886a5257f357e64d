package impl

import (
	"context"
	"testing"
	"time"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	mockRepo "workgroup/internal/mocks/repository"
	mockSvc "workgroup/internal/mocks/service"
	"workgroup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	groupRepo        *mockRepo.MockWorkingGroupRepository
	userRepo         *mockRepo.MockUserRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	membershipRepo   *mockRepo.MockMembershipRepository
	notificationRepo *mockRepo.MockNotificationRepository
	broadcaster      *mockSvc.MockBroadcaster
	publisher        *mockSvc.MockEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fixtures := notificationServiceFixtures{
		groupRepo:        mockRepo.NewMockWorkingGroupRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		membershipRepo:   mockRepo.NewMockMembershipRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		broadcaster:      mockSvc.NewMockBroadcaster(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	fixtures.service = NewNotificationService(NotificationServiceParams{
		GroupRepo:        fixtures.groupRepo,
		UserRepo:         fixtures.userRepo,
		DeviceRepo:       fixtures.deviceRepo,
		MembershipRepo:   fixtures.membershipRepo,
		NotificationRepo: fixtures.notificationRepo,
		Broadcaster:      fixtures.broadcaster,
		Publisher:        fixtures.publisher,
		Logger:           newDiscardLogger(),
	})

	return fixtures
}

func TestNotificationService_SubmitEvent_Success(t *testing.T) {
	t.Parallel()
	fx := createTestNotificationService(t)
	ctx := context.Background()
	principal := memberOf(9, 7)
	observed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("PET", -5*3600))

	fx.groupRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.WorkingGroup{ID: 7, IsActive: true}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) {
			n.ID = 42
			n.CreatedAt = time.Now().UTC()
		}).
		Return(nil)
	fx.broadcaster.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e service.Event) bool {
			return e.Type == service.EventNotificationCreated && e.WorkingGroupID == 7
		})).
		Return(service.BroadcastResult{Delivered: 2}, nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.NotificationID == 42 && e.WorkingGroupID == 7 && e.Event == service.EventNotificationCreated
		})).
		Return(nil)

	n, err := fx.service.SubmitEvent(ctx, principal, &usecase.SubmitEventInput{
		RawNotification:       "Yape! Juan Perez te envió S/ 12.50",
		Name:                  "Juan Perez",
		Amount:                12.5,
		SecurityCode:          "123",
		NotificationTimestamp: observed,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.ID)
	assert.Equal(t, int64(7), n.WorkingGroupID)
	assert.Equal(t, entity.NotificationStatusReceived, n.Status)
	assert.Equal(t, time.UTC, n.NotificationTimestamp.Location())
}

func TestNotificationService_SubmitEvent_FanOutFailuresDoNotFail(t *testing.T) {
	t.Parallel()
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.groupRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.WorkingGroup{ID: 7, IsActive: true}, nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return(service.BroadcastResult{}, errors.New("encode failed"))
	fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	n, err := fx.service.SubmitEvent(ctx, memberOf(9, 7), &usecase.SubmitEventInput{
		RawNotification:       "raw",
		Name:                  "n",
		NotificationTimestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestNotificationService_SubmitEvent_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal entity.Principal
		amount    float64
		setup     func(fx notificationServiceFixtures)
		wantErr   error
	}{
		{
			name:      "no active tenant",
			principal: entity.Principal{UserID: 9, Role: entity.RoleMember},
			wantErr:   domainerrors.ErrNoActiveGroup,
		},
		{
			name:      "negative amount",
			principal: memberOf(9, 7),
			amount:    -1,
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "missing group",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.groupRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, repository.ErrGroupNotFound)
			},
			wantErr: domainerrors.ErrGroupNotFound,
		},
		{
			name:      "inactive group",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.groupRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.WorkingGroup{ID: 7}, nil)
			},
			wantErr: domainerrors.ErrGroupInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestNotificationService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.SubmitEvent(context.Background(), tt.principal, &usecase.SubmitEventInput{
				RawNotification:       "raw",
				Name:                  "n",
				Amount:                tt.amount,
				NotificationTimestamp: time.Now(),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNotificationService_UpdateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    entity.NotificationStatus
		next       entity.NotificationStatus
		principal  entity.Principal
		wantWrite  bool
		wantErr    error
		wantStatus entity.NotificationStatus
	}{
		{
			name:       "received to sent",
			current:    entity.NotificationStatusReceived,
			next:       entity.NotificationStatusSent,
			principal:  memberOf(9, 7),
			wantWrite:  true,
			wantStatus: entity.NotificationStatusSent,
		},
		{
			name:       "same status is a no-op",
			current:    entity.NotificationStatusSent,
			next:       entity.NotificationStatusSent,
			principal:  memberOf(9, 7),
			wantStatus: entity.NotificationStatusSent,
		},
		{
			name:       "sent back to received",
			current:    entity.NotificationStatusSent,
			next:       entity.NotificationStatusReceived,
			principal:  memberOf(9, 7),
			wantWrite:  true,
			wantStatus: entity.NotificationStatusReceived,
		},
		{
			name:      "unknown status",
			current:   entity.NotificationStatusReceived,
			next:      "archived",
			principal: memberOf(9, 7),
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "other tenant",
			current:   entity.NotificationStatusReceived,
			next:      entity.NotificationStatusSent,
			principal: memberOf(9, 8),
			wantErr:   domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestNotificationService(t)
			ctx := context.Background()

			fx.notificationRepo.EXPECT().FindByID(ctx, int64(42)).
				Return(&entity.Notification{ID: 42, WorkingGroupID: 7, Status: tt.current}, nil)
			if tt.wantWrite {
				fx.notificationRepo.EXPECT().UpdateStatus(ctx, int64(42), tt.next).Return(nil)
				fx.broadcaster.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e service.Event) bool {
						return e.Type == service.EventNotificationStatusChanged
					})).
					Return(service.BroadcastResult{}, nil)
				fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)
			}

			n, err := fx.service.UpdateStatus(ctx, tt.principal, 42, tt.next)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, n.Status)
		})
	}
}

func TestNotificationService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()
	fx := createTestNotificationService(t)

	fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(nil, repository.ErrNotificationNotFound)

	_, err := fx.service.UpdateStatus(context.Background(), memberOf(9, 7), 42, entity.NotificationStatusSent)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_RegisterDelivery_Rejections(t *testing.T) {
	t.Parallel()

	notification := &entity.Notification{ID: 42, WorkingGroupID: 7}

	tests := []struct {
		name      string
		principal entity.Principal
		setup     func(fx notificationServiceFixtures)
		wantErr   error
	}{
		{
			name:      "notification missing",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(nil, repository.ErrNotificationNotFound)
			},
			wantErr: domainerrors.ErrNotificationNotFound,
		},
		{
			name:      "device missing",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(notification, nil)
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name:      "user missing",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(notification, nil)
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name:      "caller in another tenant",
			principal: memberOf(9, 8),
			setup: func(fx notificationServiceFixtures) {
				fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(notification, nil)
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(&entity.User{ID: 9, IsActive: true}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:      "device in another tenant",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(notification, nil)
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 8}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(&entity.User{ID: 9, IsActive: true}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:      "user not a member",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(notification, nil)
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(&entity.User{ID: 9, IsActive: true}, nil)
				fx.membershipRepo.EXPECT().Find(mock.Anything, int64(7), int64(9)).Return(nil, repository.ErrMembershipNotFound)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:      "duplicate triple",
			principal: memberOf(9, 7),
			setup: func(fx notificationServiceFixtures) {
				fx.notificationRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(notification, nil)
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(&entity.User{ID: 9, IsActive: true}, nil)
				fx.membershipRepo.EXPECT().Find(mock.Anything, int64(7), int64(9)).
					Return(&entity.Membership{WorkingGroupID: 7, UserID: 9, IsActive: true}, nil)
				fx.notificationRepo.EXPECT().CreateDeliveryRecord(mock.Anything, mock.Anything).Return(repository.ErrDuplicateDelivery)
			},
			wantErr: domainerrors.ErrDuplicateDelivery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestNotificationService(t)
			tt.setup(fx)

			_, err := fx.service.RegisterDelivery(context.Background(), tt.principal, &usecase.RegisterDeliveryInput{
				NotificationID: 42,
				DeviceID:       3,
				UserID:         9,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNotificationService_ListForGroup_Paging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      usecase.Page
		wantSkip  int
		wantLimit int
	}{
		{name: "defaults", page: usecase.Page{}, wantSkip: 0, wantLimit: 100},
		{name: "explicit", page: usecase.Page{Skip: 20, Limit: 10}, wantSkip: 20, wantLimit: 10},
		{name: "capped", page: usecase.Page{Limit: 10000}, wantSkip: 0, wantLimit: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestNotificationService(t)

			fx.notificationRepo.EXPECT().ListByGroup(mock.Anything, int64(7), tt.wantSkip, tt.wantLimit).
				Return([]*entity.Notification{{ID: 1}}, nil)

			list, err := fx.service.ListForGroup(context.Background(), memberOf(9, 7), 7, tt.page)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})
	}
}

func TestNotificationService_ListForGroup_Rejections(t *testing.T) {
	t.Parallel()
	fx := createTestNotificationService(t)

	_, err := fx.service.ListForGroup(context.Background(), memberOf(9, 8), 7, usecase.Page{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ListForGroup(context.Background(), memberOf(9, 7), 7, usecase.Page{Skip: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_ListDeliveries(t *testing.T) {
	t.Parallel()
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Notification{ID: 42, WorkingGroupID: 7}, nil)
	fx.notificationRepo.EXPECT().ListDeliveryRecords(ctx, int64(42)).
		Return([]*entity.DeliveryRecord{{ID: 1, NotificationID: 42, DeviceID: 3, UserID: 9}}, nil)

	records, err := fx.service.ListDeliveries(ctx, memberOf(9, 7), 42)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(3), records[0].DeviceID)
}
