package impl

import (
	"context"
	"testing"
	"time"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	mockRepo "workgroup/internal/mocks/repository"
	mockSvc "workgroup/internal/mocks/service"
	"workgroup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service        usecase.DeviceUsecase
	txManager      *mockRepo.MockTransactionManager
	groupRepo      *mockRepo.MockWorkingGroupRepository
	userRepo       *mockRepo.MockUserRepository
	deviceRepo     *mockRepo.MockDeviceRepository
	membershipRepo *mockRepo.MockMembershipRepository
	qrCode         *mockSvc.MockQRCodeService
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	fixtures := deviceServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		groupRepo:      mockRepo.NewMockWorkingGroupRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		deviceRepo:     mockRepo.NewMockDeviceRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		qrCode:         mockSvc.NewMockQRCodeService(t),
	}
	fixtures.service = NewDeviceService(DeviceServiceParams{
		TxManager:  fixtures.txManager,
		GroupRepo:  fixtures.groupRepo,
		UserRepo:   fixtures.userRepo,
		DeviceRepo: fixtures.deviceRepo,
		QRCode:     fixtures.qrCode,
		Logger:     newDiscardLogger(),
	})

	return fixtures
}

func TestDeviceService_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal entity.Principal
		setup     func(fx deviceServiceFixtures)
		wantErr   error
	}{
		{
			name:      "member is forbidden",
			principal: memberOf(9, 7),
			wantErr:   domainerrors.ErrForbidden,
		},
		{
			name:      "admin of another group",
			principal: adminOf(1, 8),
			wantErr:   domainerrors.ErrForbidden,
		},
		{
			name:      "duplicate uid",
			principal: adminOf(1, 7),
			setup: func(fx deviceServiceFixtures) {
				fx.groupRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.WorkingGroup{ID: 7, IsActive: true}, nil)
				fx.deviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateDevice)
			},
			wantErr: domainerrors.ErrDuplicateDevice,
		},
		{
			name:      "admin registers device",
			principal: adminOf(1, 7),
			setup: func(fx deviceServiceFixtures) {
				fx.groupRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.WorkingGroup{ID: 7, IsActive: true}, nil)
				fx.deviceRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Device")).
					Run(func(_ context.Context, d *entity.Device) { d.ID = 3 }).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestDeviceService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			device, err := fx.service.Create(context.Background(), tt.principal, &usecase.CreateDeviceInput{
				WorkingGroupID: 7,
				DeviceUID:      "ESP32-0003",
				Alias:          "caja",
			})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), device.ID)
			assert.True(t, device.IsActive)
		})
	}
}

func TestDeviceService_Get_OtherTenant(t *testing.T) {
	t.Parallel()
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)

	_, err := fx.service.Get(context.Background(), memberOf(9, 8), 3)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_AssignUser_EnsuresMembership(t *testing.T) {
	t.Parallel()
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7, IsActive: true}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(&entity.User{ID: 9, IsActive: true}, nil)
	expectTx(t, fx.txManager, fx.groupRepo, fx.userRepo, fx.membershipRepo, fx.deviceRepo)
	fx.membershipRepo.EXPECT().
		Ensure(ctx, mock.MatchedBy(func(m *entity.Membership) bool {
			return m.WorkingGroupID == 7 && m.UserID == 9 && m.Role == entity.RoleMember && m.IsActive
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().
		CreateAssignment(ctx, mock.MatchedBy(func(a *entity.DeviceUser) bool { return a.DeviceID == 3 && a.UserID == 9 })).
		Run(func(_ context.Context, a *entity.DeviceUser) { a.ID = 11 }).
		Return(nil)

	assignment, err := fx.service.AssignUser(ctx, adminOf(1, 7), 3, &usecase.AssignUserInput{UserID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(11), assignment.ID)
	assert.True(t, assignment.IsActive)
}

func TestDeviceService_AssignUser_Failures(t *testing.T) {
	t.Parallel()

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.AssignUser(context.Background(), adminOf(1, 7), 3, &usecase.AssignUserInput{UserID: 9})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("already assigned", func(t *testing.T) {
		t.Parallel()
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(&entity.User{ID: 9}, nil)
		expectTx(t, fx.txManager, fx.groupRepo, fx.userRepo, fx.membershipRepo, fx.deviceRepo)
		fx.membershipRepo.EXPECT().Ensure(mock.Anything, mock.Anything).Return(nil)
		fx.deviceRepo.EXPECT().CreateAssignment(mock.Anything, mock.Anything).Return(repository.ErrDuplicateAssignment)

		_, err := fx.service.AssignUser(context.Background(), adminOf(1, 7), 3, &usecase.AssignUserInput{UserID: 9})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateAssignment)
	})
}

func TestDeviceService_RemoveAssignment(t *testing.T) {
	t.Parallel()
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().FindAssignmentByID(mock.Anything, int64(11)).Return(&entity.DeviceUser{ID: 11, DeviceID: 3, UserID: 9}, nil)
	fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
	fx.deviceRepo.EXPECT().DeleteAssignment(mock.Anything, int64(11)).Return(nil)

	require.NoError(t, fx.service.RemoveAssignment(context.Background(), adminOf(1, 7), 11))
}

func TestDeviceService_Heartbeat(t *testing.T) {
	t.Parallel()
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7, IsActive: true}, nil)
	fx.deviceRepo.EXPECT().
		TouchHeartbeat(mock.Anything, int64(3), mock.AnythingOfType("time.Time"), "10.0.0.8").
		Return(nil)

	device, err := fx.service.Heartbeat(context.Background(), memberOf(9, 7), 3, "10.0.0.8")
	require.NoError(t, err)
	require.NotNil(t, device.LastSeen)
	assert.WithinDuration(t, time.Now(), *device.LastSeen, time.Minute)
	assert.Equal(t, "10.0.0.8", device.LastIPAddress)
}

func TestDeviceService_ProvisioningQR(t *testing.T) {
	t.Parallel()
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7, DeviceUID: "ESP32-0003"}, nil)
	fx.qrCode.EXPECT().GenerateProvisioningQR("ESP32-0003", int64(7)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ProvisioningQR(context.Background(), adminOf(1, 7), 3)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestDeviceService_UpdateAndDeactivate(t *testing.T) {
	t.Parallel()
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7, Alias: "old", IsActive: true}, nil).Once()
	fx.deviceRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(d *entity.Device) bool { return d.Alias == "caja 2" && d.IsActive })).
		Return(nil).Once()

	device, err := fx.service.Update(ctx, adminOf(1, 7), 3, &usecase.UpdateDeviceInput{Alias: ptr("caja 2")})
	require.NoError(t, err)
	assert.Equal(t, "caja 2", device.Alias)

	fx.deviceRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7, IsActive: true}, nil).Once()
	fx.deviceRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(d *entity.Device) bool { return !d.IsActive })).
		Return(nil).Once()

	require.NoError(t, fx.service.Deactivate(ctx, adminOf(1, 7), 3))
}
