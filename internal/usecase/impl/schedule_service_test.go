package impl

import (
	"context"
	"testing"
	"time"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	mockRepo "workgroup/internal/mocks/repository"
	"workgroup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleServiceFixtures struct {
	service        usecase.ScheduleUsecase
	scheduleRepo   *mockRepo.MockScheduleRepository
	deviceRepo     *mockRepo.MockDeviceRepository
	membershipRepo *mockRepo.MockMembershipRepository
}

func createTestScheduleService(t *testing.T) scheduleServiceFixtures {
	fixtures := scheduleServiceFixtures{
		scheduleRepo:   mockRepo.NewMockScheduleRepository(t),
		deviceRepo:     mockRepo.NewMockDeviceRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
	}
	fixtures.service = NewScheduleService(ScheduleServiceParams{
		ScheduleRepo:   fixtures.scheduleRepo,
		DeviceRepo:     fixtures.deviceRepo,
		MembershipRepo: fixtures.membershipRepo,
		Logger:         newDiscardLogger(),
	})

	return fixtures
}

func window(start time.Time, d time.Duration, allDay bool) usecase.TimeWindowInput {
	return usecase.TimeWindowInput{StartTime: start, EndTime: start.Add(d), AllDay: allDay}
}

func TestScheduleService_CreateGroupSchedule(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	t.Run("inverted window", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		_, err := fx.service.CreateGroupSchedule(context.Background(), adminOf(1, 7), 7, &usecase.GroupScheduleInput{
			TimeWindowInput: window(start, -time.Hour, false),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		_, err := fx.service.CreateGroupSchedule(context.Background(), memberOf(9, 7), 7, &usecase.GroupScheduleInput{
			TimeWindowInput: window(start, time.Hour, false),
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("all day window is widened", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		fx.scheduleRepo.EXPECT().CreateGroupSchedule(mock.Anything, mock.AnythingOfType("*entity.GroupSchedule")).Return(nil)

		schedule, err := fx.service.CreateGroupSchedule(context.Background(), adminOf(1, 7), 7, &usecase.GroupScheduleInput{
			TimeWindowInput: window(start, time.Hour, true),
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), schedule.StartTime)
		assert.Equal(t, time.Date(2024, 6, 3, 23, 59, 59, 0, time.UTC), schedule.EndTime)
		assert.True(t, schedule.IsActive)
		assert.Equal(t, int64(7), schedule.WorkingGroupID)
	})
}

func TestScheduleService_CreateIndividualSchedule(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		principal entity.Principal
		input     usecase.IndividualScheduleInput
		setup     func(fx scheduleServiceFixtures)
		wantErr   error
	}{
		{
			name:      "no target",
			principal: adminOf(1, 7),
			input:     usecase.IndividualScheduleInput{TimeWindowInput: window(start, time.Hour, false)},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "member schedules self",
			principal: memberOf(9, 7),
			input:     usecase.IndividualScheduleInput{UserID: ptr(int64(9)), TimeWindowInput: window(start, time.Hour, false)},
			setup: func(fx scheduleServiceFixtures) {
				fx.scheduleRepo.EXPECT().CreateIndividualSchedule(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:      "member schedules someone else",
			principal: memberOf(9, 7),
			input:     usecase.IndividualScheduleInput{UserID: ptr(int64(10)), TimeWindowInput: window(start, time.Hour, false)},
			wantErr:   domainerrors.ErrForbidden,
		},
		{
			name:      "member targets a device",
			principal: memberOf(9, 7),
			input:     usecase.IndividualScheduleInput{DeviceID: ptr(int64(3)), TimeWindowInput: window(start, time.Hour, false)},
			wantErr:   domainerrors.ErrForbidden,
		},
		{
			name:      "admin targets a device of another tenant",
			principal: adminOf(1, 7),
			input:     usecase.IndividualScheduleInput{DeviceID: ptr(int64(3)), TimeWindowInput: window(start, time.Hour, false)},
			setup: func(fx scheduleServiceFixtures) {
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 8}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:      "admin targets an association",
			principal: adminOf(1, 7),
			input:     usecase.IndividualScheduleInput{DeviceUserID: ptr(int64(11)), TimeWindowInput: window(start, time.Hour, false)},
			setup: func(fx scheduleServiceFixtures) {
				fx.deviceRepo.EXPECT().FindAssignmentByID(mock.Anything, int64(11)).Return(&entity.DeviceUser{ID: 11, DeviceID: 3, UserID: 9}, nil)
				fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
				fx.scheduleRepo.EXPECT().CreateIndividualSchedule(mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestScheduleService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			input := tt.input
			schedule, err := fx.service.CreateIndividualSchedule(context.Background(), tt.principal, &input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.True(t, schedule.HasTarget())
			assert.True(t, schedule.IsActive)
		})
	}
}

func TestScheduleService_GetIndividualSchedule(t *testing.T) {
	t.Parallel()

	t.Run("owner reads", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		fx.scheduleRepo.EXPECT().FindIndividualScheduleByID(mock.Anything, int64(5)).
			Return(&entity.IndividualSchedule{ID: 5, UserID: ptr(int64(9))}, nil)

		schedule, err := fx.service.GetIndividualSchedule(context.Background(), memberOf(9, 7), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), schedule.ID)
	})

	t.Run("other member is refused", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		fx.scheduleRepo.EXPECT().FindIndividualScheduleByID(mock.Anything, int64(5)).
			Return(&entity.IndividualSchedule{ID: 5, UserID: ptr(int64(9))}, nil)

		_, err := fx.service.GetIndividualSchedule(context.Background(), memberOf(10, 7), 5)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("tenant admin reads", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		fx.scheduleRepo.EXPECT().FindIndividualScheduleByID(mock.Anything, int64(5)).
			Return(&entity.IndividualSchedule{ID: 5, UserID: ptr(int64(9))}, nil)
		fx.membershipRepo.EXPECT().Find(mock.Anything, int64(7), int64(9)).
			Return(&entity.Membership{WorkingGroupID: 7, UserID: 9, IsActive: true}, nil)

		_, err := fx.service.GetIndividualSchedule(context.Background(), adminOf(1, 7), 5)
		require.NoError(t, err)
	})
}

func TestScheduleService_ListSchedulesByDevice_MemberSeesOwn(t *testing.T) {
	t.Parallel()
	fx := createTestScheduleService(t)

	fx.deviceRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.Device{ID: 3, WorkingGroupID: 7}, nil)
	fx.scheduleRepo.EXPECT().ListIndividualSchedulesByDevice(mock.Anything, int64(3)).Return([]*entity.IndividualSchedule{
		{ID: 1, DeviceID: ptr(int64(3))},
		{ID: 2, UserID: ptr(int64(9))},
		{ID: 3, DeviceUserID: ptr(int64(11))},
		{ID: 4, UserID: ptr(int64(10))},
	}, nil)
	fx.deviceRepo.EXPECT().FindAssignmentByID(mock.Anything, int64(11)).Return(&entity.DeviceUser{ID: 11, DeviceID: 3, UserID: 9}, nil)

	schedules, err := fx.service.ListSchedulesByDevice(context.Background(), memberOf(9, 7), 3)
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, int64(2), schedules[0].ID)
	assert.Equal(t, int64(3), schedules[1].ID)
}

func TestScheduleService_ListSchedulesByUser(t *testing.T) {
	t.Parallel()

	t.Run("self", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		fx.scheduleRepo.EXPECT().ListIndividualSchedulesByUser(mock.Anything, int64(9)).Return(nil, nil)

		_, err := fx.service.ListSchedulesByUser(context.Background(), memberOf(9, 7), 9)
		require.NoError(t, err)
	})

	t.Run("member reading another user", func(t *testing.T) {
		t.Parallel()
		fx := createTestScheduleService(t)

		_, err := fx.service.ListSchedulesByUser(context.Background(), memberOf(9, 7), 10)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
