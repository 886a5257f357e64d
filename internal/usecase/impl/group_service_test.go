package impl

import (
	"context"
	"testing"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	mockRepo "workgroup/internal/mocks/repository"
	"workgroup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type groupServiceFixtures struct {
	service        usecase.GroupUsecase
	txManager      *mockRepo.MockTransactionManager
	groupRepo      *mockRepo.MockWorkingGroupRepository
	membershipRepo *mockRepo.MockMembershipRepository
}

func createTestGroupService(t *testing.T) groupServiceFixtures {
	fixtures := groupServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		groupRepo:      mockRepo.NewMockWorkingGroupRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
	}
	fixtures.service = NewGroupService(GroupServiceParams{
		TxManager:      fixtures.txManager,
		GroupRepo:      fixtures.groupRepo,
		MembershipRepo: fixtures.membershipRepo,
		Logger:         newDiscardLogger(),
	})

	return fixtures
}

func TestGroupService_Create(t *testing.T) {
	t.Parallel()

	t.Run("member cannot create groups", func(t *testing.T) {
		t.Parallel()
		fx := createTestGroupService(t)

		_, err := fx.service.Create(context.Background(), memberOf(9, 7), &usecase.CreateGroupInput{Name: "nuevo"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin creates a group and its membership", func(t *testing.T) {
		t.Parallel()
		fx := createTestGroupService(t)
		ctx := context.Background()

		expectTx(t, fx.txManager, fx.groupRepo, nil, fx.membershipRepo, nil)
		fx.groupRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.WorkingGroup")).
			Run(func(_ context.Context, g *entity.WorkingGroup) { g.ID = 12 }).
			Return(nil)
		fx.membershipRepo.EXPECT().
			Ensure(ctx, mock.MatchedBy(func(m *entity.Membership) bool {
				return m.WorkingGroupID == 12 && m.UserID == 1 && m.Role == entity.RoleAdmin
			})).
			Return(nil)

		group, err := fx.service.Create(ctx, adminOf(1, 7), &usecase.CreateGroupInput{Name: "nuevo"})
		require.NoError(t, err)
		assert.Equal(t, int64(12), group.ID)
		assert.Equal(t, int64(1), group.CreatorID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		fx := createTestGroupService(t)

		expectTx(t, fx.txManager, fx.groupRepo, nil, fx.membershipRepo, nil)
		fx.groupRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateGroup)

		_, err := fx.service.Create(context.Background(), adminOf(1, 7), &usecase.CreateGroupInput{Name: "nuevo"})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateGroup)
	})
}

func TestGroupService_Get(t *testing.T) {
	t.Parallel()

	t.Run("non member", func(t *testing.T) {
		t.Parallel()
		fx := createTestGroupService(t)

		fx.groupRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.WorkingGroup{ID: 7, IsActive: true}, nil)
		fx.membershipRepo.EXPECT().Find(mock.Anything, int64(7), int64(9)).Return(nil, repository.ErrMembershipNotFound)

		_, err := fx.service.Get(context.Background(), memberOf(9, 8), 7)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing group", func(t *testing.T) {
		t.Parallel()
		fx := createTestGroupService(t)

		fx.groupRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, repository.ErrGroupNotFound)

		_, err := fx.service.Get(context.Background(), memberOf(9, 7), 7)
		assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
	})
}

func TestGroupService_UpdateAndDeactivate_CreatorOnly(t *testing.T) {
	t.Parallel()
	fx := createTestGroupService(t)
	ctx := context.Background()
	group := &entity.WorkingGroup{ID: 7, Name: "siete", CreatorID: 1, IsActive: true}

	fx.groupRepo.EXPECT().FindByID(ctx, int64(7)).Return(group, nil)

	_, err := fx.service.Update(ctx, adminOf(2, 7), 7, &usecase.UpdateGroupInput{Name: ptr("otro")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	fx.groupRepo.EXPECT().Update(ctx, mock.MatchedBy(func(g *entity.WorkingGroup) bool { return g.Name == "otro" })).Return(nil).Once()
	updated, err := fx.service.Update(ctx, adminOf(1, 7), 7, &usecase.UpdateGroupInput{Name: ptr("otro")})
	require.NoError(t, err)
	assert.Equal(t, "otro", updated.Name)

	fx.groupRepo.EXPECT().Update(ctx, mock.MatchedBy(func(g *entity.WorkingGroup) bool { return !g.IsActive })).Return(nil).Once()
	require.NoError(t, fx.service.Deactivate(ctx, adminOf(1, 7), 7))
}
