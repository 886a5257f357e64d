package impl

import (
	"context"
	"log/slog"

	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
	"workgroup/internal/usecase"

	"go.uber.org/fx"
)

type groupService struct {
	txManager      repository.TransactionManager
	groupRepo      repository.WorkingGroupRepository
	membershipRepo repository.MembershipRepository
	logger         *slog.Logger
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	GroupRepo      repository.WorkingGroupRepository
	MembershipRepo repository.MembershipRepository
	Logger         *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager:      params.TxManager,
		groupRepo:      params.GroupRepo,
		membershipRepo: params.MembershipRepo,
		logger:         params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create founds a new group owned by the calling admin. The caller must log in again to act inside it.
func (srv *groupService) Create(ctx context.Context, principal entity.Principal, input *usecase.CreateGroupInput) (*entity.WorkingGroup, error) {
	if principal.Role != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins can create working groups")
	}

	group := &entity.WorkingGroup{
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   principal.UserID,
		IsActive:    true,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.WorkingGroupRepo().Create(ctx, group); err != nil {
			return errors.Wrap(err, "failed to create working group")
		}

		return errors.Wrap(repoFactory.MembershipRepo().Ensure(ctx, &entity.Membership{
			WorkingGroupID: group.ID,
			UserID:         principal.UserID,
			Role:           entity.RoleAdmin,
			IsActive:       true,
		}), "failed to create admin membership")
	})
	if err != nil {
		return nil, translate(err, "failed to create working group")
	}

	srv.log(ctx).Info("Working group created", slog.Int64("groupID", group.ID), slog.Int64("creatorID", principal.UserID))

	return group, nil
}

// Get returns a group the caller is an active member of.
func (srv *groupService) Get(ctx context.Context, principal entity.Principal, groupID int64) (*entity.WorkingGroup, error) {
	group, err := srv.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, translate(err, "failed to find working group")
	}

	membership, err := srv.membershipRepo.Find(ctx, groupID, principal.UserID)
	if err != nil {
		return nil, translate(err, "caller is not a member of the working group")
	}
	if !membership.IsActive {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "membership is inactive")
	}

	return group, nil
}

// MyGroups lists the groups in which the caller holds an active membership.
func (srv *groupService) MyGroups(ctx context.Context, principal entity.Principal) ([]*entity.WorkingGroup, error) {
	groups, err := srv.groupRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, translate(err, "failed to list working groups")
	}

	return groups, nil
}

// Update changes the name or description. Only the creator may update.
func (srv *groupService) Update(ctx context.Context, principal entity.Principal, groupID int64, input *usecase.UpdateGroupInput) (*entity.WorkingGroup, error) {
	group, err := srv.findOwned(ctx, principal, groupID)
	if err != nil {
		return nil, err
	}

	setIfPresent(&group.Name, input.Name)
	setIfPresent(&group.Description, input.Description)
	if err := srv.groupRepo.Update(ctx, group); err != nil {
		return nil, translate(err, "failed to update working group")
	}

	return group, nil
}

// Deactivate soft-deletes the group. Only the creator may deactivate.
func (srv *groupService) Deactivate(ctx context.Context, principal entity.Principal, groupID int64) error {
	group, err := srv.findOwned(ctx, principal, groupID)
	if err != nil {
		return err
	}
	if !group.IsActive {
		return nil
	}

	group.IsActive = false
	if err := srv.groupRepo.Update(ctx, group); err != nil {
		return translate(err, "failed to deactivate working group")
	}

	srv.log(ctx).Info("Working group deactivated", slog.Int64("groupID", groupID), slog.Int64("by", principal.UserID))

	return nil
}

func (srv *groupService) findOwned(ctx context.Context, principal entity.Principal, groupID int64) (*entity.WorkingGroup, error) {
	group, err := srv.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, translate(err, "failed to find working group")
	}
	if group.CreatorID != principal.UserID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the creator can modify the working group")
	}

	return group, nil
}
