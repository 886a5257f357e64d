package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	"workgroup/internal/usecase"

	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	groupRepo      repository.WorkingGroupRepository
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
	now            func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	GroupRepo      repository.WorkingGroupRepository
	UserRepo       repository.UserRepository
	MembershipRepo repository.MembershipRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		groupRepo:      params.GroupRepo,
		userRepo:       params.UserRepo,
		membershipRepo: params.MembershipRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterOwner founds a working group and its admin in a single transaction.
func (srv *authService) RegisterOwner(ctx context.Context, input *usecase.RegisterOwnerInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Registering owner", slog.String("username", input.Username), slog.String("group", input.GroupName))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "failed to hash password")
	}

	loginAt := srv.now().UTC()
	user := newUser(input.Username, hashed, entity.RoleAdmin, &input.ProfileInput)
	user.LastLogin = &loginAt
	group := &entity.WorkingGroup{
		Name:        input.GroupName,
		Description: input.GroupDescription,
		IsActive:    true,
	}
	membership := &entity.Membership{Role: entity.RoleAdmin, IsActive: true}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.WorkingGroupRepo().Create(ctx, group); err != nil {
			return errors.Wrap(err, "failed to create working group")
		}
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create admin user")
		}

		membership.WorkingGroupID = group.ID
		membership.UserID = user.ID
		if err := repoFactory.MembershipRepo().Ensure(ctx, membership); err != nil {
			return errors.Wrap(err, "failed to create admin membership")
		}

		group.CreatorID = user.ID
		if err := repoFactory.WorkingGroupRepo().Update(ctx, group); err != nil {
			return errors.Wrap(err, "failed to set group creator")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Owner registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, translate(err, "failed to register owner")
	}

	return srv.issueToken(ctx, user, group, membership.Role)
}

// CreateMember adds a user to the admin's active working group.
func (srv *authService) CreateMember(ctx context.Context, principal entity.Principal, input *usecase.CreateMemberInput) (*entity.User, error) {
	tenantID, err := activeTenant(principal)
	if err != nil {
		return nil, err
	}
	if input.WorkingGroupID != nil && *input.WorkingGroupID != tenantID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "members can only be added to the active working group")
	}
	if err := requireTenantAdmin(principal, tenantID); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "failed to hash password")
	}

	user := newUser(input.Username, hashed, entity.RoleMember, &input.ProfileInput)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create member")
		}

		return errors.Wrap(repoFactory.MembershipRepo().Ensure(ctx, &entity.Membership{
			WorkingGroupID: tenantID,
			UserID:         user.ID,
			Role:           entity.RoleMember,
			IsActive:       true,
		}), "failed to create membership")
	})
	if err != nil {
		return nil, translate(err, "failed to create member")
	}

	srv.log(ctx).Info("Member created", slog.Int64("userID", user.ID), slog.Int64("groupID", tenantID))

	return user, nil
}

// Login verifies credentials and issues a token bound to one active working group.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
	}
	if err != nil {
		return nil, translate(err, "failed to find user")
	}
	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user is inactive")
	}

	group, role, err := srv.selectTenant(ctx, user, input.WorkingGroupID)
	if err != nil {
		return nil, err
	}

	loginAt := srv.now().UTC()
	user.LastLogin = &loginAt
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translate(err, "failed to record last login")
	}

	return srv.issueToken(ctx, user, group, role)
}

// selectTenant picks the requested group when the user belongs to it, otherwise the oldest active membership.
// A user without any membership gets a token with no tenant.
func (srv *authService) selectTenant(ctx context.Context, user *entity.User, requested *int64) (*entity.WorkingGroup, entity.Role, error) {
	memberships, err := srv.membershipRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, user.Role, translate(err, "failed to list memberships")
	}

	for _, m := range memberships {
		if requested != nil && m.WorkingGroupID != *requested {
			continue
		}

		group, err := srv.groupRepo.FindByID(ctx, m.WorkingGroupID)
		if err != nil {
			return nil, user.Role, translate(err, "failed to find working group")
		}
		if !group.IsActive {
			continue
		}

		return group, m.Role, nil
	}

	if requested != nil {
		return nil, user.Role, errors.Wrap(domainerrors.ErrForbidden, "user is not a member of the requested working group")
	}

	return nil, user.Role, nil
}

func (srv *authService) issueToken(ctx context.Context, user *entity.User, group *entity.WorkingGroup, role entity.Role) (*usecase.TokenOutput, error) {
	claims := service.Claims{UserID: user.ID, Role: role.String()}
	claims.Subject = user.Username
	if group != nil {
		groupID := group.ID
		claims.WorkingGroupID = &groupID
		claims.GroupName = group.Name
	}

	token, err := srv.tokenService.GenerateAccessToken(claims)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Access token issued", slog.Int64("userID", user.ID), slog.Any("groupID", claims.WorkingGroupID))

	return &usecase.TokenOutput{
		AccessToken:  token,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(srv.tokenService.AccessTokenTTL().Seconds()),
		User:         user,
		WorkingGroup: group,
	}, nil
}

// Authenticate resolves a bearer token to a principal.
func (srv *authService) Authenticate(ctx context.Context, token string) (entity.Principal, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return entity.Principal{}, errors.Wrap(errors.Join(domainerrors.ErrInvalidToken, err), "token rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return entity.Principal{}, errors.Wrap(domainerrors.ErrInvalidToken, "token subject no longer exists")
	}
	if err != nil {
		return entity.Principal{}, translate(err, "failed to load token subject")
	}
	if !user.IsActive {
		return entity.Principal{}, errors.Wrap(domainerrors.ErrInvalidToken, "token subject is inactive")
	}

	principal := entity.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      entity.Role(claims.Role),
		GroupName: claims.GroupName,
	}
	if claims.WorkingGroupID == nil {
		return principal, nil
	}

	membership, err := srv.membershipRepo.Find(ctx, *claims.WorkingGroupID, user.ID)
	if errors.Is(err, repository.ErrMembershipNotFound) {
		return entity.Principal{}, errors.Wrap(domainerrors.ErrInvalidToken, "membership no longer exists")
	}
	if err != nil {
		return entity.Principal{}, translate(err, "failed to load membership")
	}
	if !membership.IsActive {
		return entity.Principal{}, errors.Wrap(domainerrors.ErrInvalidToken, "membership is inactive")
	}

	groupID := membership.WorkingGroupID
	principal.WorkingGroupID = &groupID
	principal.Role = membership.Role

	return principal, nil
}

// Me returns the profile of the caller.
func (srv *authService) Me(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, translate(err, "failed to find current user")
	}

	return user, nil
}

// MyMembers lists the users in the admin's active working group.
func (srv *authService) MyMembers(ctx context.Context, principal entity.Principal) ([]*entity.User, error) {
	tenantID, err := activeTenant(principal)
	if err != nil {
		return nil, err
	}
	if err := requireTenantAdmin(principal, tenantID); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListByGroup(ctx, tenantID)
	if err != nil {
		return nil, translate(err, "failed to list members")
	}

	return users, nil
}

// UpdateUser applies a partial update. Callers may update themselves, admins may update members of their tenant.
func (srv *authService) UpdateUser(ctx context.Context, principal entity.Principal, userID int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := srv.authorizeUserAdmin(ctx, principal, userID, true); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "failed to hash password")
		}
		user.HashedPassword = hashed
	}
	applyProfileUpdate(user, input)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translate(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", userID), slog.Int64("by", principal.UserID))

	return user, nil
}

// DeactivateUser soft-deletes a member of the admin's tenant.
func (srv *authService) DeactivateUser(ctx context.Context, principal entity.Principal, userID int64) error {
	if principal.UserID == userID {
		return domainerrors.ErrValidationFailed.WithDetails("admins cannot deactivate themselves")
	}
	if err := srv.authorizeUserAdmin(ctx, principal, userID, false); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return translate(err, "failed to find user")
	}
	if !user.IsActive {
		return nil
	}

	user.IsActive = false
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return translate(err, "failed to deactivate user")
	}

	srv.log(ctx).Info("User deactivated", slog.Int64("userID", userID), slog.Int64("by", principal.UserID))

	return nil
}

// authorizeUserAdmin allows the user themselves (when allowSelf) or an admin whose active tenant contains the target.
func (srv *authService) authorizeUserAdmin(ctx context.Context, principal entity.Principal, userID int64, allowSelf bool) error {
	if allowSelf && principal.UserID == userID {
		return nil
	}

	tenantID, err := activeTenant(principal)
	if err != nil {
		return err
	}
	if err := requireTenantAdmin(principal, tenantID); err != nil {
		return err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return translate(err, "failed to find user")
	}

	membership, err := srv.membershipRepo.Find(ctx, tenantID, userID)
	if err != nil {
		return translate(err, "target user is outside the working group")
	}
	if !membership.IsActive {
		return errors.Wrap(domainerrors.ErrForbidden, "target user is not an active member")
	}

	return nil
}

func newUser(username, hashedPassword string, role entity.Role, profile *usecase.ProfileInput) *entity.User {
	return &entity.User{
		Username:        username,
		HashedPassword:  hashedPassword,
		Role:            role,
		DNI:             profile.DNI,
		Name:            profile.Name,
		PaternalSurname: profile.PaternalSurname,
		MaternalSurname: profile.MaternalSurname,
		Email:           profile.Email,
		Phone:           profile.Phone,
		CountryCode:     profile.CountryCode,
		Avatar:          profile.Avatar,
		IsActive:        true,
	}
}

func applyProfileUpdate(user *entity.User, input *usecase.UpdateUserInput) {
	if input.DNI != nil {
		user.DNI = input.DNI
	}
	setIfPresent(&user.Name, input.Name)
	setIfPresent(&user.PaternalSurname, input.PaternalSurname)
	setIfPresent(&user.MaternalSurname, input.MaternalSurname)
	setIfPresent(&user.Email, input.Email)
	setIfPresent(&user.Phone, input.Phone)
	setIfPresent(&user.CountryCode, input.CountryCode)
	setIfPresent(&user.Avatar, input.Avatar)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
