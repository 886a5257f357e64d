package postgres

import (
	"context"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
	"workgroup/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
var userDuplicates = map[string]error{
	usernameIndex: repository.ErrDuplicateUser,
	dniIndex:      repository.ErrDuplicateDNI,
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if mapped, ok := uniqueViolation(err, userDuplicates); ok {
			return mapped
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ListByGroup(ctx context.Context, groupID int64) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.user_id = users.id").
		Where("memberships.working_group_id = ? AND memberships.is_active = ?", groupID, true).
		Order("users.id ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by group")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Update writes every mutable column, including zero values.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":         user.Username,
			"hashed_password":  user.HashedPassword,
			"role":             user.Role.String(),
			"dni":              user.DNI,
			"name":             user.Name,
			"paternal_surname": user.PaternalSurname,
			"maternal_surname": user.MaternalSurname,
			"email":            user.Email,
			"phone":            user.Phone,
			"country_code":     user.CountryCode,
			"avatar":           user.Avatar,
			"is_verified":      user.IsVerified,
			"is_active":        user.IsActive,
			"last_login":       user.LastLogin,
		})
	if result.Error != nil {
		if mapped, ok := uniqueViolation(result.Error, userDuplicates); ok {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Username:        data.Username,
		HashedPassword:  data.HashedPassword,
		Role:            entity.Role(data.Role),
		DNI:             data.DNI,
		Name:            data.Name,
		PaternalSurname: data.PaternalSurname,
		MaternalSurname: data.MaternalSurname,
		Email:           data.Email,
		Phone:           data.Phone,
		CountryCode:     data.CountryCode,
		Avatar:          data.Avatar,
		IsVerified:      data.IsVerified,
		IsActive:        data.IsActive,
		LastLogin:       data.LastLogin,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Username:        data.Username,
		HashedPassword:  data.HashedPassword,
		Role:            data.Role.String(),
		DNI:             data.DNI,
		Name:            data.Name,
		PaternalSurname: data.PaternalSurname,
		MaternalSurname: data.MaternalSurname,
		Email:           data.Email,
		Phone:           data.Phone,
		CountryCode:     data.CountryCode,
		Avatar:          data.Avatar,
		IsVerified:      data.IsVerified,
		IsActive:        data.IsActive,
		LastLogin:       data.LastLogin,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
