// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"workgroup/internal/domain/entity"
)

// ProfileInput carries the optional personal data of a user.
type ProfileInput struct {
	DNI             *string `json:"dni,omitempty" validate:"omitempty,min=6,max=20"`
	Name            string  `json:"name" validate:"max=100"`
	PaternalSurname string  `json:"paternal_surname" validate:"max=100"`
	MaternalSurname string  `json:"maternal_surname" validate:"max=100"`
	Email           string  `json:"email" validate:"omitempty,email,max=255"`
	Phone           string  `json:"phone" validate:"omitempty,max=30"`
	CountryCode     string  `json:"country_code" validate:"omitempty,max=5"`
	Avatar          string  `json:"avatar" validate:"omitempty,url,max=500"`
}

// RegisterOwnerInput founds a working group together with its admin.
type RegisterOwnerInput struct {
	GroupName        string `json:"group_name" validate:"required,min=2,max=100"`
	GroupDescription string `json:"group_description" validate:"max=1000"`
	Username         string `json:"username" validate:"required,min=3,max=50"`
	Password         string `json:"password" validate:"required,min=8,max=72"`
	ProfileInput
}

// CreateMemberInput adds a member to the admin's active working group.
type CreateMemberInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	// Optional; when set it must equal the admin's active group.
	WorkingGroupID *int64 `json:"working_group_id,omitempty" validate:"omitempty,gt=0"`
	ProfileInput
}

// LoginInput authenticates a user. WorkingGroupID selects the active tenant when the user belongs to several.
type LoginInput struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	WorkingGroupID *int64 `json:"working_group_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Password        *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	DNI             *string `json:"dni,omitempty" validate:"omitempty,min=6,max=20"`
	Name            *string `json:"name,omitempty" validate:"omitempty,max=100"`
	PaternalSurname *string `json:"paternal_surname,omitempty" validate:"omitempty,max=100"`
	MaternalSurname *string `json:"maternal_surname,omitempty" validate:"omitempty,max=100"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	CountryCode     *string `json:"country_code,omitempty" validate:"omitempty,max=5"`
	Avatar          *string `json:"avatar,omitempty" validate:"omitempty,url,max=500"`
}

// TokenOutput is returned by Login and RegisterOwner.
type TokenOutput struct {
	AccessToken  string               `json:"access_token"`
	TokenType    string               `json:"token_type"`
	ExpiresIn    int64                `json:"expires_in"` // Seconds.
	User         *entity.User         `json:"user"`
	WorkingGroup *entity.WorkingGroup `json:"working_group,omitempty"`
}

// AuthUsecase covers registration, login and user management.
type AuthUsecase interface {
	RegisterOwner(ctx context.Context, input *RegisterOwnerInput) (*TokenOutput, error)
	CreateMember(ctx context.Context, principal entity.Principal, input *CreateMemberInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	// Authenticate resolves an access token to a principal, re-checking that the user still exists and is active.
	Authenticate(ctx context.Context, token string) (entity.Principal, error)
	Me(ctx context.Context, principal entity.Principal) (*entity.User, error)
	MyMembers(ctx context.Context, principal entity.Principal) ([]*entity.User, error)
	UpdateUser(ctx context.Context, principal entity.Principal, userID int64, input *UpdateUserInput) (*entity.User, error)
	DeactivateUser(ctx context.Context, principal entity.Principal, userID int64) error
}
