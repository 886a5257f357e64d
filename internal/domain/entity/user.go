// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a principal that can authenticate against the service.
type User struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`         // Unique login name.
	HashedPassword  string     `json:"-"`                // bcrypt hash, never serialized.
	Role            Role       `json:"role"`             // admin or member.
	DNI             *string    `json:"dni,omitempty"`    // National identity document, unique when set.
	Name            string     `json:"name,omitempty"`   // Given name.
	PaternalSurname string     `json:"paternal_surname,omitempty"`
	MaternalSurname string     `json:"maternal_surname,omitempty"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	CountryCode     string     `json:"country_code,omitempty"`
	Avatar          string     `json:"avatar,omitempty"` // Avatar URL.
	IsVerified      bool       `json:"is_verified"`
	IsActive        bool       `json:"is_active"` // Inactive users cannot log in or stream.
	LastLogin       *time.Time `json:"last_login,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
