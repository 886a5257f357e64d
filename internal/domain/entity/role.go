// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of principal a user is inside a working group.
type Role string

const (
	// RoleAdmin is the owner of a working group.
	RoleAdmin Role = "admin"
	// RoleMember is a regular member of a working group.
	RoleMember Role = "member"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}
