// Package entity contains the core business objects of the project.
package entity

import "time"

// Membership is the authoritative link between a user and a working group.
// Exactly one row exists per (working group, user).
type Membership struct {
	ID             int64     `json:"id"`
	WorkingGroupID int64     `json:"working_group_id"`
	UserID         int64     `json:"user_id"`
	Role           Role      `json:"role"` // Role of the user inside this group.
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
