// Package entity contains the core business objects of the project.
package entity

import "time"

// WorkingGroup is a tenant: an isolated organization owning devices, schedules and a notification stream.
type WorkingGroup struct {
	ID          int64     `json:"id"`          // Primary key.
	Name        string    `json:"name"`        // Unique display name.
	Description string    `json:"description"` // Free text description.
	CreatorID   int64     `json:"creator_id"`  // The admin who founded the group.
	IsActive    bool      `json:"is_active"`   // False once the group has been deactivated.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of creation.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
