// Package entity contains the core business objects of the project.
package entity

import "time"

// Device is an IoT unit registered to exactly one working group.
type Device struct {
	ID             int64      `json:"id"`
	WorkingGroupID int64      `json:"working_group_id"` // Owning tenant.
	DeviceUID      string     `json:"device_uid"`       // Unique external identifier burned into the device.
	Alias          string     `json:"alias,omitempty"`
	Description    string     `json:"description,omitempty"`
	IsActive       bool       `json:"is_active"`
	LastSeen       *time.Time `json:"last_seen,omitempty"`       // Last heartbeat.
	LastIPAddress  string     `json:"last_ip_address,omitempty"` // Address of the last heartbeat.
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// DeviceUser associates one user with one device.
type DeviceUser struct {
	ID        int64     `json:"id"`
	DeviceID  int64     `json:"device_id"`
	UserID    int64     `json:"user_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
