// Package entity contains the core business objects of the project.
package entity

import "time"

// TimeWindow is the access window shared by every schedule kind.
type TimeWindow struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	AllDay    bool      `json:"all_day"`
}

// Normalize widens an all-day window to whole UTC days.
func (w TimeWindow) Normalize() TimeWindow {
	if !w.AllDay {
		return w
	}

	start := w.StartTime.UTC()
	end := w.EndTime.UTC()
	startOfDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)

	return TimeWindow{StartTime: startOfDay, EndTime: endOfDay, AllDay: true}
}

// Valid reports whether the window ends after it starts.
func (w TimeWindow) Valid() bool {
	return w.EndTime.After(w.StartTime)
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.StartTime) && !t.After(w.EndTime)
}

// GroupSchedule applies to every member of a working group.
type GroupSchedule struct {
	ID             int64 `json:"id"`
	WorkingGroupID int64 `json:"working_group_id"`
	TimeWindow
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IndividualSchedule targets an association, a device or a user. At least one target is set.
type IndividualSchedule struct {
	ID           int64  `json:"id"`
	DeviceUserID *int64 `json:"device_user_id,omitempty"`
	DeviceID     *int64 `json:"device_id,omitempty"`
	UserID       *int64 `json:"user_id,omitempty"`
	TimeWindow
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTarget reports whether the schedule references at least one target.
func (s *IndividualSchedule) HasTarget() bool {
	return s.DeviceUserID != nil || s.DeviceID != nil || s.UserID != nil
}
