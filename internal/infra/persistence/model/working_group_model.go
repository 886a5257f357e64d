package model

import "time"

// WorkingGroupModel mirrors the 'working_groups' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type WorkingGroupModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_working_groups_name"`
	Description string `gorm:"type:text"`
	// Nullable until the founding admin exists.
	CreatorID *int64 `gorm:"index"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkingGroupModel) TableName() string {
	return "working_groups"
}

// MembershipModel mirrors the 'memberships' table. One row per (group, user).
type MembershipModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	WorkingGroupID int64  `gorm:"not null;uniqueIndex:idx_memberships_group_user,priority:1"`
	UserID         int64  `gorm:"not null;uniqueIndex:idx_memberships_group_user,priority:2;index"`
	Role           string `gorm:"type:varchar(20);not null;default:member"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time

	WorkingGroup *WorkingGroupModel `gorm:"foreignKey:WorkingGroupID;constraint:OnDelete:CASCADE"`
	User         *UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}
