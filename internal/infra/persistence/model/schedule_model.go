package model

import "time"

// GroupScheduleModel mirrors the 'group_schedules' table.
type GroupScheduleModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	WorkingGroupID int64     `gorm:"not null;index"`
	StartTime      time.Time `gorm:"not null"`
	EndTime        time.Time `gorm:"not null"`
	AllDay         bool      `gorm:"not null;default:false"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	WorkingGroup *WorkingGroupModel `gorm:"foreignKey:WorkingGroupID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GroupScheduleModel) TableName() string {
	return "group_schedules"
}

// IndividualScheduleModel mirrors the 'individual_schedules' table.
// At least one of the three targets is set; the check constraint enforces it.
type IndividualScheduleModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;check:chk_individual_schedules_target,device_user_id IS NOT NULL OR device_id IS NOT NULL OR user_id IS NOT NULL"`
	DeviceUserID *int64    `gorm:"index"`
	DeviceID     *int64    `gorm:"index"`
	UserID       *int64    `gorm:"index"`
	StartTime    time.Time `gorm:"not null"`
	EndTime      time.Time `gorm:"not null"`
	AllDay       bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	DeviceUser *DeviceUserModel `gorm:"foreignKey:DeviceUserID;constraint:OnDelete:CASCADE"`
	Device     *DeviceModel     `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IndividualScheduleModel) TableName() string {
	return "individual_schedules"
}
