package model

import "time"

// DeviceModel mirrors the 'devices' table.
type DeviceModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	WorkingGroupID int64  `gorm:"not null;index"`
	DeviceUID      string `gorm:"column:device_uid;type:varchar(100);not null;uniqueIndex:idx_devices_uid"`
	Alias          string `gorm:"type:varchar(100)"`
	Description    string `gorm:"type:text"`
	IsActive       bool   `gorm:"not null;default:true"`
	LastSeen       *time.Time
	LastIPAddress  string `gorm:"column:last_ip_address;type:varchar(45)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	WorkingGroup *WorkingGroupModel `gorm:"foreignKey:WorkingGroupID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceUserModel mirrors the 'device_users' association table.
type DeviceUserModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	DeviceID  int64 `gorm:"not null;uniqueIndex:idx_device_users_pair,priority:1"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_device_users_pair,priority:2;index"`
	IsActive  bool  `gorm:"not null;default:true"`
	CreatedAt time.Time

	Device *DeviceModel `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	User   *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceUserModel) TableName() string {
	return "device_users"
}
