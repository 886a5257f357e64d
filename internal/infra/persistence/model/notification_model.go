package model

import "time"

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement"`
	WorkingGroupID        int64     `gorm:"not null;index:idx_notifications_group_created,priority:1"`
	RawNotification       string    `gorm:"type:text;not null"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	Amount                float64   `gorm:"type:numeric(12,2);not null;check:chk_notifications_amount,amount >= 0"`
	SecurityCode          string    `gorm:"type:varchar(255)"`
	Status                string    `gorm:"type:varchar(20);not null;default:received"`
	NotificationTimestamp time.Time `gorm:"not null"`
	CreatedAt             time.Time `gorm:"index:idx_notifications_group_created,priority:2,sort:desc"`

	WorkingGroup *WorkingGroupModel `gorm:"foreignKey:WorkingGroupID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// DeliveryRecordModel mirrors the 'delivery_records' table.
// idx_delivery_triple makes a second record for the same (notification, device, user) impossible.
type DeliveryRecordModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	NotificationID int64     `gorm:"not null;uniqueIndex:idx_delivery_triple,priority:1"`
	DeviceID       int64     `gorm:"not null;uniqueIndex:idx_delivery_triple,priority:2"`
	UserID         int64     `gorm:"not null;uniqueIndex:idx_delivery_triple,priority:3"`
	IsActive       bool      `gorm:"not null;default:true"`
	SentAt         time.Time `gorm:"not null;autoCreateTime"`

	Notification *NotificationModel `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE"`
	Device       *DeviceModel       `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	User         *UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRecordModel) TableName() string {
	return "delivery_records"
}
