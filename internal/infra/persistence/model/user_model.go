package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Username        string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_username"`
	HashedPassword  string  `gorm:"type:varchar(255);not null"`
	Role            string  `gorm:"type:varchar(20);not null;default:member"`
	DNI             *string `gorm:"column:dni;type:varchar(20);uniqueIndex:idx_users_dni"`
	Name            string  `gorm:"type:varchar(100)"`
	PaternalSurname string  `gorm:"type:varchar(100)"`
	MaternalSurname string  `gorm:"type:varchar(100)"`
	Email           string  `gorm:"type:varchar(255)"`
	Phone           string  `gorm:"type:varchar(30)"`
	CountryCode     string  `gorm:"type:varchar(5)"`
	Avatar          string  `gorm:"type:varchar(500)"`
	IsVerified      bool    `gorm:"not null;default:false"`
	IsActive        bool    `gorm:"not null;default:true"`
	LastLogin       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Memberships []MembershipModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
