package model

import "time"

// UserModel mirrors the 'users' table. Token and TokenExpiredAt are NULL while logged out.
type UserModel struct {
	Username       string  `gorm:"type:varchar(100);primaryKey"`
	Password       string  `gorm:"type:varchar(100);not null"`
	Name           string  `gorm:"type:varchar(100);not null"`
	Token          *string `gorm:"type:varchar(100);uniqueIndex"`
	TokenExpiredAt *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Contacts []ContactModel `gorm:"foreignKey:Username;references:Username"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
