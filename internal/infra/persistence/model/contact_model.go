package model

import "time"

// ContactModel mirrors the 'contacts' table. Username references users.username.
type ContactModel struct {
	ID        string `gorm:"type:varchar(100);primaryKey"`
	Username  string `gorm:"type:varchar(100);not null;index"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(100)"`
	Phone     string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Addresses []AddressModel `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
