package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         string `gorm:"type:varchar(100);primaryKey"`
	ContactID  string `gorm:"type:varchar(100);not null;index"`
	Street     string `gorm:"type:varchar(200)"`
	City       string `gorm:"type:varchar(100)"`
	Province   string `gorm:"type:varchar(100)"`
	Country    string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(10)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
