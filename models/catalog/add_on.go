package catalog

import (
	"time"
)

// AddOn represents an optional extra selectable on a booking
type AddOn struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the AddOn model
func (AddOn) TableName() string {
	return "add_ons"
}
