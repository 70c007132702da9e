package catalog

import (
	"time"
)

// JettyPoint represents a named departure location a booking can reference
type JettyPoint struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the JettyPoint model
func (JettyPoint) TableName() string {
	return "jetty_points"
}
