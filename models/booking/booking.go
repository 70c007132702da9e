package booking

import (
	"time"

	"rhumuda-booking/models/catalog"
)

// Booking represents a customer's charter inquiry with its catalog references
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Business identifier assigned by the client, immutable after creation
	BookingID string `gorm:"column:booking_id;type:varchar(255);not null;unique" json:"bookingId"`

	Status BookingStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Customer info
	FirstName    string  `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName     string  `gorm:"type:varchar(50);not null" json:"lastName"`
	PhoneNumber  string  `gorm:"type:varchar(20);not null" json:"phoneNumber"`
	Email        string  `gorm:"type:varchar(255);not null" json:"email"`
	AddressLine1 string  `gorm:"type:varchar(255);not null" json:"addressLine1"`
	AddressLine2 *string `gorm:"type:varchar(255)" json:"addressLine2,omitempty"`
	PostalCode   string  `gorm:"type:varchar(20);not null" json:"postalCode"`
	City         string  `gorm:"type:varchar(100);not null" json:"city"`
	Country      string  `gorm:"type:varchar(100);not null" json:"country"`

	// Reservation details
	JettyPointID uint               `gorm:"not null;index" json:"jetty_point_id"`
	JettyPoint   catalog.JettyPoint `gorm:"foreignKey:JettyPointID" json:"jettyPoint"`

	PackageID      uint            `gorm:"not null;index" json:"package_id"`
	PackageDetails catalog.Package `gorm:"foreignKey:PackageID" json:"packageDetails"`

	BookingDate time.Time `gorm:"type:date;not null" json:"bookingDate"`
	Passengers  int       `gorm:"not null" json:"passengers"`

	AddOns []catalog.AddOn `gorm:"many2many:booking_addons;" json:"addOns"`

	// Other options
	AlternativeDate1 *time.Time `gorm:"type:date" json:"alternativeDate1,omitempty"`
	AlternativeDate2 *time.Time `gorm:"type:date" json:"alternativeDate2,omitempty"`
	SpecialRemarks   *string    `gorm:"type:text" json:"specialRemarks,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName sets the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
