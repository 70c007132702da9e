package catalog

import (
	"github.com/shopspring/decimal"
)

// Package represents a bookable charter product. It owns its price tiers
// and included services exclusively; both are cascade-deleted with it.
type Package struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for category relationship
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	Category   PackageCategory `gorm:"foreignKey:CategoryID" json:"category"`

	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	Description   *string `gorm:"type:text" json:"description,omitempty"`
	MaxCapacity   *int    `gorm:"column:max_capacity" json:"max_capacity,omitempty"`
	DurationMins  *int    `gorm:"column:duration_minutes" json:"duration_minutes,omitempty"`
	IsPrivate     *bool   `gorm:"column:is_private" json:"is_private,omitempty"`
	DistanceMinKm *int    `gorm:"column:distance_min_km" json:"distance_min_km,omitempty"`
	DistanceMaxKm *int    `gorm:"column:distance_max_km" json:"distance_max_km,omitempty"`
	FishingType   *string `gorm:"column:fishing_type;type:varchar(50)" json:"fishing_type,omitempty"`
	IsActive      bool    `gorm:"not null;default:true" json:"isActive"`

	PriceTiers       []PriceTier       `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"price_tiers"`
	IncludedServices []IncludedService `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"included_services"`
}

// TableName sets the table name for the Package model
func (Package) TableName() string {
	return "packages"
}

// PriceTier is a price bracket within a package (fixed, adult, child, infant).
// The back reference exists for lookups only and is never serialized.
type PriceTier struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	PackageID uint     `gorm:"not null;index" json:"package_id"`
	Package   *Package `gorm:"foreignKey:PackageID" json:"-"`

	TierType string          `gorm:"column:tier_type;type:varchar(20);not null" json:"tier_type"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	AgeMin   *int            `gorm:"column:age_min" json:"age_min,omitempty"`
	AgeMax   *int            `gorm:"column:age_max" json:"age_max,omitempty"`
}

// TableName sets the table name for the PriceTier model
func (PriceTier) TableName() string {
	return "price_tiers"
}

// IncludedService is a service bundled with a package.
type IncludedService struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	PackageID uint     `gorm:"not null;index" json:"package_id"`
	Package   *Package `gorm:"foreignKey:PackageID" json:"-"`

	ServiceName string  `gorm:"column:service_name;type:varchar(255);not null" json:"service_name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

// TableName sets the table name for the IncludedService model
func (IncludedService) TableName() string {
	return "included_services"
}

// Price tier type values seeded by the catalog.
const (
	TierTypeFixed  = "FIXED"
	TierTypeAdult  = "ADULT"
	TierTypeChild  = "CHILD"
	TierTypeInfant = "INFANT"
)
