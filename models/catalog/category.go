package catalog

// PackageCategory groups packages (e.g. boat charter, fishing, island trips).
// The Packages side is non-owning; serialization only ever walks
// category -> packages from the packages listing, never back.
type PackageCategory struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	IconURL     *string `gorm:"type:varchar(255)" json:"icon_url,omitempty"`

	Packages []Package `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName sets the table name for the PackageCategory model
func (PackageCategory) TableName() string {
	return "package_categories"
}
