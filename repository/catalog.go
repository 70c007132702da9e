package repository

import (
	"errors"

	"rhumuda-booking/models/catalog"

	"gorm.io/gorm"
)

// CatalogRepository is the read contract for the reference catalog.
// Catalog rows are maintained by an out-of-scope admin process and are
// read-only to the booking core.
type CatalogRepository interface {
	FindJettyPointByID(id uint) (*catalog.JettyPoint, error)
	FindPackageByID(id uint) (*catalog.Package, error)
	FindAddOnByID(id uint) (*catalog.AddOn, error)

	ListActiveJettyPoints() ([]catalog.JettyPoint, error)
	ListActiveAddOns() ([]catalog.AddOn, error)
	ListPackagesByCategory(categoryID uint) ([]catalog.Package, error)
	ListCategories() ([]catalog.PackageCategory, error)
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) FindJettyPointByID(id uint) (*catalog.JettyPoint, error) {
	var jp catalog.JettyPoint
	if err := r.db.First(&jp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJettyPointNotFound
		}
		return nil, err
	}
	return &jp, nil
}

func (r *GormCatalogRepository) FindPackageByID(id uint) (*catalog.Package, error) {
	var pkg catalog.Package
	err := r.db.
		Preload("Category").
		Preload("PriceTiers").
		Preload("IncludedServices").
		First(&pkg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *GormCatalogRepository) FindAddOnByID(id uint) (*catalog.AddOn, error) {
	var a catalog.AddOn
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddOnNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormCatalogRepository) ListActiveJettyPoints() ([]catalog.JettyPoint, error) {
	var points []catalog.JettyPoint
	err := r.db.Where("is_active = ?", true).Order("name").Find(&points).Error
	return points, err
}

func (r *GormCatalogRepository) ListActiveAddOns() ([]catalog.AddOn, error) {
	var addOns []catalog.AddOn
	err := r.db.Where("is_active = ?", true).Order("name").Find(&addOns).Error
	return addOns, err
}

func (r *GormCatalogRepository) ListPackagesByCategory(categoryID uint) ([]catalog.Package, error) {
	var packages []catalog.Package
	err := r.db.
		Preload("Category").
		Preload("PriceTiers").
		Preload("IncludedServices").
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&packages).Error
	return packages, err
}

func (r *GormCatalogRepository) ListCategories() ([]catalog.PackageCategory, error) {
	var categories []catalog.PackageCategory
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

var _ CatalogRepository = (*GormCatalogRepository)(nil)
