package repository

import (
	"errors"

	bookingModel "rhumuda-booking/models/booking"
	"rhumuda-booking/models/catalog"

	"gorm.io/gorm"
)

// BookingRepository is the persistence contract for bookings.
type BookingRepository interface {
	Save(b *bookingModel.Booking) error
	Update(b *bookingModel.Booking) error
	FindByBookingID(bookingID string) (*bookingModel.Booking, error)
	ExistsByBookingID(bookingID string) (bool, error)
	UpdateStatus(bookingID string, status bookingModel.BookingStatus) error
	ReplaceAddOns(b *bookingModel.Booking, addOns []catalog.AddOn) error
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a new booking together with its add-on links in one
// transaction. The duplicate check runs first so a conflicting booking id
// fails before anything is written.
func (r *GormBookingRepository) Save(b *bookingModel.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&bookingModel.Booking{}).
			Where("booking_id = ?", b.BookingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateBookingID
		}
		return tx.Create(b).Error
	})
}

// Update overwrites the mutable columns of an existing booking row.
func (r *GormBookingRepository) Update(b *bookingModel.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(b).
			Omit("BookingID", "CreatedAt", "AddOns").
			Select("*").
			Updates(b)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookingNotFound
		}
		return nil
	})
}

func (r *GormBookingRepository) FindByBookingID(bookingID string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := r.db.
		Preload("JettyPoint").
		Preload("PackageDetails").
		Preload("PackageDetails.Category").
		Preload("AddOns").
		Where("booking_id = ?", bookingID).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) ExistsByBookingID(bookingID string) (bool, error) {
	var count int64
	err := r.db.Model(&bookingModel.Booking{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormBookingRepository) UpdateStatus(bookingID string, status bookingModel.BookingStatus) error {
	res := r.db.Model(&bookingModel.Booking{}).
		Where("booking_id = ?", bookingID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ReplaceAddOns swaps the booking's add-on set for the given one.
func (r *GormBookingRepository) ReplaceAddOns(b *bookingModel.Booking, addOns []catalog.AddOn) error {
	return r.db.Model(b).Association("AddOns").Replace(addOns)
}

var _ BookingRepository = (*GormBookingRepository)(nil)
