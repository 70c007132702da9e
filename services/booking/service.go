package booking

import (
	"errors"
	"strconv"
	"time"

	"rhumuda-booking/logger"
	bookingModel "rhumuda-booking/models/booking"
	"rhumuda-booking/models/catalog"
	"rhumuda-booking/repository"
	bookingTypes "rhumuda-booking/types/booking"
	"rhumuda-booking/utils"
)

// Notifier dispatches the customer and admin emails for a submitted
// booking. Implemented by services/email.
type Notifier interface {
	SendBookingEmails(dto bookingTypes.BookingDTO) error
}

// Service assembles, persists and drives the lifecycle of bookings.
type Service struct {
	bookings repository.BookingRepository
	catalog  repository.CatalogRepository
	notifier Notifier
}

func NewService(bookings repository.BookingRepository, catalog repository.CatalogRepository, notifier Notifier) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		notifier: notifier,
	}
}

// Create validates the request, resolves every catalog reference and
// persists a new booking. Validation failures are collected, not
// short-circuited; any unresolved reference aborts before persistence.
func (s *Service) Create(req bookingTypes.BookingRequest) (*bookingModel.Booking, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, ValidationError{Violations: violations}
	}

	entity, err := s.assemble(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	if err := s.bookings.Save(entity); err != nil {
		if errors.Is(err, repository.ErrDuplicateBookingID) {
			return nil, ConflictError{BookingID: req.BookingID}
		}
		logger.Error("Failed to save booking", err)
		return nil, InternalError{Err: err}
	}

	saved, err := s.bookings.FindByBookingID(entity.BookingID)
	if err != nil {
		logger.Error("Failed to load created booking", err)
		return nil, InternalError{Err: err}
	}
	return saved, nil
}

// Update overwrites the mutable fields of an existing booking. The
// business booking id and createdAt are immutable; add-ons are replaced
// only when the request carries the field.
func (s *Service) Update(bookingID string, req bookingTypes.BookingRequest) (*bookingModel.Booking, error) {
	existing, err := s.bookings.FindByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, NotFoundError{BookingID: bookingID}
		}
		logger.Error("Failed to find booking for update", err)
		return nil, InternalError{Err: err}
	}

	if violations := req.Validate(); len(violations) > 0 {
		return nil, ValidationError{Violations: violations}
	}

	entity, err := s.assemble(req)
	if err != nil {
		return nil, err
	}

	entity.ID = existing.ID
	entity.BookingID = existing.BookingID
	entity.CreatedAt = existing.CreatedAt
	entity.UpdatedAt = time.Now()

	if err := s.bookings.Update(entity); err != nil {
		logger.Error("Failed to update booking", err)
		return nil, InternalError{Err: err}
	}
	if req.AddOns != nil {
		if err := s.bookings.ReplaceAddOns(entity, entity.AddOns); err != nil {
			logger.Error("Failed to replace booking add-ons", err)
			return nil, InternalError{Err: err}
		}
	}

	updated, err := s.bookings.FindByBookingID(bookingID)
	if err != nil {
		logger.Error("Failed to load updated booking", err)
		return nil, InternalError{Err: err}
	}
	return updated, nil
}

// GetByBookingID projects a persisted booking to its DTO form.
func (s *Service) GetByBookingID(bookingID string) (bookingTypes.BookingDTO, error) {
	b, err := s.bookings.FindByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return bookingTypes.BookingDTO{}, NotFoundError{BookingID: bookingID}
		}
		logger.Error("Failed to find booking", err)
		return bookingTypes.BookingDTO{}, InternalError{Err: err}
	}
	return bookingTypes.FromModel(b), nil
}

// UpdateStatus sets the booking status to a recognized value. It does
// not guard transition legality; cancelled bookings stay in storage.
func (s *Service) UpdateStatus(bookingID string, rawStatus string) error {
	status, err := bookingModel.ParseStatus(rawStatus)
	if err != nil {
		return InvalidStatusError{Value: rawStatus}
	}
	if err := s.bookings.UpdateStatus(bookingID, status); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return NotFoundError{BookingID: bookingID}
		}
		logger.Error("Failed to update booking status", err)
		return InternalError{Err: err}
	}
	return nil
}

// Submit moves the booking to PENDING and dispatches the notification
// emails from the pre-transition snapshot. The status commit and the
// dispatch are two sequential steps: a notification failure surfaces as
// a DeliveryError but never rolls back the committed transition.
func (s *Service) Submit(bookingID string) (bookingTypes.BookingDTO, error) {
	dto, err := s.GetByBookingID(bookingID)
	if err != nil {
		return bookingTypes.BookingDTO{}, err
	}

	if err := s.UpdateStatus(bookingID, bookingModel.BookingStatusPending.String()); err != nil {
		return bookingTypes.BookingDTO{}, err
	}

	if err := s.notifier.SendBookingEmails(dto); err != nil {
		logger.Error("Booking submitted but email dispatch failed", err)
		return dto, DeliveryError{BookingID: bookingID, Err: err}
	}

	logger.Success("Booking submitted and notifications sent: " + bookingID)
	return dto, nil
}

// assemble resolves every catalog reference of the request and builds
// the booking entity. No partial result escapes a failed resolution.
func (s *Service) assemble(req bookingTypes.BookingRequest) (*bookingModel.Booking, error) {
	status, err := bookingModel.ParseStatus(req.Status)
	if err != nil {
		return nil, InvalidStatusError{Value: req.Status}
	}

	jettyID, err := parseRefID("jetty point", req.JettyPoint)
	if err != nil {
		return nil, err
	}
	jetty, err := s.catalog.FindJettyPointByID(jettyID)
	if err != nil {
		if errors.Is(err, repository.ErrJettyPointNotFound) {
			return nil, ReferenceError{Entity: "JettyPoint", ID: req.JettyPoint, Err: err}
		}
		logger.Error("Failed to resolve jetty point", err)
		return nil, InternalError{Err: err}
	}

	packageID, err := parseRefID("package", req.PackageID)
	if err != nil {
		return nil, err
	}
	pkg, err := s.catalog.FindPackageByID(packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, ReferenceError{Entity: "Package", ID: req.PackageID, Err: err}
		}
		logger.Error("Failed to resolve package", err)
		return nil, InternalError{Err: err}
	}

	var addOns []catalog.AddOn
	if req.AddOns != nil {
		for _, rawID := range *req.AddOns {
			id, err := parseRefID("add-on", rawID)
			if err != nil {
				return nil, err
			}
			a, err := s.catalog.FindAddOnByID(id)
			if err != nil {
				if errors.Is(err, repository.ErrAddOnNotFound) {
					return nil, ReferenceError{Entity: "AddOn", ID: rawID, Err: err}
				}
				logger.Error("Failed to resolve add-on", err)
				return nil, InternalError{Err: err}
			}
			addOns = append(addOns, *a)
		}
	}

	bookingDate, err := utils.ParseDate(req.BookingDate)
	if err != nil {
		return nil, ValidationError{Violations: []string{"Booking date must be a valid date"}}
	}

	entity := &bookingModel.Booking{
		BookingID:      req.BookingID,
		Status:         status,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		AddressLine1:   req.AddressLine1,
		AddressLine2:   req.AddressLine2,
		PostalCode:     req.PostalCode,
		City:           req.City,
		Country:        req.Country,
		JettyPointID:   jetty.ID,
		PackageID:      pkg.ID,
		BookingDate:    bookingDate,
		Passengers:     req.Passengers,
		AddOns:         addOns,
		SpecialRemarks: req.SpecialRemarks,
	}

	if req.AlternativeDate1 != nil && *req.AlternativeDate1 != "" {
		d, err := utils.ParseDate(*req.AlternativeDate1)
		if err != nil {
			return nil, ValidationError{Violations: []string{"Alternative date 1 must be a valid date"}}
		}
		entity.AlternativeDate1 = &d
	}
	if req.AlternativeDate2 != nil && *req.AlternativeDate2 != "" {
		d, err := utils.ParseDate(*req.AlternativeDate2)
		if err != nil {
			return nil, ValidationError{Violations: []string{"Alternative date 2 must be a valid date"}}
		}
		entity.AlternativeDate2 = &d
	}

	return entity, nil
}

func parseRefID(entity, raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, InvalidIDError{Entity: entity, Value: raw}
	}
	return uint(id), nil
}
