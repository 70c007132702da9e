package booking

import (
	"fmt"
	"strconv"

	bookingModel "rhumuda-booking/models/booking"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// BookingRequest is the inbound payload of the public inquiry form,
// shared by create and update. AddOns distinguishes "absent" from
// "empty list": a nil pointer leaves an existing set untouched on update.
type BookingRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Status    string `json:"status" validate:"required"`

	FirstName    string  `json:"firstName" validate:"required,min=2,max=50"`
	LastName     string  `json:"lastName" validate:"required,min=2,max=50"`
	PhoneNumber  string  `json:"phoneNumber" validate:"required,min=8,max=15"`
	Email        string  `json:"email" validate:"required,email"`
	AddressLine1 string  `json:"addressLine1" validate:"required"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	PostalCode   string  `json:"postalCode" validate:"required"`
	City         string  `json:"city" validate:"required"`
	Country      string  `json:"country" validate:"required"`

	JettyPoint  string `json:"jettyPoint" validate:"required"`
	BookingDate string `json:"bookingDate" validate:"required"`
	Passengers  int    `json:"passengers" validate:"required,min=1"`
	PackageID   string `json:"packageId" validate:"required"`

	CategoryName *string   `json:"categoryName,omitempty"`
	PackageName  *string   `json:"packageName,omitempty"`
	AddOns       *[]string `json:"addOns,omitempty"`

	AlternativeDate1 *string `json:"alternativeDate1,omitempty"`
	AlternativeDate2 *string `json:"alternativeDate2,omitempty"`
	SpecialRemarks   *string `json:"specialRemarks,omitempty"`
}

// Validate runs all field rules and returns every violation, in struct
// field order, so the caller sees the full list in one response.
func (r BookingRequest) Validate() []string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return messages
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "BookingID":
		return "Booking ID is required"
	case "Status":
		return "Status is required"
	case "FirstName":
		if fe.Tag() == "required" {
			return "First name is required"
		}
		return "First name must be between 2 and 50 characters"
	case "LastName":
		if fe.Tag() == "required" {
			return "Last name is required"
		}
		return "Last name must be between 2 and 50 characters"
	case "PhoneNumber":
		if fe.Tag() == "required" {
			return "Phone number is required"
		}
		return "Phone number must be between 8 and 15 characters"
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email format"
	case "AddressLine1":
		return "Address Line 1 is required"
	case "PostalCode":
		return "Postal code is required"
	case "City":
		return "City is required"
	case "Country":
		return "Country is required"
	case "JettyPoint":
		return "Jetty point is required"
	case "BookingDate":
		return "Booking date is required"
	case "Passengers":
		return "Number of passengers must be at least 1"
	case "PackageID":
		return "Package is required"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// BookingDTO is the outward projection of a booking: catalog references
// are carried as their string surrogate ids, the way the web form sends
// them.
type BookingDTO struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`

	JettyPoint  string `json:"jettyPoint"`
	BookingDate string `json:"bookingDate"`
	Passengers  int    `json:"passengers"`
	PackageID   string `json:"packageId"`

	CategoryName string   `json:"categoryName,omitempty"`
	PackageName  string   `json:"packageName,omitempty"`
	AddOns       []string `json:"addOns,omitempty"`

	AlternativeDate1 string `json:"alternativeDate1,omitempty"`
	AlternativeDate2 string `json:"alternativeDate2,omitempty"`
	SpecialRemarks   string `json:"specialRemarks,omitempty"`
}

const dateLayout = "2006-01-02"

// FromModel projects a persisted booking (with preloaded references)
// into its DTO form.
func FromModel(b *bookingModel.Booking) BookingDTO {
	dto := BookingDTO{
		BookingID:    b.BookingID,
		Status:       b.Status.String(),
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		PhoneNumber:  b.PhoneNumber,
		Email:        b.Email,
		AddressLine1: b.AddressLine1,
		PostalCode:   b.PostalCode,
		City:         b.City,
		Country:      b.Country,
		JettyPoint:   strconv.FormatUint(uint64(b.JettyPointID), 10),
		BookingDate:  b.BookingDate.Format(dateLayout),
		Passengers:   b.Passengers,
		PackageID:    strconv.FormatUint(uint64(b.PackageID), 10),
		CategoryName: b.PackageDetails.Category.Name,
		PackageName:  b.PackageDetails.Name,
	}
	if b.AddressLine2 != nil {
		dto.AddressLine2 = *b.AddressLine2
	}
	if b.AlternativeDate1 != nil {
		dto.AlternativeDate1 = b.AlternativeDate1.Format(dateLayout)
	}
	if b.AlternativeDate2 != nil {
		dto.AlternativeDate2 = b.AlternativeDate2.Format(dateLayout)
	}
	if b.SpecialRemarks != nil {
		dto.SpecialRemarks = *b.SpecialRemarks
	}
	for _, a := range b.AddOns {
		dto.AddOns = append(dto.AddOns, strconv.FormatUint(uint64(a.ID), 10))
	}
	return dto
}
