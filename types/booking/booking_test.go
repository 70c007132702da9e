package booking

import (
	"testing"
	"time"

	bookingModel "rhumuda-booking/models/booking"
	"rhumuda-booking/models/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() BookingRequest {
	return BookingRequest{
		BookingID:    "BK-1001",
		Status:       "INCOMPLETE",
		FirstName:    "Jane",
		LastName:     "Doe",
		PhoneNumber:  "0123456789",
		Email:        "jane@x.com",
		AddressLine1: "1 Main St",
		PostalCode:   "50000",
		City:         "KL",
		Country:      "Malaysia",
		JettyPoint:   "1",
		BookingDate:  "2024-08-01",
		Passengers:   2,
		PackageID:    "5",
	}
}

func TestValidate_ValidRequestHasNoViolations(t *testing.T) {
	assert.Empty(t, validRequest().Validate())
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	req := validRequest()
	req.FirstName = ""
	req.LastName = "X"
	req.Email = "not-an-email"
	req.Passengers = 0

	violations := req.Validate()
	assert.Equal(t, []string{
		"First name is required",
		"Last name must be between 2 and 50 characters",
		"Invalid email format",
		"Number of passengers must be at least 1",
	}, violations)
}

func TestValidate_RequiredFields(t *testing.T) {
	req := BookingRequest{}
	violations := req.Validate()

	assert.Contains(t, violations, "Booking ID is required")
	assert.Contains(t, violations, "Status is required")
	assert.Contains(t, violations, "Phone number is required")
	assert.Contains(t, violations, "Jetty point is required")
	assert.Contains(t, violations, "Booking date is required")
	assert.Contains(t, violations, "Package is required")
}

func TestFromModel_ProjectsReferencesAsStringIDs(t *testing.T) {
	remarks := "Bring extra ice boxes"
	alt := time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC)
	b := &bookingModel.Booking{
		ID:           7,
		BookingID:    "BK-1001",
		Status:       bookingModel.BookingStatusPending,
		FirstName:    "Jane",
		LastName:     "Doe",
		PhoneNumber:  "0123456789",
		Email:        "jane@x.com",
		AddressLine1: "1 Main St",
		PostalCode:   "50000",
		City:         "KL",
		Country:      "Malaysia",
		JettyPointID: 1,
		PackageID:    5,
		PackageDetails: catalog.Package{
			ID:   5,
			Name: "Half Day Coastal Charter",
			Category: catalog.PackageCategory{
				ID:   1,
				Name: "Boat Charter",
			},
		},
		BookingDate:      time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Passengers:       2,
		AddOns:           []catalog.AddOn{{ID: 3, Name: "Snorkeling gears"}, {ID: 4, Name: "Fishing rods & tackle"}},
		AlternativeDate1: &alt,
		SpecialRemarks:   &remarks,
	}

	dto := FromModel(b)

	assert.Equal(t, "BK-1001", dto.BookingID)
	assert.Equal(t, "PENDING", dto.Status)
	assert.Equal(t, "1", dto.JettyPoint)
	assert.Equal(t, "5", dto.PackageID)
	assert.Equal(t, "Boat Charter", dto.CategoryName)
	assert.Equal(t, "Half Day Coastal Charter", dto.PackageName)
	assert.Equal(t, "2024-08-01", dto.BookingDate)
	assert.Equal(t, "2024-08-03", dto.AlternativeDate1)
	assert.Empty(t, dto.AlternativeDate2)
	assert.Equal(t, []string{"3", "4"}, dto.AddOns)
	assert.Equal(t, "Bring extra ice boxes", dto.SpecialRemarks)
	require.Empty(t, dto.AddressLine2)
}
