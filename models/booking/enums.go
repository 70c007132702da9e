package booking

import "fmt"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingStatusIncomplete is the initial state while the customer is
	// still filling out the inquiry form.
	BookingStatusIncomplete BookingStatus = "INCOMPLETE"
	// BookingStatusPending means submitted and awaiting operator action.
	BookingStatusPending BookingStatus = "PENDING"
	BookingStatusComplete  BookingStatus = "COMPLETE"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusIncomplete, BookingStatusPending, BookingStatusComplete, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true when no further transitions are expected.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusComplete || bs == BookingStatusCancelled
}

// ParseStatus converts a raw status string into a BookingStatus.
// Unrecognized values produce a typed error rather than a runtime fault.
func ParseStatus(raw string) (BookingStatus, error) {
	bs := BookingStatus(raw)
	if !bs.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", raw)
	}
	return bs, nil
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusIncomplete,
		BookingStatusPending,
		BookingStatusComplete,
		BookingStatusCancelled,
	}
}
