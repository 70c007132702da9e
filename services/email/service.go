package email

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"rhumuda-booking/logger"
	"rhumuda-booking/repository"
	bookingTypes "rhumuda-booking/types/booking"
)

const (
	customerSubject = "Booking Inquiry Confirmation - Rhumuda Boat Charter"
	dateLayout      = "2006-01-02"
	displayLayout   = "02/01/2006"
)

var (
	// ErrCustomerSend marks a delivery failure of the customer
	// confirmation; ErrAdminSend marks the admin alert. Both sends are
	// always attempted regardless of the other's outcome.
	ErrCustomerSend = errors.New("failed to send customer email")
	ErrAdminSend    = errors.New("failed to send admin email")
)

// Service renders and dispatches the two booking notification emails.
// The rich HTML template is loaded once at construction; when it is
// unavailable the customer email falls back to a plain-text body so
// dispatch never fails on the template alone.
type Service struct {
	sender       Sender
	catalog      repository.CatalogRepository
	fromEmail    string
	adminEmail   string
	templatePath string
	template     string
}

func NewService(sender Sender, catalog repository.CatalogRepository, fromEmail, adminEmail, templatePath string) *Service {
	s := &Service{
		sender:       sender,
		catalog:      catalog,
		fromEmail:    fromEmail,
		adminEmail:   adminEmail,
		templatePath: templatePath,
	}
	if err := s.ReloadTemplate(); err != nil {
		logger.Warning("Email template unavailable, using plain-text fallback: " + err.Error())
	}
	return s
}

// ReloadTemplate re-reads the HTML template from disk. On failure the
// cached template is cleared and the fallback body takes over.
func (s *Service) ReloadTemplate() error {
	data, err := os.ReadFile(s.templatePath)
	if err != nil {
		s.template = ""
		return err
	}
	s.template = string(data)
	logger.Success("Email template loaded from " + s.templatePath)
	return nil
}

// SendBookingEmails sends the customer confirmation and the admin alert
// for the given booking snapshot. The two sends are independent; errors
// are aggregated rather than short-circuited.
func (s *Service) SendBookingEmails(dto bookingTypes.BookingDTO) error {
	var customerErr, adminErr error

	if err := s.sendCustomerEmail(dto); err != nil {
		logger.Error("Failed to send customer email for booking "+dto.BookingID, err)
		customerErr = fmt.Errorf("%w: %v", ErrCustomerSend, err)
	} else {
		logger.Success("Customer confirmation email sent to: " + dto.Email)
	}

	if err := s.sendAdminEmail(dto); err != nil {
		logger.Error("Failed to send admin email for booking "+dto.BookingID, err)
		adminErr = fmt.Errorf("%w: %v", ErrAdminSend, err)
	} else {
		logger.Success("Admin notification email sent for booking: " + dto.BookingID)
	}

	return errors.Join(customerErr, adminErr)
}

func (s *Service) sendCustomerEmail(dto bookingTypes.BookingDTO) error {
	var body string
	if s.template != "" {
		body = strings.NewReplacer(
			"${bookingId}", dto.BookingID,
			"${firstName}", dto.FirstName,
			"${lastName}", dto.LastName,
			"${email}", dto.Email,
			"${phoneNumber}", dto.PhoneNumber,
			"${addressLine1}", dto.AddressLine1,
			"${addressLine2}", dto.AddressLine2,
			"${categoryName}", dto.CategoryName,
			"${packageName}", dto.PackageName,
			"${jettyName}", s.jettyPointName(dto.JettyPoint),
			"${bookingDate}", formatDate(dto.BookingDate),
			"${passengers}", strconv.Itoa(dto.Passengers),
		).Replace(s.template)
	} else {
		body = s.plainTextBody(dto)
	}
	return s.sender.Send(s.fromEmail, dto.Email, customerSubject, body)
}

func (s *Service) plainTextBody(dto bookingTypes.BookingDTO) string {
	return fmt.Sprintf(`Booking ID: %s

Dear %s %s,

Thank you for your recent inquiry about a boat charter with Rhumuda Boat Charter.

We have received your request as below:

Customer Details:
Name: %s %s
Email: %s
Phone: %s
Address: %s %s

Reservation Details:
Category: %s
Package: %s
Jetty: %s
Booking Date: %s
Group Size: %d

We are currently reviewing your request and will be in touch shortly with a confirmation and further details.

We appreciate your interest in Rhumuda Boat Charter and look forward to providing you with a memorable boating experience.
`,
		dto.BookingID,
		dto.FirstName, dto.LastName,
		dto.FirstName, dto.LastName,
		dto.Email,
		dto.PhoneNumber,
		dto.AddressLine1, dto.AddressLine2,
		dto.CategoryName,
		dto.PackageName,
		s.jettyPointName(dto.JettyPoint),
		formatDate(dto.BookingDate),
		dto.Passengers)
}

func (s *Service) sendAdminEmail(dto bookingTypes.BookingDTO) error {
	subject := "New Booking Inquiry - " + dto.BookingID
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
<h2>New Booking Inquiry Received</h2>
<p><strong>Booking ID:</strong> %s</p>
<h3>Customer Details</h3>
<p>
    <strong>Name:</strong> %s %s<br>
    <strong>Email:</strong> %s<br>
    <strong>Phone:</strong> %s<br>
    <strong>Address:</strong> %s %s
</p>
<h3>Reservation Details</h3>
<p>
    <strong>Category:</strong> %s<br>
    <strong>Package:</strong> %s<br>
    <strong>Jetty:</strong> %s<br>
    <strong>Booking Date:</strong> %s<br>
    <strong>Group Size:</strong> %d
</p>
<p><strong>Please review and respond to the customer.</strong></p>
</body>
</html>`,
		dto.BookingID,
		dto.FirstName, dto.LastName,
		dto.Email,
		dto.PhoneNumber,
		dto.AddressLine1, dto.AddressLine2,
		dto.CategoryName,
		dto.PackageName,
		s.jettyPointName(dto.JettyPoint),
		formatDate(dto.BookingDate),
		dto.Passengers)
	return s.sender.Send(s.fromEmail, s.adminEmail, subject, body)
}

// jettyPointName resolves the jetty display name, falling back to the
// raw id string when the id is malformed or unknown.
func (s *Service) jettyPointName(jettyPointID string) string {
	id, err := strconv.ParseUint(jettyPointID, 10, 32)
	if err != nil {
		logger.Warning("Invalid jetty point ID format: " + jettyPointID)
		return jettyPointID
	}
	jp, err := s.catalog.FindJettyPointByID(uint(id))
	if err != nil {
		return jettyPointID
	}
	return jp.Name
}

func formatDate(isoDate string) string {
	t, err := time.Parse(dateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format(displayLayout)
}
