package email

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rhumuda-booking/models/catalog"
	"rhumuda-booking/repository"
	bookingTypes "rhumuda-booking/types/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedMessage struct {
	From    string
	To      string
	Subject string
	Body    string
}

// fakeSender records every message and can be told to fail per recipient.
type fakeSender struct {
	sent   []recordedMessage
	failTo map[string]error
}

func newFakeSender() *fakeSender {
	return &fakeSender{failTo: map[string]error{}}
}

func (f *fakeSender) Send(from, to, subject, htmlBody string) error {
	if err, ok := f.failTo[to]; ok {
		return err
	}
	f.sent = append(f.sent, recordedMessage{From: from, To: to, Subject: subject, Body: htmlBody})
	return nil
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindJettyPointByID(id uint) (*catalog.JettyPoint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.JettyPoint), args.Error(1)
}

func (m *MockCatalogRepository) FindPackageByID(id uint) (*catalog.Package, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *MockCatalogRepository) FindAddOnByID(id uint) (*catalog.AddOn, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.AddOn), args.Error(1)
}

func (m *MockCatalogRepository) ListActiveJettyPoints() ([]catalog.JettyPoint, error) {
	args := m.Called()
	return args.Get(0).([]catalog.JettyPoint), args.Error(1)
}

func (m *MockCatalogRepository) ListActiveAddOns() ([]catalog.AddOn, error) {
	args := m.Called()
	return args.Get(0).([]catalog.AddOn), args.Error(1)
}

func (m *MockCatalogRepository) ListPackagesByCategory(categoryID uint) ([]catalog.Package, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]catalog.Package), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories() ([]catalog.PackageCategory, error) {
	args := m.Called()
	return args.Get(0).([]catalog.PackageCategory), args.Error(1)
}

func sampleDTO() bookingTypes.BookingDTO {
	return bookingTypes.BookingDTO{
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
		Passengers:   4,
		PackageID:    "5",
		CategoryName: "Boat Charter",
		PackageName:  "Half Day Coastal Charter",
	}
}

func catalogWithJetty() *MockCatalogRepository {
	mockCatalog := &MockCatalogRepository{}
	mockCatalog.On("FindJettyPointByID", uint(1)).
		Return(&catalog.JettyPoint{ID: 1, Name: "Merang Jetty", IsActive: true}, nil)
	return mockCatalog
}

func TestSendBookingEmails_PlainTextFallback(t *testing.T) {
	sender := newFakeSender()
	svc := NewService(sender, catalogWithJetty(), "noreply@rhumuda.test", "admin@rhumuda.test", "does/not/exist.html")

	err := svc.SendBookingEmails(sampleDTO())
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	customer := sender.sent[0]
	assert.Equal(t, "jane@x.com", customer.To)
	assert.Equal(t, "Booking Inquiry Confirmation - Rhumuda Boat Charter", customer.Subject)
	assert.Contains(t, customer.Body, "Booking ID: BK-1001")
	assert.Contains(t, customer.Body, "Dear Jane Doe")
	assert.Contains(t, customer.Body, "Jetty: Merang Jetty")
	assert.Contains(t, customer.Body, "Booking Date: 01/08/2024")
	assert.Contains(t, customer.Body, "Group Size: 4")

	admin := sender.sent[1]
	assert.Equal(t, "admin@rhumuda.test", admin.To)
	assert.Equal(t, "New Booking Inquiry - BK-1001", admin.Subject)
	assert.Contains(t, admin.Body, "New Booking Inquiry Received")
	assert.Contains(t, admin.Body, "Merang Jetty")
}

func TestSendBookingEmails_TemplateSubstitution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confirmation.html")
	tmpl := `<p>ID ${bookingId} for ${firstName} ${lastName}, ${passengers} pax at ${jettyName} on ${bookingDate}</p>`
	require.NoError(t, os.WriteFile(path, []byte(tmpl), 0644))

	sender := newFakeSender()
	svc := NewService(sender, catalogWithJetty(), "noreply@rhumuda.test", "admin@rhumuda.test", path)

	err := svc.SendBookingEmails(sampleDTO())
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	body := sender.sent[0].Body
	assert.Equal(t, `<p>ID BK-1001 for Jane Doe, 4 pax at Merang Jetty on 01/08/2024</p>`, body)
}

func TestSendBookingEmails_CustomerFailureStillReachesAdmin(t *testing.T) {
	sender := newFakeSender()
	sender.failTo["jane@x.com"] = errors.New("550 mailbox unavailable")

	svc := NewService(sender, catalogWithJetty(), "noreply@rhumuda.test", "admin@rhumuda.test", "does/not/exist.html")
	err := svc.SendBookingEmails(sampleDTO())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCustomerSend)
	assert.NotErrorIs(t, err, ErrAdminSend)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "admin@rhumuda.test", sender.sent[0].To)
}

func TestSendBookingEmails_BothFailuresAggregated(t *testing.T) {
	sender := newFakeSender()
	sender.failTo["jane@x.com"] = errors.New("550 mailbox unavailable")
	sender.failTo["admin@rhumuda.test"] = errors.New("connection refused")

	svc := NewService(sender, catalogWithJetty(), "noreply@rhumuda.test", "admin@rhumuda.test", "does/not/exist.html")
	err := svc.SendBookingEmails(sampleDTO())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCustomerSend)
	assert.ErrorIs(t, err, ErrAdminSend)
}

func TestSendBookingEmails_UnknownJettyFallsBackToRawID(t *testing.T) {
	mockCatalog := &MockCatalogRepository{}
	mockCatalog.On("FindJettyPointByID", uint(7)).Return(nil, repository.ErrJettyPointNotFound)

	sender := newFakeSender()
	svc := NewService(sender, mockCatalog, "noreply@rhumuda.test", "admin@rhumuda.test", "does/not/exist.html")

	dto := sampleDTO()
	dto.JettyPoint = "7"
	require.NoError(t, svc.SendBookingEmails(dto))
	assert.Contains(t, sender.sent[0].Body, "Jetty: 7")
}

func TestReloadTemplate_SwitchesFromFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confirmation.html")

	sender := newFakeSender()
	svc := NewService(sender, catalogWithJetty(), "noreply@rhumuda.test", "admin@rhumuda.test", path)

	// No file on disk yet, construction falls back.
	require.Error(t, svc.ReloadTemplate())

	require.NoError(t, os.WriteFile(path, []byte(`<b>${bookingId}</b>`), 0644))
	require.NoError(t, svc.ReloadTemplate())

	require.NoError(t, svc.SendBookingEmails(sampleDTO()))
	assert.Equal(t, "<b>BK-1001</b>", sender.sent[0].Body)
}
