package booking

import (
	"errors"
	"fmt"

	"rhumuda-booking/logger"
	bookingService "rhumuda-booking/services/booking"
	"rhumuda-booking/types"
	bookingTypes "rhumuda-booking/types/booking"

	"github.com/gofiber/fiber/v2"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Service *bookingService.Service
}

// NewBookingController creates a new booking controller
func NewBookingController(svc *bookingService.Service) *BookingController {
	return &BookingController{Service: svc}
}

// Store creates a new booking from the public inquiry form
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Invalid request body", err.Error()))
	}

	created, err := bc.Service.Create(req)
	if err != nil {
		return renderBookingError(c, err)
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", created.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    created,
	})
}

// Update overwrites the mutable fields of an existing booking
func (bc *BookingController) Update(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var req bookingTypes.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Invalid request body", err.Error()))
	}

	updated, err := bc.Service.Update(bookingID, req)
	if err != nil {
		return renderBookingError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully",
		Data:    updated,
	})
}

// Show returns the booking projected to its DTO form
func (bc *BookingController) Show(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Invalid booking ID", "Booking ID cannot be empty"))
	}

	dto, err := bc.Service.GetByBookingID(bookingID)
	if err != nil {
		return renderBookingError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking retrieved successfully",
		Data:    dto,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets the booking status to a recognized value
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Invalid request body", err.Error()))
	}

	if err := bc.Service.UpdateStatus(bookingID, req.Status); err != nil {
		return renderBookingError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated successfully",
	})
}

// Submit runs the submit workflow: transition to PENDING, then email the
// customer and the administrator. A delivery failure is reported but the
// committed transition stands.
func (bc *BookingController) Submit(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	dto, err := bc.Service.Submit(bookingID)
	if err != nil {
		if bookingService.IsDelivery(err) {
			return c.Status(fiber.StatusBadGateway).JSON(
				types.NewApiError(fiber.StatusBadGateway,
					"Booking submitted but notification delivery failed", err.Error()))
		}
		return renderBookingError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking submitted successfully",
		Data:    dto,
	})
}

func renderBookingError(c *fiber.Ctx, err error) error {
	var validationErr bookingService.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Validation failed", validationErr.Violations...))
	}

	var invalidID bookingService.InvalidIDError
	if errors.As(err, &invalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Invalid ID format", invalidID.Error()))
	}

	var refErr bookingService.ReferenceError
	if errors.As(err, &refErr) {
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Error creating booking", refErr.Error()))
	}

	var statusErr bookingService.InvalidStatusError
	if errors.As(err, &statusErr) {
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Invalid status", statusErr.Error()))
	}

	var conflictErr bookingService.ConflictError
	if errors.As(err, &conflictErr) {
		return c.Status(fiber.StatusConflict).JSON(
			types.NewApiError(fiber.StatusConflict, "Duplicate booking ID", conflictErr.Error()))
	}

	var notFoundErr bookingService.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(
			types.NewApiError(fiber.StatusNotFound, "Booking not found", notFoundErr.Error()))
	}

	// Detail is logged where the failure happened; the caller only sees
	// an opaque message.
	return c.Status(fiber.StatusInternalServerError).JSON(
		types.NewApiError(fiber.StatusInternalServerError, "Internal server error"))
}
