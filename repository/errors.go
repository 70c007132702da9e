package repository

import "errors"

var (
	// ErrDuplicateBookingID is returned when a create collides with an
	// existing business booking id.
	ErrDuplicateBookingID = errors.New("booking id already exists")

	ErrBookingNotFound    = errors.New("booking not found")
	ErrJettyPointNotFound = errors.New("jetty point not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrAddOnNotFound      = errors.New("add-on not found")
	ErrCategoryNotFound   = errors.New("package category not found")
)
