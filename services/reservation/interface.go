package reservation

import (
	"context"

	"parklot/models"
)

// AvailabilityResult carries one calendar day's registry plus every record
// (any status) intersecting that day.
type AvailabilityResult struct {
	Date    string
	Slots   []models.Slot
	Records []models.Reservation
}

// ReservationService defines the operations of the reservation engine.
// Failures are returned as *Error values carrying a stable code.
type ReservationService interface {
	// Availability is read-only and requires no authorization.
	Availability(ctx context.Context, date string) (*AvailabilityResult, error)

	// Create admits and persists a CONFIRMED user reservation.
	Create(ctx context.Context, input models.CreateReservationInput) (*models.Reservation, error)

	// Cancel moves a CONFIRMED record to CANCELED. A second cancel of the
	// same id fails with ALREADY_CANCELED.
	Cancel(ctx context.Context, id string) (*models.Reservation, error)

	// AdminList returns records of any status intersecting the inclusive
	// [dateFrom, dateTo] day range. Requires the admin key.
	AdminList(ctx context.Context, dateFrom, dateTo, adminKey string) ([]models.Reservation, error)

	// AdminBlock admits and persists a BLOCKED interval. Requires the admin
	// key; authorization runs before any validation.
	AdminBlock(ctx context.Context, input models.BlockSlotInput) (*models.Reservation, error)
}
