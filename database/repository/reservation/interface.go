package reservationRepo

import (
	"context"
	"errors"
	"time"

	"parklot/models"
)

// ErrNotFound is returned when no reservation matches the given id.
var ErrNotFound = errors.New("reservation not found")

// ErrDuplicateID is returned when an insert collides on the id field.
var ErrDuplicateID = errors.New("duplicate reservation id")

// ReservationRepository defines the interface for reservation data access.
// Reads reflect all committed records at call time.
type ReservationRepository interface {
	// Insert stores a new record. Fails with ErrDuplicateID on id collision.
	Insert(ctx context.Context, rec *models.Reservation) error

	// GetByID fetches a single record, ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)

	// ListForSlot returns the slot's records whose interval intersects
	// [from, to). With activeOnly set, CANCELED records are excluded.
	ListForSlot(ctx context.Context, slotID int, from, to time.Time, activeOnly bool) ([]models.Reservation, error)

	// ListRange returns records of any status, for all slots, whose interval
	// intersects [from, to).
	ListRange(ctx context.Context, from, to time.Time) ([]models.Reservation, error)

	// MarkCanceled atomically moves a CONFIRMED record to CANCELED and
	// stamps canceledAt. It reports false when the record was not in the
	// CONFIRMED state, so concurrent cancels resolve to exactly one true.
	MarkCanceled(ctx context.Context, id string, canceledAt time.Time) (bool, error)
}
