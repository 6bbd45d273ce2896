package models

import "time"

// Reservation status values. CONFIRMED and BLOCKED participate in overlap
// checks; CANCELED records are kept for audit only.
const (
	StatusConfirmed = "CONFIRMED"
	StatusCanceled  = "CANCELED"
	StatusBlocked   = "BLOCKED"
)

// Creator values for the CreatedBy field.
const (
	CreatedByUser  = "USER"
	CreatedByAdmin = "ADMIN"
)

// Reservation represents a reservation or an admin block on a parking slot.
// Both share one lifecycle; Status discriminates.
type Reservation struct {
	ID         string     `bson:"id" json:"id"`                     // Unique identifier (UUID), assigned at creation
	SlotID     int        `bson:"slot_id" json:"slotId"`            // Slot being reserved
	StartAt    time.Time  `bson:"start_at" json:"startAt"`          // Interval start (half-open [StartAt, EndAt))
	EndAt      time.Time  `bson:"end_at" json:"endAt"`              // Interval end
	Status     string     `bson:"status" json:"status"`             // CONFIRMED, CANCELED or BLOCKED
	Name       string     `bson:"name" json:"name"`                 // Reserver's name; optional for BLOCKED
	Contact    string     `bson:"contact,omitempty" json:"contact,omitempty"`
	RoomNumber string     `bson:"room_number,omitempty" json:"roomNumber,omitempty"`
	Note       string     `bson:"note,omitempty" json:"note,omitempty"`
	CreatedBy  string     `bson:"created_by" json:"createdBy"` // USER or ADMIN
	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updatedAt"`
	CanceledAt *time.Time `bson:"canceled_at,omitempty" json:"canceledAt,omitempty"`
}

// IsActive reports whether the record holds its interval against new
// candidates.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed || r.Status == StatusBlocked
}

// ReservationView is the wire representation of a Reservation, with
// timestamps rendered in the display timezone.
type ReservationView struct {
	ID         string `json:"id"`
	SlotID     int    `json:"slotId"`
	StartAt    string `json:"startAt"`
	EndAt      string `json:"endAt"`
	Status     string `json:"status"`
	Name       string `json:"name"`
	Contact    string `json:"contact,omitempty"`
	RoomNumber string `json:"roomNumber,omitempty"`
	Note       string `json:"note,omitempty"`
	CreatedBy  string `json:"createdBy"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	CanceledAt string `json:"canceledAt,omitempty"`
}

// View renders the reservation for API responses in the given location.
func (r *Reservation) View(loc *time.Location) ReservationView {
	view := ReservationView{
		ID:         r.ID,
		SlotID:     r.SlotID,
		StartAt:    r.StartAt.In(loc).Format(time.RFC3339),
		EndAt:      r.EndAt.In(loc).Format(time.RFC3339),
		Status:     r.Status,
		Name:       r.Name,
		Contact:    r.Contact,
		RoomNumber: r.RoomNumber,
		Note:       r.Note,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt.In(loc).Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.In(loc).Format(time.RFC3339),
	}
	if r.CanceledAt != nil {
		view.CanceledAt = r.CanceledAt.In(loc).Format(time.RFC3339)
	}
	return view
}

// ReservationViews maps a batch of records to their wire form.
func ReservationViews(records []Reservation, loc *time.Location) []ReservationView {
	views := make([]ReservationView, 0, len(records))
	for i := range records {
		views = append(views, records[i].View(loc))
	}
	return views
}
