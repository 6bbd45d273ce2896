package reservation

import (
	"time"

	"parklot/models"
	"parklot/services/registry"
)

const (
	// Reservations snap to this granularity.
	slotIntervalMinutes = 30
	// A single reservation may cover at most one day.
	maxDurationMinutes = 1440
)

// Candidate is a proposed reservation interval, before any record exists.
type Candidate struct {
	SlotID  int
	StartAt time.Time
	EndAt   time.Time
}

// Engine decides whether a candidate interval may be admitted against the
// current record set for its slot. It never mutates state; committing an
// admitted candidate is the caller's job.
type Engine struct {
	Registry *registry.SlotRegistry
}

// Evaluate runs the admission checks in order and returns the first failure,
// or nil when the candidate may be committed. The check order is load-bearing:
// callers map each failure to a distinct user-facing message.
func (e *Engine) Evaluate(cand Candidate, existing []models.Reservation) error {
	if !alignedToInterval(cand.StartAt) || !alignedToInterval(cand.EndAt) {
		return newValidationError("startAt and endAt must be aligned to %d minutes", slotIntervalMinutes)
	}
	if !cand.EndAt.After(cand.StartAt) {
		return newValidationError("endAt must be after startAt")
	}
	if cand.EndAt.Sub(cand.StartAt) > maxDurationMinutes*time.Minute {
		return newValidationError("Duration is out of range (must be at most %d minutes)", maxDurationMinutes)
	}
	if !e.Registry.Exists(cand.SlotID) {
		return newValidationError("Unknown slotId: %d", cand.SlotID)
	}

	for i := range existing {
		rec := &existing[i]
		if rec.SlotID != cand.SlotID || !rec.IsActive() {
			continue
		}
		// Half-open interval overlap: [a, b) meets [c, d) iff a < d && c < b.
		if rec.StartAt.Before(cand.EndAt) && cand.StartAt.Before(rec.EndAt) {
			return NewError(CodeConflict, "The requested time range conflicts with an existing reservation")
		}
	}
	return nil
}

// alignedToInterval reports whether t sits exactly on a slot boundary.
// Alignment is offset-independent because all supported zone offsets are a
// whole multiple of the slot interval.
func alignedToInterval(t time.Time) bool {
	if t.Nanosecond() != 0 {
		return false
	}
	return t.Unix()%(slotIntervalMinutes*60) == 0
}
