package reservation

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	reservationRepo "parklot/database/repository/reservation"
	"parklot/models"
	"parklot/services/registry"
	"parklot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// slotLockStore holds one mutex per slot so that the read-evaluate-insert
// sequence is serialized per slot. Different slots proceed concurrently.
type slotLockStore struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func (s *slotLockStore) get(slotID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks == nil {
		s.locks = make(map[int]*sync.Mutex)
	}
	lock, exists := s.locks[slotID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[slotID] = lock
	}
	return lock
}

// DefaultReservationService is the production reservation service.
type DefaultReservationService struct {
	Repo     reservationRepo.ReservationRepository
	Engine   *Engine
	Registry *registry.SlotRegistry
	// Location is the display timezone; availability and admin listings
	// interpret calendar dates in it.
	Location *time.Location
	// AdminKeyHash (bcrypt) takes precedence over the plain AdminKey.
	AdminKey     string
	AdminKeyHash string

	slotLocks slotLockStore
}

func (s *DefaultReservationService) Availability(ctx context.Context, date string) (*AvailabilityResult, error) {
	dayStart, err := s.parseDay(date)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	records, listErr := s.Repo.ListRange(ctx, dayStart, dayEnd)
	if listErr != nil {
		return nil, s.internalError("failed to list reservations for availability", listErr)
	}
	return &AvailabilityResult{
		Date:    date,
		Slots:   s.Registry.Slots(),
		Records: records,
	}, nil
}

func (s *DefaultReservationService) Create(ctx context.Context, input models.CreateReservationInput) (*models.Reservation, error) {
	startAt, err := parseTimestamp("startAt", input.StartAt)
	if err != nil {
		return nil, err
	}
	endAt, err := parseTimestamp("endAt", input.EndAt)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, newValidationError("name is required")
	}
	if input.Contact == "" {
		return nil, newValidationError("contact is required")
	}

	now := time.Now().UTC()
	rec := &models.Reservation{
		ID:         uuid.New().String(),
		SlotID:     input.SlotID,
		StartAt:    startAt.UTC(),
		EndAt:      endAt.UTC(),
		Status:     models.StatusConfirmed,
		Name:       input.Name,
		Contact:    input.Contact,
		RoomNumber: input.RoomNumber,
		Note:       input.Note,
		CreatedBy:  models.CreatedByUser,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.admit(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *DefaultReservationService) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if err == reservationRepo.ErrNotFound {
			return nil, NewError(CodeNotFound, "Reservation not found")
		}
		return nil, s.internalError("failed to fetch reservation for cancel", err)
	}
	switch rec.Status {
	case models.StatusCanceled:
		return nil, NewError(CodeAlreadyCanceled, "Reservation is already canceled")
	case models.StatusBlocked:
		// Admin blocks have no user-facing cancel path.
		return nil, NewError(CodeNotFound, "Reservation not found")
	}

	canceledAt := time.Now().UTC()
	ok, err := s.Repo.MarkCanceled(ctx, id, canceledAt)
	if err != nil {
		return nil, s.internalError("failed to cancel reservation", err)
	}
	if !ok {
		// Lost the race against a concurrent cancel.
		return nil, NewError(CodeAlreadyCanceled, "Reservation is already canceled")
	}

	rec.Status = models.StatusCanceled
	rec.CanceledAt = &canceledAt
	rec.UpdatedAt = canceledAt
	return rec, nil
}

func (s *DefaultReservationService) AdminList(ctx context.Context, dateFrom, dateTo, adminKey string) ([]models.Reservation, error) {
	if err := s.authorize(adminKey); err != nil {
		return nil, err
	}
	from, err := s.parseDay(dateFrom)
	if err != nil {
		return nil, err
	}
	to, err := s.parseDay(dateTo)
	if err != nil {
		return nil, err
	}
	// dateTo is inclusive.
	records, listErr := s.Repo.ListRange(ctx, from, to.Add(24*time.Hour))
	if listErr != nil {
		return nil, s.internalError("failed to list reservations for admin", listErr)
	}
	return records, nil
}

func (s *DefaultReservationService) AdminBlock(ctx context.Context, input models.BlockSlotInput) (*models.Reservation, error) {
	if err := s.authorize(input.AdminKey); err != nil {
		return nil, err
	}
	startAt, err := parseTimestamp("startAt", input.StartAt)
	if err != nil {
		return nil, err
	}
	endAt, err := parseTimestamp("endAt", input.EndAt)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &models.Reservation{
		ID:        uuid.New().String(),
		SlotID:    input.SlotID,
		StartAt:   startAt.UTC(),
		EndAt:     endAt.UTC(),
		Status:    models.StatusBlocked,
		Note:      input.Reason,
		CreatedBy: models.CreatedByAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.admit(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// admit runs the engine against the slot's active records and commits the
// record, holding the slot lock across the read-evaluate-insert sequence.
func (s *DefaultReservationService) admit(ctx context.Context, rec *models.Reservation) error {
	lock := s.slotLocks.get(rec.SlotID)
	lock.Lock()
	defer lock.Unlock()

	cand := Candidate{SlotID: rec.SlotID, StartAt: rec.StartAt, EndAt: rec.EndAt}
	var existing []models.Reservation
	// Structural validation does not need store state; skip the query when
	// the interval is degenerate so the engine can still reject it first.
	if rec.EndAt.After(rec.StartAt) {
		var err error
		existing, err = s.Repo.ListForSlot(ctx, rec.SlotID, rec.StartAt, rec.EndAt, true)
		if err != nil {
			return s.internalError("failed to list reservations for conflict check", err)
		}
	}
	if err := s.Engine.Evaluate(cand, existing); err != nil {
		return err
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return s.internalError("failed to insert reservation", err)
	}
	return nil
}

// authorize validates the admin key. It runs before any payload validation
// so unauthenticated callers learn nothing about their input.
func (s *DefaultReservationService) authorize(adminKey string) error {
	unauthorized := NewError(CodeUnauthorized, "Invalid admin key")
	if adminKey == "" {
		return unauthorized
	}
	if s.AdminKeyHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.AdminKeyHash), []byte(adminKey)) != nil {
			return unauthorized
		}
		return nil
	}
	if s.AdminKey == "" {
		return unauthorized
	}
	if subtle.ConstantTimeCompare([]byte(s.AdminKey), []byte(adminKey)) != 1 {
		return unauthorized
	}
	return nil
}

// parseDay interprets a calendar date in the display timezone.
func (s *DefaultReservationService) parseDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.Location)
	if err != nil {
		return time.Time{}, newValidationError("Invalid date: %q (expected YYYY-MM-DD)", date)
	}
	return day, nil
}

func parseTimestamp(field, value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, newValidationError("Invalid %s: %q (expected RFC3339)", field, value)
	}
	return ts, nil
}

func (s *DefaultReservationService) internalError(msg string, err error) *Error {
	utils.GetLogger().Error(msg, zap.Error(err))
	return NewError(CodeInternal, "Internal error")
}
