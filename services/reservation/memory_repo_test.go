package reservation

import (
	"context"
	"sync"
	"time"

	reservationRepo "parklot/database/repository/reservation"
	"parklot/models"
)

// memoryReservationRepo is an in-memory ReservationRepository for tests.
// It mirrors the store contract: read-your-writes, duplicate-id guard and a
// conditional cancel update.
type memoryReservationRepo struct {
	mu      sync.RWMutex
	records map[string]*models.Reservation
}

func newMemoryReservationRepo() *memoryReservationRepo {
	return &memoryReservationRepo{records: make(map[string]*models.Reservation)}
}

func (m *memoryReservationRepo) Insert(_ context.Context, rec *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[rec.ID]; exists {
		return reservationRepo.ErrDuplicateID
	}
	clone := *rec
	m.records[rec.ID] = &clone
	return nil
}

func (m *memoryReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, exists := m.records[id]
	if !exists {
		return nil, reservationRepo.ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (m *memoryReservationRepo) ListForSlot(_ context.Context, slotID int, from, to time.Time, activeOnly bool) ([]models.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Reservation
	for _, rec := range m.records {
		if rec.SlotID != slotID {
			continue
		}
		if activeOnly && !rec.IsActive() {
			continue
		}
		if rec.StartAt.Before(to) && from.Before(rec.EndAt) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *memoryReservationRepo) ListRange(_ context.Context, from, to time.Time) ([]models.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Reservation
	for _, rec := range m.records {
		if rec.StartAt.Before(to) && from.Before(rec.EndAt) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *memoryReservationRepo) MarkCanceled(_ context.Context, id string, canceledAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, exists := m.records[id]
	if !exists || rec.Status != models.StatusConfirmed {
		return false, nil
	}
	rec.Status = models.StatusCanceled
	rec.CanceledAt = &canceledAt
	rec.UpdatedAt = canceledAt
	return true, nil
}
