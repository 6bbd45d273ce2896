package registry

import (
	"fmt"

	"parklot/models"
)

// SlotRegistry is the fixed set of bookable parking slots. It is built once
// at startup and never mutated.
type SlotRegistry struct {
	slots []models.Slot
	byID  map[int]models.Slot
}

// New builds a registry of count slots numbered 1..count, named with the
// given display prefix (e.g. "枠3").
func New(count int, namePrefix string) *SlotRegistry {
	reg := &SlotRegistry{
		slots: make([]models.Slot, 0, count),
		byID:  make(map[int]models.Slot, count),
	}
	for i := 1; i <= count; i++ {
		slot := models.Slot{
			SlotID: i,
			Name:   fmt.Sprintf("%s%d", namePrefix, i),
		}
		reg.slots = append(reg.slots, slot)
		reg.byID[slot.SlotID] = slot
	}
	return reg
}

// Slots returns all slots in id order.
func (r *SlotRegistry) Slots() []models.Slot {
	out := make([]models.Slot, len(r.slots))
	copy(out, r.slots)
	return out
}

// Exists reports whether slotID belongs to the registry.
func (r *SlotRegistry) Exists(slotID int) bool {
	_, ok := r.byID[slotID]
	return ok
}
