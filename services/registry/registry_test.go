package registry

import "testing"

func TestNew_BuildsFixedSlotSet(t *testing.T) {
	reg := New(16, "枠")

	slots := reg.Slots()
	if len(slots) != 16 {
		t.Fatalf("Expected 16 slots, got %d", len(slots))
	}
	if slots[0].SlotID != 1 || slots[0].Name != "枠1" {
		t.Errorf("Unexpected first slot: %+v", slots[0])
	}
	if slots[15].SlotID != 16 || slots[15].Name != "枠16" {
		t.Errorf("Unexpected last slot: %+v", slots[15])
	}
}

func TestExists(t *testing.T) {
	reg := New(16, "枠")

	for id := 1; id <= 16; id++ {
		if !reg.Exists(id) {
			t.Errorf("Expected slot %d to exist", id)
		}
	}
	for _, id := range []int{0, -1, 17, 99} {
		if reg.Exists(id) {
			t.Errorf("Expected slot %d to not exist", id)
		}
	}
}

func TestSlots_ReturnsACopy(t *testing.T) {
	reg := New(3, "枠")
	slots := reg.Slots()
	slots[0].Name = "mutated"

	if reg.Slots()[0].Name != "枠1" {
		t.Error("Expected registry to be immune to caller mutation")
	}
}
