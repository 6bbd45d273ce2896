package models

import (
	"testing"
	"time"
)

func TestView_RendersTimestampsInDisplayZone(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	rec := Reservation{
		ID:        "rsv-1",
		SlotID:    3,
		StartAt:   time.Date(2026, 4, 1, 1, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2026, 4, 1, 1, 30, 0, 0, time.UTC),
		Status:    StatusConfirmed,
		Name:      "山田",
		CreatedBy: CreatedByUser,
		CreatedAt: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
	}

	view := rec.View(jst)
	if view.StartAt != "2026-04-01T10:00:00+09:00" {
		t.Errorf("Unexpected startAt rendering: %s", view.StartAt)
	}
	if view.EndAt != "2026-04-01T10:30:00+09:00" {
		t.Errorf("Unexpected endAt rendering: %s", view.EndAt)
	}
	if view.CanceledAt != "" {
		t.Errorf("Expected empty canceledAt, got %s", view.CanceledAt)
	}

	canceledAt := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	rec.Status = StatusCanceled
	rec.CanceledAt = &canceledAt
	view = rec.View(jst)
	if view.CanceledAt != "2026-03-31T21:00:00+09:00" {
		t.Errorf("Unexpected canceledAt rendering: %s", view.CanceledAt)
	}
}

func TestIsActive(t *testing.T) {
	cases := []struct {
		status string
		active bool
	}{
		{StatusConfirmed, true},
		{StatusBlocked, true},
		{StatusCanceled, false},
	}
	for _, tc := range cases {
		rec := Reservation{Status: tc.status}
		if rec.IsActive() != tc.active {
			t.Errorf("IsActive for %s: expected %v", tc.status, tc.active)
		}
	}
}
