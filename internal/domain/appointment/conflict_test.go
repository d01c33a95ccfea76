package appointment

import (
	"testing"
	"time"

	"github.com/navalha-app/agenda-api/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func TestOverlapsHalfOpen(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", at(9, 0), at(9, 30), at(10, 0), at(10, 30), false},
		{"touching edges is not conflict", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"partial overlap", at(9, 30), at(10, 30), at(10, 0), at(11, 0), true},
		{"containment", at(9, 0), at(12, 0), at(10, 0), at(10, 30), true},
		{"identical", at(10, 0), at(10, 30), at(10, 0), at(10, 30), true},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestHasAppointmentConflictIgnoresCancelled(t *testing.T) {
	existing := []models.Appointment{
		{StartTime: at(10, 0), EndTime: at(10, 30), Status: "cancelled"},
	}

	if HasAppointmentConflict(existing, at(10, 0), at(10, 30)) {
		t.Fatalf("cancelled appointment must not occupy the slot")
	}

	existing[0].Status = "scheduled"
	if !HasAppointmentConflict(existing, at(10, 0), at(10, 30)) {
		t.Fatalf("scheduled appointment must occupy the slot")
	}

	// completed e no_show continuam ocupando o histórico
	existing[0].Status = "completed"
	if !HasAppointmentConflict(existing, at(10, 0), at(10, 30)) {
		t.Fatalf("completed appointment must still occupy the slot")
	}
}

func TestHasBlockConflict(t *testing.T) {
	blocks := []models.UnavailabilityBlock{
		{StartTime: at(12, 0), EndTime: at(13, 0)},
	}

	if !HasBlockConflict(blocks, at(12, 30), at(13, 30)) {
		t.Fatalf("expected conflict with block")
	}
	if HasBlockConflict(blocks, at(13, 0), at(14, 0)) {
		t.Fatalf("interval starting at block end must be free")
	}
}
