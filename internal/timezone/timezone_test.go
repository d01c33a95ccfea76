package timezone

import (
	"testing"
	"time"
)

func TestToUTCFixedOffset(t *testing.T) {
	got, err := ToUTC("2026-03-10", 9, 0)
	if err != nil {
		t.Fatalf("ToUTC error: %v", err)
	}

	want := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRoundTrip(t *testing.T) {
	start, err := ParseDateTime("2026-03-10", "14:30")
	if err != nil {
		t.Fatalf("ParseDateTime error: %v", err)
	}

	back := ToLocal(start.UTC())
	if DateKey(back) != "2026-03-10" {
		t.Fatalf("expected date key 2026-03-10, got %s", DateKey(back))
	}
	if MinuteOfDay(back) != 14*60+30 {
		t.Fatalf("expected minute 870, got %d", MinuteOfDay(back))
	}
}

func TestWeekdayLocal(t *testing.T) {
	// 2026-03-08 é domingo; 23:30 locais ainda são domingo mesmo que já
	// seja segunda em UTC.
	late, err := ParseDateTime("2026-03-08", "23:30")
	if err != nil {
		t.Fatalf("ParseDateTime error: %v", err)
	}

	if late.UTC().Weekday() != time.Monday {
		t.Fatalf("expected UTC weekday to roll over to Monday")
	}
	if Weekday(late) != 0 {
		t.Fatalf("expected local weekday 0 (Sunday), got %d", Weekday(late))
	}
}

func TestFormatHM(t *testing.T) {
	cases := []struct {
		minute int
		want   string
	}{
		{0, "00:00"},
		{495, "08:15"},
		{1170, "19:30"},
	}

	for _, tc := range cases {
		if got := FormatHM(tc.minute); got != tc.want {
			t.Fatalf("FormatHM(%d): expected %s, got %s", tc.minute, tc.want, got)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("10/03/2026"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
	if _, err := ParseDateTime("2026-03-10", "25:99"); err == nil {
		t.Fatalf("expected error for invalid time")
	}
}
