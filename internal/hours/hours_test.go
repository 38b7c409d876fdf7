package hours

import (
	"testing"
	"time"
)

func fixedClock(t *testing.T, hour int, loc *time.Location) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2026, time.August, 28, hour, 30, 0, 0, loc)
	}
}

func TestStaffedBand(t *testing.T) {
	p, err := New(10, 21, "Europe/Minsk")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	loc, _ := time.LoadLocation("Europe/Minsk")

	cases := []struct {
		hour int
		want bool
	}{
		{5, false},
		{9, false},
		{10, true}, // start inclusive
		{15, true},
		{20, true},
		{21, false}, // end exclusive
		{22, false},
		{23, false},
	}
	for _, tc := range cases {
		got := p.WithClock(fixedClock(t, tc.hour, loc)).Staffed()
		if got != tc.want {
			t.Fatalf("hour %d: staffed = %v, want %v", tc.hour, got, tc.want)
		}
	}
}

func TestStaffedUsesReferenceTimezone(t *testing.T) {
	p, err := New(10, 21, "Europe/Minsk")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	// 23:00 UTC is 02:00 in Minsk (UTC+3): outside the band even though a
	// naive UTC check of start<=23 would also fail; pick 08:00 UTC = 11:00
	// Minsk to prove the conversion actually happens.
	clock := func() time.Time {
		return time.Date(2026, time.August, 28, 8, 0, 0, 0, time.UTC)
	}
	if !p.WithClock(clock).Staffed() {
		t.Fatal("08:00 UTC is 11:00 in Minsk and must be staffed")
	}
}

func TestInvertedBandAlwaysFalse(t *testing.T) {
	p, err := New(21, 10, "Europe/Minsk")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	loc, _ := time.LoadLocation("Europe/Minsk")
	for hour := 0; hour < 24; hour++ {
		if p.WithClock(fixedClock(t, hour, loc)).Staffed() {
			t.Fatalf("inverted band must never be staffed, hour %d", hour)
		}
	}
}

func TestBadTimezone(t *testing.T) {
	if _, err := New(10, 21, "Mars/Olympus"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
