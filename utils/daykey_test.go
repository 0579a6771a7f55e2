package utils

import (
	"testing"
	"time"
)

func TestResolveDayKey(t *testing.T) {
	// 2025-03-10 18:30 UTC is 2025-03-11 00:00 in Colombo (UTC+5:30)
	tests := []struct {
		name     string
		t        time.Time
		timezone string
		want     string
	}{
		{
			name:     "utc default when timezone empty",
			t:        time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
			timezone: "",
			want:     "2025-03-10",
		},
		{
			name:     "unknown zone falls back to utc",
			t:        time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			timezone: "Not/AZone",
			want:     "2025-03-10",
		},
		{
			name:     "iana zone shifts the civil day",
			t:        time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
			timezone: "Asia/Colombo",
			want:     "2025-03-11",
		},
		{
			name:     "iana zone same day before local midnight",
			t:        time.Date(2025, 3, 10, 18, 29, 0, 0, time.UTC),
			timezone: "Asia/Colombo",
			want:     "2025-03-10",
		},
		{
			name:     "negative offset zone",
			t:        time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC),
			timezone: "America/New_York", // UTC-4 on this date
			want:     "2025-03-10",
		},
		{
			name:     "fixed offset with colon",
			t:        time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
			timezone: "+05:30",
			want:     "2025-03-11",
		},
		{
			name:     "fixed offset without colon",
			t:        time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC),
			timezone: "-0800",
			want:     "2025-03-10",
		},
		{
			name:     "zero-padded months and days",
			t:        time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC),
			timezone: "",
			want:     "2025-01-02",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveDayKey(tc.t, tc.timezone); got != tc.want {
				t.Errorf("ResolveDayKey(%v, %q) = %q, want %q", tc.t, tc.timezone, got, tc.want)
			}
		})
	}
}

func TestResolveDayKey_StableWithinDay(t *testing.T) {
	// Any two timestamps on the same civil day resolve to the same key,
	// and adjacent days differ even right at the boundary.
	loc, err := time.LoadLocation("Asia/Colombo")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}

	lateNight := time.Date(2025, 6, 1, 23, 59, 59, 0, loc)
	earlyMorning := time.Date(2025, 6, 1, 0, 0, 1, 0, loc)
	nextDay := time.Date(2025, 6, 2, 0, 0, 1, 0, loc)

	if a, b := ResolveDayKey(lateNight, "Asia/Colombo"), ResolveDayKey(earlyMorning, "Asia/Colombo"); a != b {
		t.Errorf("same civil day resolved differently: %q vs %q", a, b)
	}
	if a, b := ResolveDayKey(lateNight, "Asia/Colombo"), ResolveDayKey(nextDay, "Asia/Colombo"); a == b {
		t.Errorf("adjacent days resolved to the same key %q", a)
	}
}

func TestParseFixedOffset(t *testing.T) {
	for _, bad := range []string{"", "0530", "+5", "+99:00", "+05:75", "banana"} {
		if _, ok := parseFixedOffset(bad); ok {
			t.Errorf("parseFixedOffset(%q) accepted invalid input", bad)
		}
	}
}
