package geomag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		2024: true,
		2025: false,
		2000: true,
		2100: false,
		1900: false,
		2400: true,
	}
	for year, want := range cases {
		assert.Equal(t, want, IsLeapYear(year), "year %d", year)
	}
}

func TestDecimalYear(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"first day", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 2025.0},
		{"last day of leap year", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 2024 + 365.0/366.0},
		{"mid year", time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), 2025 + 182.0/365.0},
		{"century non-leap", time.Date(2100, 3, 1, 0, 0, 0, 0, time.UTC), 2100 + 59.0/365.0},
		{"400-year leap", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), 2000 + 60.0/366.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DecimalYear(tc.at), 1e-12)
		})
	}
}

func TestDecimalYearIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 5, 17, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 5, 17, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DecimalYear(morning), DecimalYear(night))
}

func TestDecimalYearUsesUTCFields(t *testing.T) {
	sydney := time.FixedZone("AEST", 10*60*60)
	// 05:00 on New Year's Day in Sydney is still 31 December in UTC.
	local := time.Date(2025, 1, 1, 5, 0, 0, 0, sydney)
	assert.InDelta(t, 2024+365.0/366.0, DecimalYear(local), 1e-12)
}
