package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

func TestBuildDisabledDates(t *testing.T) {
	weekly := []models.WeeklyAvailability{
		weeklyRow(1, "09:00", "13:00"), // Monday
		weeklyRow(3, "09:00", "13:00"), // Wednesday
	}
	overrides := []models.DateOverride{
		blockRow("2025-06-09", nil, nil),             // Monday, full day
		blockRow("2025-06-11", hm("10:00"), hm("11:00")), // Wednesday, partial
	}

	// One week starting Monday 2025-06-09.
	disabled := BuildDisabledDates(weekly, overrides, monday, 7)

	want := []string{
		"2025-06-09", // fully blocked despite weekly hours
		"2025-06-10", // Tuesday, no weekly rule
		"2025-06-12",
		"2025-06-13",
		"2025-06-14",
		"2025-06-15",
	}
	assert.Equal(t, want, disabled)

	// A partial block alone never disables the date.
	assert.NotContains(t, disabled, "2025-06-11")
}

func TestBuildDisabledDatesNoWeeklyRows(t *testing.T) {
	disabled := BuildDisabledDates(nil, nil, monday, 3)
	assert.Equal(t, []string{"2025-06-09", "2025-06-10", "2025-06-11"}, disabled)
}

func TestBuildDisabledDatesHorizonLength(t *testing.T) {
	// All weekdays open, nothing blocked: nothing disabled over the
	// whole 90-day horizon.
	var weekly []models.WeeklyAvailability
	for wd := 0; wd < 7; wd++ {
		weekly = append(weekly, weeklyRow(wd, "09:00", "18:00"))
	}

	disabled := BuildDisabledDates(weekly, nil, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), DisabledHorizonDays)
	assert.Empty(t, disabled)
}
