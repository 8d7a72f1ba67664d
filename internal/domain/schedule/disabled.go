package schedule

import (
	"time"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

// DisabledHorizonDays is how far ahead the date picker looks.
const DisabledHorizonDays = 90

// BuildDisabledDates flags dates the picker should grey out: a full-day
// block, or a weekday without any weekly rule.
//
// This check is deliberately coarser than ResolveOpenIntervals. It
// ignores partial blocks, extensions that open an otherwise-closed day,
// and appointments filling all capacity; it is a cheap upper bound for
// the calendar, not a bookability guarantee.
func BuildDisabledDates(
	weekly []models.WeeklyAvailability,
	overrides []models.DateOverride,
	from time.Time,
	horizonDays int,
) []string {

	openWeekdays := make(map[int]bool, 7)
	for _, row := range weekly {
		openWeekdays[row.Weekday] = true
	}

	fullDayBlocked := make(map[string]bool)
	for _, ov := range overrides {
		if ov.IsBlocked && ov.StartTime == nil && ov.EndTime == nil {
			fullDayBlocked[ov.Date] = true
		}
	}

	var disabled []string
	for i := 0; i < horizonDays; i++ {
		day := from.AddDate(0, 0, i)
		dateStr := day.Format(DateLayout)

		if fullDayBlocked[dateStr] || !openWeekdays[int(day.Weekday())] {
			disabled = append(disabled, dateStr)
		}
	}
	return disabled
}
