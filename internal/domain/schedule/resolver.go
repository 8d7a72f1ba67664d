package schedule

import (
	"time"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

const DateLayout = "2006-01-02"

// ResolveOpenIntervals derives the open time ranges of one artist on one
// calendar date:
//
//  1. baseline = weekly rows matching the weekday (overlapping rows are
//     tolerated, the union absorbs them),
//  2. full-day blocks clear the baseline,
//  3. partial blocks subtract their sub-range,
//  4. extensions union their range back in — applied after blocks, so an
//     exceptional opening wins over a block on the same date,
//  5. result is merged and sorted.
//
// Rows with unparseable times are skipped; write-time validation is the
// place that rejects them.
func ResolveOpenIntervals(
	weekly []models.WeeklyAvailability,
	overrides []models.DateOverride,
	date time.Time,
) IntervalSet {

	weekday := int(date.Weekday())
	dateStr := date.Format(DateLayout)

	var open IntervalSet
	for _, row := range weekly {
		if row.Weekday != weekday {
			continue
		}
		iv, ok := clockInterval(row.StartTime, row.EndTime)
		if !ok {
			continue
		}
		open = open.Union(iv)
	}

	for _, ov := range overrides {
		if ov.Date != dateStr || !ov.IsBlocked {
			continue
		}
		if ov.StartTime == nil || ov.EndTime == nil {
			open = nil
			continue
		}
		iv, ok := clockInterval(*ov.StartTime, *ov.EndTime)
		if !ok {
			continue
		}
		open = open.Subtract(iv)
	}

	for _, ov := range overrides {
		if ov.Date != dateStr || ov.IsBlocked {
			continue
		}
		if ov.StartTime == nil || ov.EndTime == nil {
			continue
		}
		iv, ok := clockInterval(*ov.StartTime, *ov.EndTime)
		if !ok {
			continue
		}
		open = open.Union(iv)
	}

	return open.Normalize()
}

func clockInterval(startHM, endHM string) (Interval, bool) {
	start, err := ParseClock(startHM)
	if err != nil {
		return Interval{}, false
	}
	end, err := ParseClock(endHM)
	if err != nil {
		return Interval{}, false
	}
	iv := Interval{Start: start, End: end}
	return iv, !iv.Empty()
}
