package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackline-studio/tattoo-scheduler/internal/models"
)

func appointmentRow(date, start, end, status string) models.Appointment {
	return models.Appointment{
		ArtistID:  "artist-1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func slot(start, end string) Slot {
	return Slot{StartTime: start, EndTime: end}
}

func TestEnumerateSlotsFullMonday(t *testing.T) {
	open := ResolveOpenIntervals(mondayHours(), nil, monday)
	slots := EnumerateSlots(open, 60, 30)

	want := []Slot{
		slot("09:00", "10:00"), slot("09:30", "10:30"),
		slot("10:00", "11:00"), slot("10:30", "11:30"),
		slot("11:00", "12:00"), slot("11:30", "12:30"),
		slot("12:00", "13:00"),
		slot("15:00", "16:00"), slot("15:30", "16:30"),
		slot("16:00", "17:00"), slot("16:30", "17:30"),
		slot("17:00", "18:00"), slot("17:30", "18:30"),
		slot("18:00", "19:00"),
	}
	assert.Equal(t, want, slots)

	// Nothing straddles the break or the closing time.
	assert.NotContains(t, slots, slot("13:00", "14:00"))
	assert.NotContains(t, slots, slot("14:30", "15:30"))
	assert.NotContains(t, slots, slot("12:30", "13:30"))
}

func TestEnumerateSlotsNeverExceedsInterval(t *testing.T) {
	open := IntervalSet{{540, 655}} // 09:00-10:55
	for _, s := range EnumerateSlots(open, 45, 15) {
		end, err := ParseClock(s.EndTime)
		assert.NoError(t, err)
		assert.LessOrEqual(t, end, 655, s)
	}
}

func TestEnumerateSlotsDurationLongerThanInterval(t *testing.T) {
	open := IntervalSet{{540, 600}, {900, 1140}} // 1h morning, 4h afternoon
	slots := EnumerateSlots(open, 120, 30)

	// The short interval contributes nothing.
	assert.Equal(t, "15:00", slots[0].StartTime)
	for _, s := range slots {
		assert.NotEqual(t, "09:00", s.StartTime)
	}
}

func TestEnumerateSlotsGuards(t *testing.T) {
	open := IntervalSet{{540, 780}}
	assert.Nil(t, EnumerateSlots(open, 0, 30))
	assert.Nil(t, EnumerateSlots(open, 60, 0))
	assert.Nil(t, EnumerateSlots(nil, 60, 30))
}

// Scenario: a partial block 10:00-11:00 on the split Monday.
func TestSlotsAroundPartialBlock(t *testing.T) {
	overrides := []models.DateOverride{blockRow("2025-06-09", hm("10:00"), hm("11:00"))}
	open := ResolveOpenIntervals(mondayHours(), overrides, monday)
	slots := EnumerateSlots(open, 60, 30)

	assert.Contains(t, slots, slot("09:00", "10:00"))
	assert.Contains(t, slots, slot("11:00", "12:00"))

	assert.NotContains(t, slots, slot("09:30", "10:30"))
	assert.NotContains(t, slots, slot("10:00", "11:00"))
	assert.NotContains(t, slots, slot("10:30", "11:30"))
}

func TestFilterConflicts(t *testing.T) {
	open := ResolveOpenIntervals(mondayHours(), nil, monday)
	candidates := EnumerateSlots(open, 60, 30)

	appointments := []models.Appointment{
		appointmentRow("2025-06-09", "09:00", "10:00", "confirmed"),
	}
	got := FilterConflicts(candidates, appointments)

	assert.NotContains(t, got, slot("09:00", "10:00"))
	assert.NotContains(t, got, slot("09:30", "10:30"))

	// Touching is not a conflict.
	assert.Contains(t, got, slot("10:00", "11:00"))
}

func TestFilterConflictsIgnoresCancelled(t *testing.T) {
	candidates := []Slot{slot("09:00", "10:00")}
	appointments := []models.Appointment{
		appointmentRow("2025-06-09", "09:00", "10:00", "cancelled"),
	}
	assert.Equal(t, candidates, FilterConflicts(candidates, appointments))
}

func TestFilterConflictsSlotEndingAtAppointmentStart(t *testing.T) {
	candidates := []Slot{slot("08:00", "09:00"), slot("08:30", "09:30")}
	appointments := []models.Appointment{
		appointmentRow("2025-06-09", "09:00", "10:00", "pending"),
	}

	got := FilterConflicts(candidates, appointments)
	assert.Equal(t, []Slot{slot("08:00", "09:00")}, got)
}

func TestPipelineIsIdempotent(t *testing.T) {
	overrides := []models.DateOverride{blockRow("2025-06-09", hm("10:00"), hm("11:00"))}
	appointments := []models.Appointment{
		appointmentRow("2025-06-09", "15:00", "16:00", "confirmed"),
	}

	run := func() []Slot {
		open := ResolveOpenIntervals(mondayHours(), overrides, monday)
		return FilterConflicts(EnumerateSlots(open, 60, 30), appointments)
	}

	assert.Equal(t, run(), run())
}

// Booking one of the returned slots must exclude it, and everything
// overlapping it, on the next run.
func TestFilterConflictsRoundTrip(t *testing.T) {
	open := ResolveOpenIntervals(mondayHours(), nil, monday)
	candidates := EnumerateSlots(open, 60, 30)

	free := FilterConflicts(candidates, nil)
	assert.Equal(t, candidates, free)

	booked := appointmentRow("2025-06-09", free[2].StartTime, free[2].EndTime, "pending")
	after := FilterConflicts(candidates, []models.Appointment{booked})

	assert.NotContains(t, after, free[2])
	for _, s := range after {
		start, _ := ParseClock(s.StartTime)
		end, _ := ParseClock(s.EndTime)
		bs, _ := ParseClock(booked.StartTime)
		be, _ := ParseClock(booked.EndTime)
		assert.False(t, start < be && end > bs, "slot %v overlaps booked %s-%s", s, booked.StartTime, booked.EndTime)
	}
}

// A Sunday with no weekly rows but one extension: the coarse date
// disabler says closed while the resolver produces real slots. The
// picker check is an upper bound, not the source of truth.
func TestClosedSundayWithExtension(t *testing.T) {
	overrides := []models.DateOverride{extendRow("2025-06-08", "11:00", "15:00")}

	disabled := BuildDisabledDates(mondayHours(), overrides, sunday, 1)
	assert.Equal(t, []string{"2025-06-08"}, disabled)

	open := ResolveOpenIntervals(mondayHours(), overrides, sunday)
	slots := EnumerateSlots(open, 60, 30)
	assert.NotEmpty(t, slots)
	assert.Equal(t, slot("11:00", "12:00"), slots[0])
	assert.Equal(t, slot("14:00", "15:00"), slots[len(slots)-1])
}
