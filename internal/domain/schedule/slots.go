package schedule

import "github.com/blackline-studio/tattoo-scheduler/internal/models"

// DefaultStepMinutes is the candidate-start grid. It is independent of
// the service duration: with a step smaller than the duration the
// candidates overlap on purpose, giving the client more start choices.
const DefaultStepMinutes = 30

type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// EnumerateSlots walks each open interval in fixed steps and emits every
// slot of durationMinutes that fully fits inside the interval. Output is
// ordered by interval, then chronologically within an interval.
func EnumerateSlots(open IntervalSet, durationMinutes, stepMinutes int) []Slot {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return nil
	}

	var slots []Slot
	for _, iv := range open {
		for cur := iv.Start; cur+durationMinutes <= iv.End; cur += stepMinutes {
			slots = append(slots, Slot{
				StartTime: FormatClock(cur),
				EndTime:   FormatClock(cur + durationMinutes),
			})
		}
	}
	return slots
}

// FilterConflicts drops candidates that overlap a non-cancelled
// appointment. A slot ending exactly when an appointment starts (or
// vice versa) is touching, not overlapping, and is kept. Order is
// preserved.
func FilterConflicts(candidates []Slot, appointments []models.Appointment) []Slot {
	var busy []Interval
	for _, ap := range appointments {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		iv, ok := clockInterval(ap.StartTime, ap.EndTime)
		if !ok {
			continue
		}
		busy = append(busy, iv)
	}

	out := make([]Slot, 0, len(candidates))
	for _, slot := range candidates {
		iv, ok := clockInterval(slot.StartTime, slot.EndTime)
		if !ok {
			continue
		}
		conflict := false
		for _, b := range busy {
			if iv.Overlaps(b) {
				conflict = true
				break
			}
		}
		if !conflict {
			out = append(out, slot)
		}
	}
	return out
}
