package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

// Overlaps reports strict overlap. Touching boundaries do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// IntervalSet holds disjoint intervals sorted by start time.
type IntervalSet []Interval

// Union adds iv to the set, merging with anything it touches or overlaps.
func (s IntervalSet) Union(iv Interval) IntervalSet {
	if iv.Empty() {
		return s
	}
	out := make(IntervalSet, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, iv)
	return out.Normalize()
}

// Subtract removes iv from the set, splitting an interval into up to
// two remaining pieces. A range outside the set is a no-op.
func (s IntervalSet) Subtract(iv Interval) IntervalSet {
	if iv.Empty() {
		return s
	}
	var out IntervalSet
	for _, cur := range s {
		if !cur.Overlaps(iv) {
			out = append(out, cur)
			continue
		}
		if cur.Start < iv.Start {
			out = append(out, Interval{Start: cur.Start, End: iv.Start})
		}
		if cur.End > iv.End {
			out = append(out, Interval{Start: iv.End, End: cur.End})
		}
	}
	return out
}

// Normalize sorts ascending and merges intervals that touch or overlap.
func (s IntervalSet) Normalize() IntervalSet {
	if len(s) == 0 {
		return s
	}
	sorted := make(IntervalSet, 0, len(s))
	for _, iv := range s {
		if !iv.Empty() {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var out IntervalSet
	for _, iv := range sorted {
		if len(out) > 0 && iv.Start <= out[len(out)-1].End {
			if iv.End > out[len(out)-1].End {
				out[len(out)-1].End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
