package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "13:30", want: 810},
		{in: "23:59", want: 1439},
		{in: "", wantErr: true},
		{in: "9:00:00", wantErr: true},
		{in: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.in, FormatClock(got), tt.in)
	}
}

func TestIntervalSetUnion(t *testing.T) {
	tests := []struct {
		name string
		set  IntervalSet
		add  Interval
		want IntervalSet
	}{
		{
			name: "into empty set",
			set:  nil,
			add:  Interval{540, 780},
			want: IntervalSet{{540, 780}},
		},
		{
			name: "disjoint keeps both sorted",
			set:  IntervalSet{{900, 1140}},
			add:  Interval{540, 780},
			want: IntervalSet{{540, 780}, {900, 1140}},
		},
		{
			name: "overlap merges",
			set:  IntervalSet{{540, 780}},
			add:  Interval{720, 840},
			want: IntervalSet{{540, 840}},
		},
		{
			name: "touching merges",
			set:  IntervalSet{{540, 780}},
			add:  Interval{780, 900},
			want: IntervalSet{{540, 900}},
		},
		{
			name: "bridges two intervals",
			set:  IntervalSet{{540, 660}, {720, 840}},
			add:  Interval{600, 750},
			want: IntervalSet{{540, 840}},
		},
		{
			name: "empty range is a no-op",
			set:  IntervalSet{{540, 780}},
			add:  Interval{600, 600},
			want: IntervalSet{{540, 780}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Union(tt.add))
		})
	}
}

func TestIntervalSetSubtract(t *testing.T) {
	tests := []struct {
		name string
		set  IntervalSet
		sub  Interval
		want IntervalSet
	}{
		{
			name: "splits in two",
			set:  IntervalSet{{540, 780}},
			sub:  Interval{600, 660},
			want: IntervalSet{{540, 600}, {660, 780}},
		},
		{
			name: "trims the head",
			set:  IntervalSet{{540, 780}},
			sub:  Interval{480, 600},
			want: IntervalSet{{600, 780}},
		},
		{
			name: "trims the tail",
			set:  IntervalSet{{540, 780}},
			sub:  Interval{720, 840},
			want: IntervalSet{{540, 720}},
		},
		{
			name: "swallows whole interval",
			set:  IntervalSet{{540, 780}, {900, 1140}},
			sub:  Interval{500, 800},
			want: IntervalSet{{900, 1140}},
		},
		{
			name: "outside every interval is a no-op",
			set:  IntervalSet{{540, 780}},
			sub:  Interval{800, 860},
			want: IntervalSet{{540, 780}},
		},
		{
			name: "touching boundary is a no-op",
			set:  IntervalSet{{540, 780}},
			sub:  Interval{780, 840},
			want: IntervalSet{{540, 780}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Subtract(tt.sub))
		})
	}
}

func TestNormalizeToleratesOverlappingRows(t *testing.T) {
	set := IntervalSet{{600, 720}, {540, 660}, {660, 780}}
	assert.Equal(t, IntervalSet{{540, 780}}, set.Normalize())
}
