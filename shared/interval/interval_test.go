package interval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/interval"
)

func date(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]int
		b    [2]int
		want bool
	}{
		{
			name: "identical ranges overlap",
			a:    [2]int{10, 12},
			b:    [2]int{10, 12},
			want: true,
		},
		{
			name: "partial overlap at the end",
			a:    [2]int{10, 12},
			b:    [2]int{11, 13},
			want: true,
		},
		{
			name: "contained range overlaps",
			a:    [2]int{10, 20},
			b:    [2]int{12, 14},
			want: true,
		},
		{
			name: "single shared night",
			a:    [2]int{10, 12},
			b:    [2]int{11, 12},
			want: true,
		},
		{
			name: "back-to-back is not a conflict",
			a:    [2]int{10, 12},
			b:    [2]int{12, 14},
			want: false,
		},
		{
			name: "disjoint ranges",
			a:    [2]int{10, 12},
			b:    [2]int{20, 22},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interval.Overlaps(date(tt.a[0]), date(tt.a[1]), date(tt.b[0]), date(tt.b[1]))
			assert.Equal(t, tt.want, got)

			// The predicate is symmetric: swapping the ranges never changes
			// the answer.
			swapped := interval.Overlaps(date(tt.b[0]), date(tt.b[1]), date(tt.a[0]), date(tt.a[1]))
			assert.Equal(t, got, swapped)
		})
	}
}

func TestOverlapsRange(t *testing.T) {
	existing := interval.Range{Start: date(10), End: date(12)}

	assert.True(t, interval.OverlapsRange(date(11), date(13), existing))
	assert.False(t, interval.OverlapsRange(date(12), date(14), existing))
}
