// Package interval holds the single half-open date-range overlap predicate.
// Every overlap decision in the codebase (availability reads, the in-lock
// re-check on the booking write path, block checks) must go through
// Overlaps; a second implementation is how overlap bugs are born.
package interval

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at least
// one night. Half-open semantics: a checkout day equal to the next check-in
// day is not a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsRange is a convenience form for callers holding a candidate range
// and an existing commitment.
func OverlapsRange(checkIn, checkOut time.Time, existing Range) bool {
	return Overlaps(checkIn, checkOut, existing.Start, existing.End)
}

// Range is a half-open [Start, End) date range.
type Range struct {
	Start time.Time
	End   time.Time
}
