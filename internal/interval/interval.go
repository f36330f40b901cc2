// Package interval provides half-open time interval predicates used by the
// admission checks. An interval covers [Start, End); two intervals that merely
// touch at an endpoint do not overlap.
package interval

import "time"

type Interval struct {
	Start time.Time
	End   time.Time
}

// New returns the interval [start, end).
func New(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// IsValid reports whether the interval is non-empty, i.e. End is strictly
// after Start.
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps reports whether a and b share any instant. Touching intervals
// (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.End.After(b.Start) && a.Start.Before(b.End)
}

// Contains reports whether inner lies entirely within outer. An interval
// contains itself.
func Contains(outer, inner Interval) bool {
	return !inner.Start.Before(outer.Start) && !inner.End.After(outer.End)
}
