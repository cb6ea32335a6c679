package domain

import (
	"math"
	"time"
)

// DateLabelLayout is the calendar-day label stored on submissions,
// e.g. "January 9, 2026".
const DateLabelLayout = "January 2, 2006"

// SubmittedAtLayout is the creation-instant label stored on submissions,
// e.g. "09 Jan 2026, 03:04 PM".
const SubmittedAtLayout = "02 Jan 2006, 03:04 PM"

// DateLabel formats t as a calendar-day label.
func DateLabel(t time.Time) string {
	return t.Format(DateLabelLayout)
}

// SubmittedAtLabel formats t as a creation-instant label.
func SubmittedAtLabel(t time.Time) string {
	return t.Format(SubmittedAtLayout)
}

// ParseDateLabel parses a calendar-day label back into a time.
func ParseDateLabel(label string) (time.Time, error) {
	return time.Parse(DateLabelLayout, label)
}

// WithinLastDays reports whether the date label lies within n whole days of
// now, in either direction. The difference is rounded up, so a label is "7
// days away" until a full 7x24h has elapsed. Unparsable labels are never
// within range (fail closed).
func WithinLastDays(label string, now time.Time, n int) bool {
	d, err := ParseDateLabel(label)
	if err != nil {
		return false
	}
	diff := now.Sub(d)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	return days <= n
}
