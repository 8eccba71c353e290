// Package schedule holds the pure time arithmetic of the booking engine:
// slot-grid generation over a working-hours window and the working-hours /
// timezone policy. Nothing in this package performs I/O.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"office-booking/internal/pkg/errs"
)

// DefaultStepMinutes is the base occupancy grid. Slots of any requested
// duration are decomposed to this grid before overlap testing, so different
// durations can be compared against the same occupancy set.
const DefaultStepMinutes = 30

var ErrInvalidClock = errs.New("invalid clock value")

// ParseClock converts "H:mm" / "HH:mm" to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, errs.Wrap(ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errs.Wrap(ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errs.Wrap(ErrInvalidClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, errs.Wrap(ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "H:mm" (hour not padded,
// matching the slot labels shown to users).
func FormatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// FormatInterval renders a half-open [start, end) pair of minutes since
// midnight as a slot label.
func FormatInterval(start, end int) string {
	return FormatClock(start) + " - " + FormatClock(end)
}

// ParseInterval splits a "H:mm - H:mm" label back into minutes since
// midnight.
func ParseInterval(label string) (start, end int, err error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return 0, 0, errs.Wrap(ErrInvalidClock, label)
	}
	start, err = ParseClock(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseClock(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// GenerateIntervals produces the half-open slot labels of length stepMinutes
// between start and end ("H:mm" wall-clock values). When start is not aligned
// to a step boundary, the first label is a short rounding interval up to the
// next boundary, and it is emitted only if it still ends at or before end.
func GenerateIntervals(start, end string, stepMinutes int) ([]string, error) {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	from, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseClock(end)
	if err != nil {
		return nil, err
	}

	var labels []string
	cur := from
	if rem := cur % stepMinutes; rem != 0 {
		boundary := cur + stepMinutes - rem
		if boundary <= to {
			labels = append(labels, FormatInterval(cur, boundary))
		}
		cur = boundary
	}
	for cur+stepMinutes <= to {
		labels = append(labels, FormatInterval(cur, cur+stepMinutes))
		cur += stepMinutes
	}
	return labels, nil
}

// Overlaps reports whether two slot labels intersect as half-open ranges.
// Only the wall-clock values matter; both labels are anchored to the same day.
func Overlaps(a, b string) (bool, error) {
	aStart, aEnd, err := ParseInterval(a)
	if err != nil {
		return false, err
	}
	bStart, bEnd, err := ParseInterval(b)
	if err != nil {
		return false, err
	}
	return aStart < bEnd && aEnd > bStart, nil
}

// CompareClock orders two "H:mm" values: -1 when a is earlier, 1 when later,
// 0 when equal. Used to find the widest working-hours envelope across rooms.
func CompareClock(a, b string) (int, error) {
	av, err := ParseClock(a)
	if err != nil {
		return 0, err
	}
	bv, err := ParseClock(b)
	if err != nil {
		return 0, err
	}
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}
