package schedule

import (
	"time"

	"office-booking/internal/pkg/errs"
)

var ErrUnknownTimezone = errs.New("unknown timezone")

// Policy evaluates working-hours, weekend and past-date rules for one office.
// Every "now" comparison takes the instant as a parameter; the policy itself
// holds no clock.
type Policy struct {
	loc         *time.Location
	workingDays map[time.Weekday]bool
}

func NewPolicy(timezone string, workingDays []time.Weekday) (Policy, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Policy{}, errs.Mark(err, ErrUnknownTimezone)
	}
	days := make(map[time.Weekday]bool, len(workingDays))
	for _, d := range workingDays {
		days[d] = true
	}
	return Policy{loc: loc, workingDays: days}, nil
}

func (p Policy) Location() *time.Location {
	return p.loc
}

// IsWeekend reports whether the calendar day falls outside the office's
// working weekdays.
func (p Policy) IsWeekend(date time.Time) bool {
	return !p.workingDays[date.Weekday()]
}

// IsPastDate compares calendar days in the office's timezone, not the
// server's: a date is past only once the office itself has moved on to the
// next day.
func (p Policy) IsPastDate(date time.Time, now time.Time) bool {
	local := now.In(p.loc)
	y1, m1, d1 := date.Date()
	y2, m2, d2 := local.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// IsToday reports whether the calendar day is the office's current day.
func (p Policy) IsToday(date time.Time, now time.Time) bool {
	local := now.In(p.loc)
	y1, m1, d1 := date.Date()
	y2, m2, d2 := local.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// LocalToUTC resolves an office-local wall-clock time on the given calendar
// day to a UTC instant. Going through the IANA zone keeps DST transitions
// correct.
func (p Policy) LocalToUTC(date time.Time, clock string) (time.Time, error) {
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, p.loc).UTC(), nil
}

// UTCToLocal converts an instant into the office's wall clock.
func (p Policy) UTCToLocal(t time.Time) time.Time {
	return t.In(p.loc)
}

// LocalClock renders an instant as the office's "H:mm" wall-clock value.
func (p Policy) LocalClock(t time.Time) string {
	local := t.In(p.loc)
	return FormatClock(local.Hour()*60 + local.Minute())
}

// WithinWorkingHours checks a slot label against an [open, close) window:
// the slot must start at or after open and strictly before close.
func WithinWorkingHours(slot, open, close string) (bool, error) {
	start, _, err := ParseInterval(slot)
	if err != nil {
		return false, err
	}
	openMin, err := ParseClock(open)
	if err != nil {
		return false, err
	}
	closeMin, err := ParseClock(close)
	if err != nil {
		return false, err
	}
	return start >= openMin && start < closeMin, nil
}

// RoundUpToStep rounds an instant forward to the next step boundary, so that
// when "now" falls mid-slot only fully-future slots are offered. Instants
// already on a boundary are returned unchanged.
func RoundUpToStep(t time.Time, step time.Duration) time.Time {
	if step <= 0 {
		step = DefaultStepMinutes * time.Minute
	}
	rounded := t.Truncate(step)
	if rounded.Equal(t) {
		return t
	}
	return rounded.Add(step)
}
