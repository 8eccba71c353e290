//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"office-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayPolicy(t *testing.T, tz string) schedule.Policy {
	t.Helper()
	pol, err := schedule.NewPolicy(tz, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	})
	require.NoError(t, err)
	return pol
}

func TestNewPolicyUnknownTimezone(t *testing.T) {
	_, err := schedule.NewPolicy("Mars/Olympus", nil)
	assert.ErrorIs(t, err, schedule.ErrUnknownTimezone)
}

func TestIsWeekend(t *testing.T) {
	pol := weekdayPolicy(t, "Europe/Berlin")

	// 2026-08-28 is a Friday, 2026-08-29 a Saturday.
	friday := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	assert.False(t, pol.IsWeekend(friday))
	assert.True(t, pol.IsWeekend(saturday))
}

func TestIsPastDateUsesOfficeDay(t *testing.T) {
	pol := weekdayPolicy(t, "Pacific/Auckland")

	// 13:00 UTC on the 27th is already the 28th in Auckland.
	now := time.Date(2026, 8, 27, 13, 0, 0, 0, time.UTC)
	the27th := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	the28th := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	assert.True(t, pol.IsPastDate(the27th, now))
	assert.False(t, pol.IsPastDate(the28th, now))
	assert.True(t, pol.IsToday(the28th, now))
	assert.False(t, pol.IsToday(the27th, now))
}

func TestIsPastDateSameDayNotPast(t *testing.T) {
	pol := weekdayPolicy(t, "UTC")

	now := time.Date(2026, 8, 27, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	assert.False(t, pol.IsPastDate(today, now))
}

func TestLocalToUTC(t *testing.T) {
	pol := weekdayPolicy(t, "Europe/Berlin")

	// Berlin is UTC+2 in August.
	date := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	instant, err := pol.LocalToUTC(date, "9:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 27, 7, 0, 0, 0, time.UTC), instant)

	// And UTC+1 in January.
	winter := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	instant, err = pol.LocalToUTC(winter, "9:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC), instant)
}

func TestLocalClockRoundTrip(t *testing.T) {
	pol := weekdayPolicy(t, "America/New_York")

	date := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	instant, err := pol.LocalToUTC(date, "14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", pol.LocalClock(instant))
}

func TestWithinWorkingHours(t *testing.T) {
	tests := []struct {
		name string
		slot string
		want bool
	}{
		{name: "inside the window", slot: "10:00 - 10:30", want: true},
		{name: "starts at open", slot: "9:00 - 9:30", want: true},
		{name: "starts before open", slot: "8:30 - 9:00", want: false},
		{name: "starts at close", slot: "18:00 - 18:30", want: false},
		{name: "last slot before close", slot: "17:30 - 18:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.WithinWorkingHours(tt.slot, "9:00", "18:00")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundUpToStep(t *testing.T) {
	step := 30 * time.Minute

	onBoundary := time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, onBoundary, schedule.RoundUpToStep(onBoundary, step))

	midSlot := time.Date(2026, 8, 27, 9, 31, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC), schedule.RoundUpToStep(midSlot, step))

	justBefore := time.Date(2026, 8, 27, 9, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC), schedule.RoundUpToStep(justBefore, step))
}
