//go:build unit

package booking_test

import (
	"testing"
	"time"

	"office-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidity(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.True(t, booking.StatusCancelled.IsValid())
	assert.False(t, booking.Status("archived").IsValid())
	assert.False(t, booking.Status("").IsValid())
}

func TestStatusIsOccupying(t *testing.T) {
	assert.True(t, booking.StatusPending.IsOccupying())
	assert.True(t, booking.StatusConfirmed.IsOccupying())
	assert.False(t, booking.StatusCancelled.IsOccupying())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    booking.Status
		to      booking.Status
		isAdmin bool
		want    bool
	}{
		{name: "user cancels confirmed", from: booking.StatusConfirmed, to: booking.StatusCancelled, want: true},
		{name: "user cannot cancel pending", from: booking.StatusPending, to: booking.StatusCancelled, want: false},
		{name: "user cannot confirm", from: booking.StatusPending, to: booking.StatusConfirmed, want: false},
		{name: "user cannot revive cancelled", from: booking.StatusCancelled, to: booking.StatusConfirmed, want: false},
		{name: "admin confirms pending", from: booking.StatusPending, to: booking.StatusConfirmed, isAdmin: true, want: true},
		{name: "admin cancels pending", from: booking.StatusPending, to: booking.StatusCancelled, isAdmin: true, want: true},
		{name: "admin revives cancelled", from: booking.StatusCancelled, to: booking.StatusConfirmed, isAdmin: true, want: true},
		{name: "admin no-op transition rejected", from: booking.StatusConfirmed, to: booking.StatusConfirmed, isAdmin: true, want: false},
		{name: "unknown target rejected", from: booking.StatusConfirmed, to: booking.Status("archived"), isAdmin: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to, tt.isAdmin))
		})
	}
}

func TestVisitTransition(t *testing.T) {
	v, err := booking.NewVisit(uuid.New(), uuid.New(), uuid.New(), uuid.New(), testDate, booking.StatusConfirmed, nil)
	require.NoError(t, err)

	err = v.Transition(booking.StatusCancelled, false)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, v.Status())

	err = v.Transition(booking.StatusConfirmed, false)
	assert.ErrorIs(t, err, booking.ErrForbiddenTransition)
}

func TestNewVisitNormalizesDate(t *testing.T) {
	withTime := time.Date(2026, 9, 3, 15, 42, 7, 0, time.UTC)
	v, err := booking.NewVisit(uuid.New(), uuid.New(), uuid.New(), uuid.New(), withTime, booking.StatusConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), v.Date())
}

func TestNewVisitRejectsInvalidStatus(t *testing.T) {
	_, err := booking.NewVisit(uuid.New(), uuid.New(), uuid.New(), uuid.New(), testDate, booking.Status("nope"), nil)
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestNewRoomReservationRejectsInvertedInterval(t *testing.T) {
	_, err := booking.NewRoomReservation(
		uuid.New(), uuid.New(), uuid.New(),
		instant(11, 0), instant(10, 0),
		booking.StatusConfirmed, nil,
	)
	assert.ErrorIs(t, err, booking.ErrInvalidInterval)

	_, err = booking.NewRoomReservation(
		uuid.New(), uuid.New(), uuid.New(),
		instant(10, 0), instant(10, 0),
		booking.StatusConfirmed, nil,
	)
	assert.ErrorIs(t, err, booking.ErrInvalidInterval)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 3, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	assert.True(t, booking.SameDay(morning, evening))
	assert.False(t, booking.SameDay(evening, nextDay))
}
