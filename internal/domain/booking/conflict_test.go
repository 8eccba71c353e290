//go:build unit

package booking_test

import (
	"testing"
	"time"

	"office-booking/internal/domain/booking"
	"office-booking/internal/domain/office"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetectorRejectsAmbiguousFullAreaConfig(t *testing.T) {
	fx := buildOfficeFixture()
	fx.sharedA.FullAreaBooking = true
	fx.sharedB.FullAreaBooking = true

	_, err := booking.NewDetector(fx.off)
	assert.ErrorIs(t, err, office.ErrAmbiguousFullAreaDesk)
}

func TestConflictedVisitsSameDeskSameDay(t *testing.T) {
	fx := buildOfficeFixture()
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate)
	existing := []*booking.Visit{
		visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate),
	}

	conflicted := det.ConflictedVisits([]*booking.Visit{cand}, existing)
	require.Len(t, conflicted, 1)
	assert.Equal(t, cand.ID(), conflicted[0].ID())
}

func TestConflictedVisitsDifferentDayOrDesk(t *testing.T) {
	fx := buildOfficeFixture()
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate)
	existing := []*booking.Visit{
		visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate.AddDate(0, 0, 1)),
		visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate),
	}

	assert.Empty(t, det.ConflictedVisits([]*booking.Visit{cand}, existing))
}

func TestConflictedVisitsIgnoresCancelled(t *testing.T) {
	fx := buildOfficeFixture()
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate)
	cancelled := booking.ReconstructVisit(
		uuid.New(), uuid.New(), fx.off.ID, fx.area.ID, fx.sharedA.ID,
		testDate, booking.StatusCancelled, nil, time.Time{}, time.Time{},
	)

	assert.Empty(t, det.ConflictedVisits([]*booking.Visit{cand}, []*booking.Visit{cancelled}))
}

func TestConflictedVisitsMultiBookingDeskNeverCollides(t *testing.T) {
	fx := buildOfficeFixture()
	fx.sharedA.AllowMultipleBookings = true
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate)
	existing := []*booking.Visit{
		visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate),
	}

	assert.Empty(t, det.ConflictedVisits([]*booking.Visit{cand}, existing))
}

func TestFullAreaConflictsBothDirections(t *testing.T) {
	fx := buildOfficeFixture()
	fx.sharedA.FullAreaBooking = true
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	t.Run("ordinary desk blocked while full-area desk occupied", func(t *testing.T) {
		cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate)
		existing := []*booking.Visit{
			visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate),
		}
		conflicted := det.FullAreaConflicts([]*booking.Visit{cand}, existing)
		require.Len(t, conflicted, 1)
		assert.Equal(t, cand.ID(), conflicted[0].ID())
	})

	t.Run("full-area desk blocked while any other desk occupied", func(t *testing.T) {
		cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate)
		existing := []*booking.Visit{
			visitOn(t, fx.off.ID, fx.area.ID, fx.personal.ID, testDate),
		}
		conflicted := det.FullAreaConflicts([]*booking.Visit{cand}, existing)
		require.Len(t, conflicted, 1)
		assert.Equal(t, cand.ID(), conflicted[0].ID())
	})

	t.Run("different dates do not interact", func(t *testing.T) {
		cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate)
		existing := []*booking.Visit{
			visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate.AddDate(0, 0, 1)),
		}
		assert.Empty(t, det.FullAreaConflicts([]*booking.Visit{cand}, existing))
	})
}

func TestConflictsWithinBatch(t *testing.T) {
	fx := buildOfficeFixture()
	fx.sharedA.FullAreaBooking = true
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	t.Run("duplicate desk and date in one batch", func(t *testing.T) {
		first := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate)
		second := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate)

		conflicted := det.Conflicts([]*booking.Visit{first, second}, nil)
		require.Len(t, conflicted, 1)
		assert.Equal(t, second.ID(), conflicted[0].ID())
	})

	t.Run("full-area desk plus ordinary desk in one batch", func(t *testing.T) {
		full := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate)
		ordinary := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate)

		conflicted := det.Conflicts([]*booking.Visit{full, ordinary}, nil)
		require.Len(t, conflicted, 1)
		assert.Equal(t, ordinary.ID(), conflicted[0].ID())

		// Same violation regardless of which entry comes first.
		conflicted = det.Conflicts([]*booking.Visit{ordinary, full}, nil)
		require.Len(t, conflicted, 1)
		assert.Equal(t, full.ID(), conflicted[0].ID())
	})

	t.Run("distinct dates coexist", func(t *testing.T) {
		first := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate)
		second := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate.AddDate(0, 0, 1))

		assert.Empty(t, det.Conflicts([]*booking.Visit{first, second}, nil))
	})

	t.Run("multi-booking desk repeats freely", func(t *testing.T) {
		multi := buildOfficeFixture()
		multi.sharedB.AllowMultipleBookings = true
		multiDet, err := booking.NewDetector(multi.off)
		require.NoError(t, err)

		first := visitOn(t, multi.off.ID, multi.area.ID, multi.sharedB.ID, testDate)
		second := visitOn(t, multi.off.ID, multi.area.ID, multi.sharedB.ID, testDate)

		assert.Empty(t, multiDet.Conflicts([]*booking.Visit{first, second}, nil))
	})
}

func TestConflictsDeduplicates(t *testing.T) {
	fx := buildOfficeFixture()
	fx.sharedA.FullAreaBooking = true
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	// The candidate collides on the desk itself and via the full-area rule;
	// it must only be reported once.
	cand := visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate)
	existing := []*booking.Visit{
		visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate),
		visitOn(t, fx.off.ID, fx.area.ID, fx.sharedB.ID, testDate),
	}

	conflicted := det.Conflicts([]*booking.Visit{cand}, existing)
	assert.Len(t, conflicted, 1)
}

func TestAreaFullyReservedOn(t *testing.T) {
	fx := buildOfficeFixture()
	fx.sharedA.FullAreaBooking = true
	det, err := booking.NewDetector(fx.off)
	require.NoError(t, err)

	existing := []*booking.Visit{
		visitOn(t, fx.off.ID, fx.area.ID, fx.sharedA.ID, testDate),
	}

	assert.True(t, det.AreaFullyReservedOn(existing, fx.area.ID, testDate))
	assert.False(t, det.AreaFullyReservedOn(existing, fx.area.ID, testDate.AddDate(0, 0, 1)))
	assert.False(t, det.AreaFullyReservedOn(nil, fx.area.ID, testDate))
}

func TestOverlappingReservation(t *testing.T) {
	roomID := uuid.New()
	cand := reservationAt(t, roomID, instant(10, 0), instant(11, 0))

	t.Run("true overlap is found", func(t *testing.T) {
		ex := reservationAt(t, roomID, instant(10, 30), instant(11, 30))
		assert.Equal(t, ex, booking.OverlappingReservation(cand, []*booking.RoomReservation{ex}))
	})

	t.Run("touching intervals do not overlap", func(t *testing.T) {
		before := reservationAt(t, roomID, instant(9, 0), instant(10, 0))
		after := reservationAt(t, roomID, instant(11, 0), instant(12, 0))
		assert.Nil(t, booking.OverlappingReservation(cand, []*booking.RoomReservation{before, after}))
	})

	t.Run("other rooms are ignored", func(t *testing.T) {
		ex := reservationAt(t, uuid.New(), instant(10, 0), instant(11, 0))
		assert.Nil(t, booking.OverlappingReservation(cand, []*booking.RoomReservation{ex}))
	})

	t.Run("cancelled reservations are ignored", func(t *testing.T) {
		ex := booking.ReconstructRoomReservation(
			uuid.New(), uuid.New(), roomID, uuid.New(),
			instant(10, 0), instant(11, 0),
			booking.StatusCancelled, nil, time.Time{}, time.Time{},
		)
		assert.Nil(t, booking.OverlappingReservation(cand, []*booking.RoomReservation{ex}))
	})
}
