package queries

import (
	"context"
	"time"

	"office-booking/internal/pkg/clock"
	"office-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("room reservation not found")

// BookingQueries are the listing reads the boundary layer needs alongside
// availability: a user's own upcoming visits and a room's reservations for a
// day.
type BookingQueries interface {
	UserVisits(ctx context.Context, userID uuid.UUID) ([]*VisitView, error)
	RoomReservations(ctx context.Context, officeID, roomID uuid.UUID, date time.Time) ([]*RoomReservationView, error)
}

type bookingQueriesImpl struct {
	offices          OfficeProvider
	visitReads       VisitReads
	reservationReads ReservationReads
	clock            clock.Clock
}

func NewBookingQueries(
	offices OfficeProvider,
	visitReads VisitReads,
	reservationReads ReservationReads,
	clk clock.Clock,
) BookingQueries {
	return &bookingQueriesImpl{
		offices:          offices,
		visitReads:       visitReads,
		reservationReads: reservationReads,
		clock:            clk,
	}
}

func (q *bookingQueriesImpl) UserVisits(ctx context.Context, userID uuid.UUID) ([]*VisitView, error) {
	now := q.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return q.visitReads.FindByUser(ctx, userID, today)
}

func (q *bookingQueriesImpl) RoomReservations(ctx context.Context, officeID, roomID uuid.UUID, date time.Time) ([]*RoomReservationView, error) {
	off, err := q.offices.GetOfficeByID(officeID)
	if err != nil {
		return nil, errs.Mark(err, ErrOfficeNotFound)
	}
	if _, err := off.RoomByID(roomID); err != nil {
		return nil, errs.Mark(err, ErrRoomNotFound)
	}

	pol, polErr := newOfficePolicy(off)
	if polErr != nil {
		return nil, polErr
	}
	dayStart, err := pol.LocalToUTC(date, "00:00")
	if err != nil {
		return nil, err
	}
	return q.reservationReads.FindByRoomBetween(ctx, roomID, dayStart, dayStart.Add(24*time.Hour))
}
