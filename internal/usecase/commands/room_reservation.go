package commands

import (
	"context"
	"encoding/json"
	"time"

	"office-booking/internal/domain/booking"
	"office-booking/internal/domain/office"
	"office-booking/internal/domain/schedule"
	"office-booking/internal/infra"
	"office-booking/internal/infra/db"
	"office-booking/internal/infra/notify"
	"office-booking/internal/pkg/clock"
	"office-booking/internal/pkg/errs"
	"office-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateRoomReservationParams struct {
	OfficeID  uuid.UUID
	RoomID    uuid.UUID
	Date      time.Time // office-local calendar day
	TimeSlot  string    // "H:mm - H:mm" office-local
	Attendees []uuid.UUID
}

type CreateRoomReservationResult struct {
	ReservationID uuid.UUID
	Status        booking.Status
	StartDate     time.Time
	EndDate       time.Time
}

type RoomReservationCommands interface {
	CreateRoomReservation(ctx context.Context, params CreateRoomReservationParams, actor Actor) (*CreateRoomReservationResult, error)
	UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, status booking.Status, actor Actor) error
}

type roomReservationCommandsImpl struct {
	offices      OfficeProvider
	reservations RoomReservationRepository
	notifier     Notifier
	cache        CacheInvalidator
	pool         *pgxpool.Pool
	clock        clock.Clock
}

func NewRoomReservationCommands(
	offices OfficeProvider,
	reservations RoomReservationRepository,
	notifier Notifier,
	cacheInvalidator CacheInvalidator,
	pool *pgxpool.Pool,
	clk clock.Clock,
) RoomReservationCommands {
	return &roomReservationCommandsImpl{
		offices:      offices,
		reservations: reservations,
		notifier:     notifier,
		cache:        cacheInvalidator,
		pool:         pool,
		clock:        clk,
	}
}

// CreateRoomReservation validates against policy first, then commits inside
// one transaction under the room lock: read the occupying reservations,
// test true interval overlap, insert. First transaction to commit wins.
func (c *roomReservationCommandsImpl) CreateRoomReservation(ctx context.Context, params CreateRoomReservationParams, actor Actor) (*CreateRoomReservationResult, error) {
	off, err := c.offices.GetOfficeByID(params.OfficeID)
	if err != nil {
		return nil, errs.Mark(err, ErrOfficeNotFound)
	}
	pol, err := schedule.NewPolicy(off.Timezone, off.WorkingDays)
	if err != nil {
		return nil, errs.Mark(err, ErrOfficeMisconfigured)
	}
	room, err := off.RoomByID(params.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomNotFound)
	}
	if !room.Available {
		return nil, ErrRoomUnavailable
	}

	now := c.clock.Now()
	if pol.IsWeekend(params.Date) {
		return nil, ErrWeekendDate
	}
	if pol.IsPastDate(params.Date, now) {
		return nil, ErrPastDate
	}

	start, end, err := c.resolveInterval(pol, room, params.Date, params.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !start.After(now) {
		return nil, ErrSlotInPast
	}

	status := booking.StatusPending
	if room.AutoConfirm {
		status = booking.StatusConfirmed
	}

	candidate, err := booking.NewRoomReservation(off.ID, room.ID, actor.UserID, start, end, status, params.Attendees)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	result, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (*CreateRoomReservationResult, error) {
		if err := c.reservations.LockRoom(ctx, tx, room.ID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := c.reservations.OccupyingOverlapping(ctx, tx, room.ID, candidate.StartDate(), candidate.EndDate())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if competing := booking.OverlappingReservation(candidate, existing); competing != nil {
			return nil, &RoomConflictError{
				RoomName:  room.Name,
				StartDate: competing.StartDate(),
				EndDate:   competing.EndDate(),
			}
		}

		if err := c.reservations.Create(ctx, tx, candidate); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return &CreateRoomReservationResult{
			ReservationID: candidate.ID(),
			Status:        candidate.Status(),
			StartDate:     candidate.StartDate(),
			EndDate:       candidate.EndDate(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	c.afterCommit(off.ID, actor.UserID, notify.EventReservationCreated, result.ReservationID)
	return result, nil
}

func (c *roomReservationCommandsImpl) UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, status booking.Status, actor Actor) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	res, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (*booking.RoomReservation, error) {
		res, err := c.reservations.GetForUpdate(ctx, tx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrReservationNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !actor.IsAdmin && !res.IsOwnedBy(actor.UserID) {
			return nil, ErrForbidden
		}
		wasOccupying := res.IsOccupying()
		if err := res.Transition(status, actor.IsAdmin); err != nil {
			return nil, errs.Mark(err, ErrForbiddenTransition)
		}
		// Reinstating a cancelled reservation re-occupies its slot; the room
		// may have been re-booked since, so rerun the overlap check under the
		// room lock.
		if !wasOccupying && res.IsOccupying() {
			if err := c.recheckOverlap(ctx, tx, res); err != nil {
				return nil, err
			}
		}
		if err := c.reservations.UpdateStatus(ctx, tx, reservationID, status); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return res, nil
	})
	if err != nil {
		return err
	}

	c.afterCommit(res.OfficeID(), actor.UserID, notify.EventReservationChanged, reservationID)
	return nil
}

// recheckOverlap runs under the caller's transaction with the same room lock
// CreateRoomReservation takes. The reservation's stored status is still
// non-occupying here, and OverlappingReservation skips its own ID anyway.
func (c *roomReservationCommandsImpl) recheckOverlap(ctx context.Context, tx db.DBTX, res *booking.RoomReservation) error {
	roomName := ""
	if off, err := c.offices.GetOfficeByID(res.OfficeID()); err == nil {
		if room, err := off.RoomByID(res.RoomID()); err == nil {
			roomName = room.Name
		}
	}
	if err := c.reservations.LockRoom(ctx, tx, res.RoomID()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	existing, err := c.reservations.OccupyingOverlapping(ctx, tx, res.RoomID(), res.StartDate(), res.EndDate())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if competing := booking.OverlappingReservation(res, existing); competing != nil {
		return &RoomConflictError{
			RoomName:  roomName,
			StartDate: competing.StartDate(),
			EndDate:   competing.EndDate(),
		}
	}
	return nil
}

// resolveInterval turns a slot label into UTC instants through the office
// timezone and checks it against the room's working hours.
func (c *roomReservationCommandsImpl) resolveInterval(pol schedule.Policy, room *office.Room, date time.Time, slot string) (time.Time, time.Time, error) {
	startMin, endMin, err := schedule.ParseInterval(slot)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidTimeSlot)
	}
	if startMin >= endMin {
		return time.Time{}, time.Time{}, ErrInvalidTimeSlot
	}

	within, err := schedule.WithinWorkingHours(slot, room.OpenTime, room.CloseTime)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidTimeSlot)
	}
	if !within {
		return time.Time{}, time.Time{}, ErrOutsideWorkingHours
	}

	start, err := pol.LocalToUTC(date, schedule.FormatClock(startMin))
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidTimeSlot)
	}
	end, err := pol.LocalToUTC(date, schedule.FormatClock(endMin))
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidTimeSlot)
	}
	return start, end, nil
}

func (c *roomReservationCommandsImpl) afterCommit(officeID, userID uuid.UUID, kind string, reservationID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		defer cancel()
		c.cache.InvalidateOffice(ctx, officeID.String())
		payload, _ := json.Marshal(map[string]any{"reservation_id": reservationID})
		c.notifier.Publish(ctx, notify.Event{
			Kind:       kind,
			OfficeID:   officeID.String(),
			UserID:     userID.String(),
			OccurredAt: c.clock.Now(),
			Payload:    payload,
		})
	}()
}
