package booking

import (
	"time"

	"office-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidInterval = errs.New("reservation start must be before end")

// RoomReservation is a sub-day reservation holding exact UTC instants.
// Conflict detection runs on the half-open [start, end) interval at instant
// granularity, not on the 30-minute grid.
type RoomReservation struct {
	id        uuid.UUID
	officeID  uuid.UUID
	roomID    uuid.UUID
	startDate time.Time
	endDate   time.Time
	status    Status
	creatorID uuid.UUID
	attendees []uuid.UUID

	createdAt time.Time
	updatedAt time.Time
}

func NewRoomReservation(officeID, roomID, creatorID uuid.UUID, start, end time.Time, status Status, attendees []uuid.UUID) (*RoomReservation, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &RoomReservation{
		id:        uuid.New(),
		officeID:  officeID,
		roomID:    roomID,
		startDate: start.UTC(),
		endDate:   end.UTC(),
		status:    status,
		creatorID: creatorID,
		attendees: attendees,
	}, nil
}

func ReconstructRoomReservation(
	id, officeID, roomID, creatorID uuid.UUID,
	start, end time.Time,
	status Status,
	attendees []uuid.UUID,
	createdAt, updatedAt time.Time,
) *RoomReservation {
	return &RoomReservation{
		id:        id,
		officeID:  officeID,
		roomID:    roomID,
		startDate: start.UTC(),
		endDate:   end.UTC(),
		status:    status,
		creatorID: creatorID,
		attendees: attendees,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *RoomReservation) ID() uuid.UUID          { return r.id }
func (r *RoomReservation) OfficeID() uuid.UUID    { return r.officeID }
func (r *RoomReservation) RoomID() uuid.UUID      { return r.roomID }
func (r *RoomReservation) StartDate() time.Time   { return r.startDate }
func (r *RoomReservation) EndDate() time.Time     { return r.endDate }
func (r *RoomReservation) Status() Status         { return r.status }
func (r *RoomReservation) CreatorID() uuid.UUID   { return r.creatorID }
func (r *RoomReservation) Attendees() []uuid.UUID { return r.attendees }
func (r *RoomReservation) CreatedAt() time.Time   { return r.createdAt }
func (r *RoomReservation) UpdatedAt() time.Time   { return r.updatedAt }

func (r *RoomReservation) IsOccupying() bool {
	return r.status.IsOccupying()
}

func (r *RoomReservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.creatorID == userID
}

func (r *RoomReservation) Duration() time.Duration {
	return r.endDate.Sub(r.startDate)
}

// OverlapsInterval tests true interval intersection on [start, end).
func (r *RoomReservation) OverlapsInterval(start, end time.Time) bool {
	return r.startDate.Before(end) && r.endDate.After(start)
}

func (r *RoomReservation) Transition(to Status, isAdmin bool) error {
	if !r.status.CanTransition(to, isAdmin) {
		return ErrForbiddenTransition
	}
	r.status = to
	return nil
}
