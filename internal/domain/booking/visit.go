package booking

import (
	"encoding/json"
	"time"

	"office-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errs.New("invalid booking status")
	ErrForbiddenTransition = errs.New("status transition not permitted")
)

// Visit is a day-granularity desk reservation. The date carries no time
// component; two visits collide when they share area, desk and calendar day.
type Visit struct {
	id       uuid.UUID
	userID   uuid.UUID
	officeID uuid.UUID
	areaID   uuid.UUID
	deskID   uuid.UUID
	date     time.Time
	status   Status
	metadata json.RawMessage

	createdAt time.Time
	updatedAt time.Time
}

func NewVisit(userID, officeID, areaID, deskID uuid.UUID, date time.Time, status Status, metadata json.RawMessage) (*Visit, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Visit{
		id:       uuid.New(),
		userID:   userID,
		officeID: officeID,
		areaID:   areaID,
		deskID:   deskID,
		date:     normalizeDate(date),
		status:   status,
		metadata: metadata,
	}, nil
}

func ReconstructVisit(
	id, userID, officeID, areaID, deskID uuid.UUID,
	date time.Time,
	status Status,
	metadata json.RawMessage,
	createdAt, updatedAt time.Time,
) *Visit {
	return &Visit{
		id:        id,
		userID:    userID,
		officeID:  officeID,
		areaID:    areaID,
		deskID:    deskID,
		date:      normalizeDate(date),
		status:    status,
		metadata:  metadata,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (v *Visit) ID() uuid.UUID             { return v.id }
func (v *Visit) UserID() uuid.UUID         { return v.userID }
func (v *Visit) OfficeID() uuid.UUID       { return v.officeID }
func (v *Visit) AreaID() uuid.UUID         { return v.areaID }
func (v *Visit) DeskID() uuid.UUID         { return v.deskID }
func (v *Visit) Date() time.Time           { return v.date }
func (v *Visit) Status() Status            { return v.status }
func (v *Visit) Metadata() json.RawMessage { return v.metadata }
func (v *Visit) CreatedAt() time.Time      { return v.createdAt }
func (v *Visit) UpdatedAt() time.Time      { return v.updatedAt }

func (v *Visit) IsOccupying() bool {
	return v.status.IsOccupying()
}

func (v *Visit) IsOwnedBy(userID uuid.UUID) bool {
	return v.userID == userID
}

// Transition applies a status change, enforcing the non-admin matrix even
// when the boundary layer asks for more.
func (v *Visit) Transition(to Status, isAdmin bool) error {
	if !v.status.CanTransition(to, isAdmin) {
		return ErrForbiddenTransition
	}
	v.status = to
	return nil
}

// SameDay compares by calendar day regardless of any stored time-of-day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func normalizeDate(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
