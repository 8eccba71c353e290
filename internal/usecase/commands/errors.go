package commands

import (
	"fmt"
	"strings"
	"time"

	"office-booking/internal/pkg/errs"
)

// Client-input and policy failures, detected before any transaction opens.
var (
	ErrOfficeNotFound      = errs.New("office not found")
	ErrAreaNotFound        = errs.New("area not found")
	ErrDeskNotFound        = errs.New("desk not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrAreaUnavailable     = errs.New("area is not available for booking")
	ErrRoomUnavailable     = errs.New("room is not available for booking")
	ErrDeskNotPermitted    = errs.New("desk is not permitted for this user")
	ErrWeekendDate         = errs.New("date falls outside office working days")
	ErrPastDate            = errs.New("date is in the past")
	ErrSlotInPast          = errs.New("time slot has already started")
	ErrOutsideWorkingHours = errs.New("time slot is outside room working hours")
	ErrInvalidTimeSlot     = errs.New("invalid time slot")
	ErrInvalidStatus       = errs.New("invalid booking status")
	ErrEmptyBatch          = errs.New("booking request contains no visits")
	ErrVisitNotFound       = errs.New("visit not found")
	ErrReservationNotFound = errs.New("room reservation not found")
)

// Produced only inside the transaction, always with a rollback.
var (
	ErrBookingConflict         = errs.New("booking conflict")
	ErrForbidden               = errs.New("actor may not modify this booking")
	ErrForbiddenTransition     = errs.New("status transition not permitted")
	ErrOfficeMisconfigured     = errs.New("office configuration is invalid")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictedVisit names one rejected candidate so the caller can render a
// precise message: which desk, where, on which day.
type ConflictedVisit struct {
	AreaName string
	DeskName string
	Date     time.Time
}

func (c ConflictedVisit) String() string {
	return fmt.Sprintf("%s / %s on %s", c.AreaName, c.DeskName, c.Date.Format("2006-01-02"))
}

// VisitConflictError reports every colliding candidate of a rejected batch.
// errors.Is(err, ErrBookingConflict) holds for it.
type VisitConflictError struct {
	Items []ConflictedVisit
}

func (e *VisitConflictError) Error() string {
	parts := make([]string, len(e.Items))
	for i, item := range e.Items {
		parts[i] = item.String()
	}
	return "desks already booked: " + strings.Join(parts, ", ")
}

func (e *VisitConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}

// RoomConflictError identifies the competing reservation that won the slot.
type RoomConflictError struct {
	RoomName  string
	StartDate time.Time
	EndDate   time.Time
}

func (e *RoomConflictError) Error() string {
	return fmt.Sprintf("room %s already reserved from %s to %s",
		e.RoomName, e.StartDate.Format(time.RFC3339), e.EndDate.Format(time.RFC3339))
}

func (e *RoomConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}
