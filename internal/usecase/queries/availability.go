package queries

import (
	"context"
	"time"

	"office-booking/internal/domain/booking"
	"office-booking/internal/domain/office"
	"office-booking/internal/domain/schedule"
	"office-booking/internal/infra/cache"
	"office-booking/internal/pkg/clock"
	"office-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfficeNotFound      = errs.New("office not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrRoomUnavailable     = errs.New("room is not available for booking")
	ErrWeekendDate         = errs.New("date falls outside office working days")
	ErrPastDate            = errs.New("date is in the past")
	ErrInvalidDuration     = errs.New("invalid slot duration")
	ErrOfficeMisconfigured = errs.New("office configuration is invalid")
)

const maxSlotDurationMinutes = 8 * 60

type OfficeProvider interface {
	GetOfficeByID(id uuid.UUID) (*office.Office, error)
}

type VisitReads interface {
	OccupyingByOfficeAndDates(ctx context.Context, officeID uuid.UUID, dates []time.Time) ([]*booking.Visit, error)
	FindByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]*VisitView, error)
}

type ReservationReads interface {
	OccupyingOverlapping(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*booking.RoomReservation, error)
	FindByRoomBetween(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*RoomReservationView, error)
}

type RoleReads interface {
	RolesInUse(ctx context.Context, roles []string) (map[string]struct{}, error)
}

type AvailabilityQueries interface {
	OfficeTimeSlots(ctx context.Context, officeID uuid.UUID, date time.Time, durationMinutes int) ([]string, error)
	RoomTimeSlots(ctx context.Context, officeID, roomID uuid.UUID, date time.Time, durationMinutes int) ([]string, error)
	FreeDesks(ctx context.Context, officeID uuid.UUID, dates []time.Time, userID uuid.UUID, roles []string) ([]DeskSlot, error)
}

type availabilityQueriesImpl struct {
	offices          OfficeProvider
	visitReads       VisitReads
	reservationReads ReservationReads
	roleReads        RoleReads
	cache            *cache.AvailabilityCache
	clock            clock.Clock
}

func NewAvailabilityQueries(
	offices OfficeProvider,
	visitReads VisitReads,
	reservationReads ReservationReads,
	roleReads RoleReads,
	availabilityCache *cache.AvailabilityCache,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		offices:          offices,
		visitReads:       visitReads,
		reservationReads: reservationReads,
		roleReads:        roleReads,
		cache:            availabilityCache,
		clock:            clk,
	}
}

// OfficeTimeSlots lists the free slots across every available room of the
// office, merged chronologically. A slot appears when at least one room can
// host it.
func (q *availabilityQueriesImpl) OfficeTimeSlots(ctx context.Context, officeID uuid.UUID, date time.Time, durationMinutes int) ([]string, error) {
	off, pol, err := q.officePolicy(officeID)
	if err != nil {
		return nil, err
	}
	durationMinutes, err = normalizeDuration(durationMinutes)
	if err != nil {
		return nil, err
	}
	if err := q.validateDate(pol, date); err != nil {
		return nil, err
	}

	dateKey := date.Format("2006-01-02")
	cacheKey := cache.SlotKey(officeID.String(), "all-rooms", dateKey, durationMinutes)
	if slots, ok := q.cache.GetSlots(ctx, cacheKey); ok {
		return slots, nil
	}

	perRoom := make([][]string, 0, len(off.Rooms))
	for i := range off.Rooms {
		room := &off.Rooms[i]
		if !room.Available {
			continue
		}
		slots, err := q.roomSlots(ctx, room, pol, date, durationMinutes)
		if err != nil {
			return nil, err
		}
		perRoom = append(perRoom, slots)
	}

	merged, err := booking.MergeSlots(perRoom...)
	if err != nil {
		return nil, err
	}
	q.cache.SetSlots(ctx, cacheKey, merged)
	return merged, nil
}

func (q *availabilityQueriesImpl) RoomTimeSlots(ctx context.Context, officeID, roomID uuid.UUID, date time.Time, durationMinutes int) ([]string, error) {
	off, pol, err := q.officePolicy(officeID)
	if err != nil {
		return nil, err
	}
	durationMinutes, err = normalizeDuration(durationMinutes)
	if err != nil {
		return nil, err
	}
	if err := q.validateDate(pol, date); err != nil {
		return nil, err
	}

	room, err := off.RoomByID(roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomNotFound)
	}
	if !room.Available {
		return nil, ErrRoomUnavailable
	}

	dateKey := date.Format("2006-01-02")
	cacheKey := cache.SlotKey(officeID.String(), roomID.String(), dateKey, durationMinutes)
	if slots, ok := q.cache.GetSlots(ctx, cacheKey); ok {
		return slots, nil
	}

	slots, err := q.roomSlots(ctx, room, pol, date, durationMinutes)
	if err != nil {
		return nil, err
	}
	q.cache.SetSlots(ctx, cacheKey, slots)
	return slots, nil
}

func (q *availabilityQueriesImpl) roomSlots(ctx context.Context, room *office.Room, pol schedule.Policy, date time.Time, durationMinutes int) ([]string, error) {
	// Read everything overlapping the office-local day; the resolver works
	// in local wall-clock terms.
	dayStart, err := pol.LocalToUTC(date, "00:00")
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := q.reservationReads.OccupyingOverlapping(ctx, room.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return booking.AvailableSlots(room, pol, date, durationMinutes, existing, q.clock.Now())
}

// FreeDesks lists the desks free for every requested date, applying area
// availability, full-area occupancy, role gating, desk kind and plain
// occupancy rules in that order.
func (q *availabilityQueriesImpl) FreeDesks(ctx context.Context, officeID uuid.UUID, dates []time.Time, userID uuid.UUID, roles []string) ([]DeskSlot, error) {
	off, pol, err := q.officePolicy(officeID)
	if err != nil {
		return nil, err
	}
	for _, date := range dates {
		if err := q.validateDate(pol, date); err != nil {
			return nil, err
		}
	}

	det, err := booking.NewDetector(off)
	if err != nil {
		return nil, errs.Mark(err, ErrOfficeMisconfigured)
	}

	existing, err := q.visitReads.OccupyingByOfficeAndDates(ctx, officeID, dates)
	if err != nil {
		return nil, err
	}

	rolesInUse, err := q.roleReads.RolesInUse(ctx, permittedRolesOf(off))
	if err != nil {
		return nil, err
	}

	free := booking.FreeDesks(off, det, dates, existing, booking.Requestor{
		UserID:     userID,
		Roles:      roles,
		RolesInUse: rolesInUse,
	})

	slots := make([]DeskSlot, len(free))
	for i, ref := range free {
		slots[i] = DeskSlot{AreaID: ref.AreaID, DeskID: ref.DeskID}
	}
	return slots, nil
}

func (q *availabilityQueriesImpl) officePolicy(officeID uuid.UUID) (*office.Office, schedule.Policy, error) {
	off, err := q.offices.GetOfficeByID(officeID)
	if err != nil {
		return nil, schedule.Policy{}, errs.Mark(err, ErrOfficeNotFound)
	}
	pol, err := newOfficePolicy(off)
	if err != nil {
		return nil, schedule.Policy{}, err
	}
	return off, pol, nil
}

func newOfficePolicy(off *office.Office) (schedule.Policy, error) {
	pol, err := schedule.NewPolicy(off.Timezone, off.WorkingDays)
	if err != nil {
		return schedule.Policy{}, errs.Mark(err, ErrOfficeMisconfigured)
	}
	return pol, nil
}

func (q *availabilityQueriesImpl) validateDate(pol schedule.Policy, date time.Time) error {
	if pol.IsWeekend(date) {
		return ErrWeekendDate
	}
	if pol.IsPastDate(date, q.clock.Now()) {
		return ErrPastDate
	}
	return nil
}

func normalizeDuration(minutes int) (int, error) {
	if minutes == 0 {
		return schedule.DefaultStepMinutes, nil
	}
	if minutes < 0 || minutes > maxSlotDurationMinutes {
		return 0, ErrInvalidDuration
	}
	return minutes, nil
}

func permittedRolesOf(off *office.Office) []string {
	seen := make(map[string]struct{})
	var roles []string
	for _, area := range off.Areas {
		for _, desk := range area.Desks {
			for _, role := range desk.PermittedRoles {
				if _, dup := seen[role]; dup {
					continue
				}
				seen[role] = struct{}{}
				roles = append(roles, role)
			}
		}
	}
	return roles
}
