package booking

import (
	"sort"
	"time"

	"office-booking/internal/domain/office"
	"office-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// DeskRef identifies one bookable desk within an area.
type DeskRef struct {
	AreaID uuid.UUID
	DeskID uuid.UUID
}

// Requestor carries what the availability rules need to know about the
// caller: identity for personal desks and held roles for role-gated desks.
// RolesInUse is the set of permitted roles currently held by at least one
// user in the system; a desk's role restriction only activates once one of
// its roles appears there.
type Requestor struct {
	UserID     uuid.UUID
	Roles      []string
	RolesInUse map[string]struct{}
}

func (r Requestor) holdsAny(roles []string) bool {
	for _, want := range roles {
		for _, have := range r.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

func (r Requestor) anyRoleActive(roles []string) bool {
	for _, role := range roles {
		if _, ok := r.RolesInUse[role]; ok {
			return true
		}
	}
	return false
}

// AvailableSlots lists the free "H:mm - H:mm" slots of the requested duration
// for one room on one office-local calendar day.
//
// Candidates are generated with step = requested duration; occupancy is
// decomposed to the 30-minute base grid so candidates of any duration are
// tested against the same occupied set. A reservation shorter than the base
// grid that still lies in the future contributes one verbatim label, so
// sub-granularity reservations block availability too.
func AvailableSlots(
	room *office.Room,
	pol schedule.Policy,
	date time.Time,
	durationMinutes int,
	existing []*RoomReservation,
	now time.Time,
) ([]string, error) {
	open := room.OpenTime
	if pol.IsToday(date, now) {
		clamped := schedule.RoundUpToStep(now, time.Duration(schedule.DefaultStepMinutes)*time.Minute)
		clampedClock := pol.LocalClock(clamped)
		cmp, err := schedule.CompareClock(clampedClock, open)
		if err != nil {
			return nil, err
		}
		if cmp > 0 {
			open = clampedClock
		}
	}

	candidates, err := schedule.GenerateIntervals(open, room.CloseTime, durationMinutes)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	occupied, err := occupiedLabels(pol, existing, room.ID, now)
	if err != nil {
		return nil, err
	}

	var free []string
	for _, cand := range candidates {
		start, end, err := schedule.ParseInterval(cand)
		if err != nil {
			return nil, err
		}
		parts, err := schedule.GenerateIntervals(schedule.FormatClock(start), schedule.FormatClock(end), schedule.DefaultStepMinutes)
		if err != nil {
			return nil, err
		}
		blocked := false
		for _, part := range parts {
			for _, occ := range occupied {
				hit, err := schedule.Overlaps(part, occ)
				if err != nil {
					return nil, err
				}
				if hit {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
		}
		if !blocked {
			free = append(free, cand)
		}
	}
	return free, nil
}

func occupiedLabels(pol schedule.Policy, existing []*RoomReservation, roomID uuid.UUID, now time.Time) ([]string, error) {
	var labels []string
	for _, res := range existing {
		if !res.IsOccupying() || res.RoomID() != roomID {
			continue
		}
		startClock := pol.LocalClock(res.StartDate())
		endClock := pol.LocalClock(res.EndDate())
		sub, err := schedule.GenerateIntervals(startClock, endClock, schedule.DefaultStepMinutes)
		if err != nil {
			return nil, err
		}
		labels = append(labels, sub...)
		if res.Duration() < time.Duration(schedule.DefaultStepMinutes)*time.Minute && res.EndDate().After(now) {
			labels = append(labels, startClock+" - "+endClock)
		}
	}
	return labels, nil
}

// MergeSlots unions per-room slot lists into one chronologically ordered,
// deduplicated list for the combined all-rooms endpoint.
func MergeSlots(perRoom ...[]string) ([]string, error) {
	seen := make(map[string]struct{})
	var merged []string
	for _, slots := range perRoom {
		for _, s := range slots {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			merged = append(merged, s)
		}
	}
	var sortErr error
	sort.SliceStable(merged, func(i, j int) bool {
		si, _, err := schedule.ParseInterval(merged[i])
		if err != nil {
			sortErr = err
			return false
		}
		sj, _, err := schedule.ParseInterval(merged[j])
		if err != nil {
			sortErr = err
			return false
		}
		return si < sj
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return merged, nil
}

// FreeDesks lists the desks free for every requested date.
//
// Order of the rules follows the booking flow: unavailable areas drop first,
// then areas fully reserved on any requested date, then role gating (active
// only when one of the permitted roles is held somewhere in the system),
// then unlimited-capacity desks pass unconditionally, personal desks only for
// their owner, and finally plain occupancy.
func FreeDesks(
	off *office.Office,
	det *Detector,
	dates []time.Time,
	existing []*Visit,
	req Requestor,
) []DeskRef {
	var free []DeskRef
	for _, area := range off.Areas {
		if !area.Available {
			continue
		}
		fullyReserved := false
		for _, date := range dates {
			if det.AreaFullyReservedOn(existing, area.ID, date) {
				fullyReserved = true
				break
			}
		}
		for _, desk := range area.Desks {
			if fullyReserved && !deskOccupiesArea(det, area.ID, desk.ID) {
				// Full-area occupancy blocks every other desk; the full-area
				// desk itself is still blocked by the plain occupancy check.
				continue
			}
			if len(desk.PermittedRoles) > 0 && req.anyRoleActive(desk.PermittedRoles) && !req.holdsAny(desk.PermittedRoles) {
				continue
			}
			if desk.AllowMultipleBookings {
				free = append(free, DeskRef{AreaID: area.ID, DeskID: desk.ID})
				continue
			}
			if desk.Kind == office.DeskPersonal && !desk.IsOwnedBy(req.UserID) {
				continue
			}
			if deskOccupiedOnAny(existing, area.ID, desk.ID, dates) {
				continue
			}
			if desk.FullAreaBooking && areaOccupiedOnAny(det, existing, area.ID, desk.ID, dates) {
				continue
			}
			free = append(free, DeskRef{AreaID: area.ID, DeskID: desk.ID})
		}
	}
	return free
}

func deskOccupiesArea(det *Detector, areaID, deskID uuid.UUID) bool {
	id, ok := det.fullAreaDesks[areaID]
	return ok && id == deskID
}

func deskOccupiedOnAny(existing []*Visit, areaID, deskID uuid.UUID, dates []time.Time) bool {
	for _, ex := range existing {
		if !ex.IsOccupying() || ex.AreaID() != areaID || ex.DeskID() != deskID {
			continue
		}
		for _, date := range dates {
			if SameDay(ex.Date(), date) {
				return true
			}
		}
	}
	return false
}

func areaOccupiedOnAny(det *Detector, existing []*Visit, areaID, fullDeskID uuid.UUID, dates []time.Time) bool {
	for _, date := range dates {
		if det.areaOccupiedExcept(existing, areaID, fullDeskID, date) {
			return true
		}
	}
	return false
}
