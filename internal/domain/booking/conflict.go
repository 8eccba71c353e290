package booking

import (
	"time"

	"office-booking/internal/domain/office"

	"github.com/google/uuid"
)

// Detector evaluates candidate bookings against the currently occupying ones
// for a single office. It is pure: callers read the live reservation rows
// (under the committing transaction's lock) and hand them in.
type Detector struct {
	office        *office.Office
	fullAreaDesks map[uuid.UUID]uuid.UUID // areaID -> designated full-area desk
}

// NewDetector derives the full-area desk pairs up front; an ambiguous
// configuration (two full-area desks in one area) is surfaced here, never
// silently resolved.
func NewDetector(off *office.Office) (*Detector, error) {
	pairs, err := off.FullAreaDesks()
	if err != nil {
		return nil, err
	}
	return &Detector{office: off, fullAreaDesks: pairs}, nil
}

// ConflictedVisits returns the candidates that collide with an existing
// occupying visit on the same area, desk and calendar day. Desks that allow
// multiple bookings never collide.
func (d *Detector) ConflictedVisits(candidates, existing []*Visit) []*Visit {
	var conflicted []*Visit
	for _, cand := range candidates {
		if d.allowsMultiple(cand.AreaID(), cand.DeskID()) {
			continue
		}
		for _, ex := range existing {
			if !ex.IsOccupying() {
				continue
			}
			if ex.AreaID() == cand.AreaID() && ex.DeskID() == cand.DeskID() && SameDay(ex.Date(), cand.Date()) {
				conflicted = append(conflicted, cand)
				break
			}
		}
	}
	return conflicted
}

// FullAreaConflicts enforces both directions of the full-area rule per date:
// an ordinary desk cannot be booked while the area's full-area desk is
// occupied, and the full-area desk cannot be booked while any other desk in
// the area is occupied. Checking only one direction leaves a race where both
// end up occupied at once.
func (d *Detector) FullAreaConflicts(candidates, existing []*Visit) []*Visit {
	var conflicted []*Visit
	for _, cand := range candidates {
		fullDeskID, ok := d.fullAreaDesks[cand.AreaID()]
		if !ok {
			continue
		}
		if cand.DeskID() == fullDeskID {
			if d.areaOccupiedExcept(existing, cand.AreaID(), fullDeskID, cand.Date()) {
				conflicted = append(conflicted, cand)
			}
			continue
		}
		if d.deskOccupiedOn(existing, cand.AreaID(), fullDeskID, cand.Date()) {
			conflicted = append(conflicted, cand)
		}
	}
	return conflicted
}

// Conflicts is the union the committer evaluates inside its transaction:
// plain desk collisions plus full-area violations, against the existing rows
// and within the batch itself, deduplicated. Without the intra-batch pass a
// single request could commit two occupying visits for one desk/date.
func (d *Detector) Conflicts(candidates, existing []*Visit) []*Visit {
	seen := make(map[uuid.UUID]struct{})
	var conflicted []*Visit
	add := func(vs []*Visit) {
		for _, v := range vs {
			if _, dup := seen[v.ID()]; dup {
				continue
			}
			seen[v.ID()] = struct{}{}
			conflicted = append(conflicted, v)
		}
	}

	add(d.ConflictedVisits(candidates, existing))
	add(d.FullAreaConflicts(candidates, existing))

	// Each candidate is also checked against the ones before it, so of a
	// duplicate pair the first stays bookable and the rest conflict.
	for i := range candidates {
		single := candidates[i : i+1]
		add(d.ConflictedVisits(single, candidates[:i]))
		add(d.FullAreaConflicts(single, candidates[:i]))
	}
	return conflicted
}

// ReservedAreaIDs lists the areas whose full-area desk has an occupying visit
// among the given rows. Callers pre-filter the rows to the dates of interest.
func (d *Detector) ReservedAreaIDs(existing []*Visit) map[uuid.UUID]struct{} {
	reserved := make(map[uuid.UUID]struct{})
	for areaID, deskID := range d.fullAreaDesks {
		for _, ex := range existing {
			if ex.IsOccupying() && ex.AreaID() == areaID && ex.DeskID() == deskID {
				reserved[areaID] = struct{}{}
				break
			}
		}
	}
	return reserved
}

// AreaFullyReservedOn reports whether the area's full-area desk is occupied
// on the given calendar day.
func (d *Detector) AreaFullyReservedOn(existing []*Visit, areaID uuid.UUID, date time.Time) bool {
	deskID, ok := d.fullAreaDesks[areaID]
	if !ok {
		return false
	}
	return d.deskOccupiedOn(existing, areaID, deskID, date)
}

func (d *Detector) deskOccupiedOn(existing []*Visit, areaID, deskID uuid.UUID, date time.Time) bool {
	for _, ex := range existing {
		if ex.IsOccupying() && ex.AreaID() == areaID && ex.DeskID() == deskID && SameDay(ex.Date(), date) {
			return true
		}
	}
	return false
}

func (d *Detector) areaOccupiedExcept(existing []*Visit, areaID, exceptDeskID uuid.UUID, date time.Time) bool {
	for _, ex := range existing {
		if ex.IsOccupying() && ex.AreaID() == areaID && ex.DeskID() != exceptDeskID && SameDay(ex.Date(), date) {
			return true
		}
	}
	return false
}

func (d *Detector) allowsMultiple(areaID, deskID uuid.UUID) bool {
	area, err := d.office.AreaByID(areaID)
	if err != nil {
		return false
	}
	desk, err := area.DeskByID(deskID)
	if err != nil {
		return false
	}
	return desk.AllowMultipleBookings
}

// OverlappingReservation returns the first occupying reservation whose
// [start, end) interval truly intersects the candidate's, or nil.
func OverlappingReservation(candidate *RoomReservation, existing []*RoomReservation) *RoomReservation {
	for _, ex := range existing {
		if !ex.IsOccupying() || ex.RoomID() != candidate.RoomID() {
			continue
		}
		if ex.ID() == candidate.ID() {
			continue
		}
		if ex.OverlapsInterval(candidate.StartDate(), candidate.EndDate()) {
			return ex
		}
	}
	return nil
}
