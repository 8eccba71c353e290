package office

import (
	"time"

	"office-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownArea           = errs.New("unknown area")
	ErrUnknownDesk           = errs.New("unknown desk")
	ErrUnknownRoom           = errs.New("unknown room")
	ErrInvalidTimezone       = errs.New("invalid office timezone")
	ErrAmbiguousFullAreaDesk = errs.New("area configures more than one full-area desk")
)

// Office is immutable reference data: it is loaded once per deployment and
// shared by every request, so nothing here may be mutated after construction.
type Office struct {
	ID          uuid.UUID
	Name        string
	Timezone    string // IANA name, e.g. "Europe/Berlin"
	WorkingDays []time.Weekday
	Areas       []Area
	Rooms       []Room
}

type Area struct {
	ID        uuid.UUID
	Name      string
	Bookable  bool // the whole area can be claimed as one unit
	Available bool
	Desks     []Desk
}

type DeskKind string

const (
	DeskPersonal DeskKind = "personal"
	DeskShared   DeskKind = "shared"
)

type Desk struct {
	ID                    uuid.UUID
	Name                  string
	Kind                  DeskKind
	AllowMultipleBookings bool
	FullAreaBooking       bool
	PermittedRoles        []string
	OwnerID               *uuid.UUID // set for personal desks
}

type Room struct {
	ID          uuid.UUID
	Name        string
	OpenTime    string // "HH:mm" office-local
	CloseTime   string // "HH:mm" office-local
	AutoConfirm bool
	Available   bool
}

func (o *Office) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimezone)
	}
	return loc, nil
}

func (o *Office) IsWorkingDay(d time.Weekday) bool {
	for _, wd := range o.WorkingDays {
		if wd == d {
			return true
		}
	}
	return false
}

func (o *Office) AreaByID(id uuid.UUID) (*Area, error) {
	for i := range o.Areas {
		if o.Areas[i].ID == id {
			return &o.Areas[i], nil
		}
	}
	return nil, ErrUnknownArea
}

func (o *Office) RoomByID(id uuid.UUID) (*Room, error) {
	for i := range o.Rooms {
		if o.Rooms[i].ID == id {
			return &o.Rooms[i], nil
		}
	}
	return nil, ErrUnknownRoom
}

func (a *Area) DeskByID(id uuid.UUID) (*Desk, error) {
	for i := range a.Desks {
		if a.Desks[i].ID == id {
			return &a.Desks[i], nil
		}
	}
	return nil, ErrUnknownDesk
}

// FullAreaDesks maps each bookable area to its designated full-area desk.
// More than one full-area desk in a single area is a configuration defect
// and is reported instead of resolved by picking one.
func (o *Office) FullAreaDesks() (map[uuid.UUID]uuid.UUID, error) {
	pairs := make(map[uuid.UUID]uuid.UUID)
	for _, area := range o.Areas {
		if !area.Bookable {
			continue
		}
		for _, desk := range area.Desks {
			if !desk.FullAreaBooking {
				continue
			}
			if _, dup := pairs[area.ID]; dup {
				return nil, errs.Wrap(ErrAmbiguousFullAreaDesk, area.Name)
			}
			pairs[area.ID] = desk.ID
		}
	}
	return pairs, nil
}

func (d *Desk) IsOwnedBy(userID uuid.UUID) bool {
	return d.OwnerID != nil && *d.OwnerID == userID
}
