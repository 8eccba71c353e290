// Package officeconfig loads the static office topology (areas, desks,
// rooms, timezone, working days) from its read-only tables into an immutable
// in-memory snapshot. The snapshot is versioned by deployment: it is built
// once at startup and shared by every request without locking.
package officeconfig

import (
	"context"
	"time"

	"office-booking/internal/domain/office"
	"office-booking/internal/infra"
	"office-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOfficeNotFound = errs.New("office not found")

type Provider struct {
	offices map[uuid.UUID]*office.Office
}

func (p *Provider) GetOfficeByID(id uuid.UUID) (*office.Office, error) {
	off, ok := p.offices[id]
	if !ok {
		return nil, ErrOfficeNotFound
	}
	return off, nil
}

func (p *Provider) Offices() []*office.Office {
	result := make([]*office.Office, 0, len(p.offices))
	for _, off := range p.offices {
		result = append(result, off)
	}
	return result
}

// Load reads the full office topology. Timezones are resolved eagerly so a
// misconfigured office fails the deployment, not a request.
func Load(ctx context.Context, pool *pgxpool.Pool) (*Provider, error) {
	offices, err := loadOffices(ctx, pool)
	if err != nil {
		return nil, err
	}
	if err := loadAreas(ctx, pool, offices); err != nil {
		return nil, err
	}
	if err := loadDesks(ctx, pool, offices); err != nil {
		return nil, err
	}
	if err := loadRooms(ctx, pool, offices); err != nil {
		return nil, err
	}

	for _, off := range offices {
		if _, err := off.Location(); err != nil {
			return nil, errs.Wrapf(err, "office %s", off.Name)
		}
	}
	return &Provider{offices: offices}, nil
}

func loadOffices(ctx context.Context, pool *pgxpool.Pool) (map[uuid.UUID]*office.Office, error) {
	rows, err := pool.Query(ctx, `SELECT id, name, timezone, working_days FROM offices`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load offices", err)
	}
	defer rows.Close()

	offices := make(map[uuid.UUID]*office.Office)
	for rows.Next() {
		var (
			id          uuid.UUID
			name, tz    string
			workingDays []int32
		)
		if err := rows.Scan(&id, &name, &tz, &workingDays); err != nil {
			return nil, infra.WrapRepoErr("failed to scan office", err)
		}
		days := make([]time.Weekday, len(workingDays))
		for i, d := range workingDays {
			days[i] = time.Weekday(d)
		}
		offices[id] = &office.Office{ID: id, Name: name, Timezone: tz, WorkingDays: days}
	}
	return offices, rows.Err()
}

func loadAreas(ctx context.Context, pool *pgxpool.Pool, offices map[uuid.UUID]*office.Office) error {
	rows, err := pool.Query(ctx, `SELECT id, office_id, name, bookable, available FROM areas ORDER BY position, id`)
	if err != nil {
		return infra.WrapRepoErr("failed to load areas", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, officeID        uuid.UUID
			name                string
			bookable, available bool
		)
		if err := rows.Scan(&id, &officeID, &name, &bookable, &available); err != nil {
			return infra.WrapRepoErr("failed to scan area", err)
		}
		off, ok := offices[officeID]
		if !ok {
			continue
		}
		off.Areas = append(off.Areas, office.Area{ID: id, Name: name, Bookable: bookable, Available: available})
	}
	return rows.Err()
}

func loadDesks(ctx context.Context, pool *pgxpool.Pool, offices map[uuid.UUID]*office.Office) error {
	rows, err := pool.Query(ctx, `
		SELECT id, area_id, name, kind, allow_multiple_bookings, full_area_booking, permitted_roles, owner_id
		FROM desks ORDER BY position, id`)
	if err != nil {
		return infra.WrapRepoErr("failed to load desks", err)
	}
	defer rows.Close()

	areaIndex := make(map[uuid.UUID]*office.Area)
	for _, off := range offices {
		for i := range off.Areas {
			areaIndex[off.Areas[i].ID] = &off.Areas[i]
		}
	}

	for rows.Next() {
		var (
			id, areaID       uuid.UUID
			name, kind       string
			allowMulti, full bool
			permittedRoles   []string
			ownerID          *uuid.UUID
		)
		if err := rows.Scan(&id, &areaID, &name, &kind, &allowMulti, &full, &permittedRoles, &ownerID); err != nil {
			return infra.WrapRepoErr("failed to scan desk", err)
		}
		area, ok := areaIndex[areaID]
		if !ok {
			continue
		}
		area.Desks = append(area.Desks, office.Desk{
			ID:                    id,
			Name:                  name,
			Kind:                  office.DeskKind(kind),
			AllowMultipleBookings: allowMulti,
			FullAreaBooking:       full,
			PermittedRoles:        permittedRoles,
			OwnerID:               ownerID,
		})
	}
	return rows.Err()
}

func loadRooms(ctx context.Context, pool *pgxpool.Pool, offices map[uuid.UUID]*office.Office) error {
	rows, err := pool.Query(ctx, `
		SELECT id, office_id, name, open_time, close_time, auto_confirm, available
		FROM rooms ORDER BY name, id`)
	if err != nil {
		return infra.WrapRepoErr("failed to load rooms", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, officeID              uuid.UUID
			name, openTime, closeTime string
			autoConfirm, available    bool
		)
		if err := rows.Scan(&id, &officeID, &name, &openTime, &closeTime, &autoConfirm, &available); err != nil {
			return infra.WrapRepoErr("failed to scan room", err)
		}
		off, ok := offices[officeID]
		if !ok {
			continue
		}
		off.Rooms = append(off.Rooms, office.Room{
			ID:          id,
			Name:        name,
			OpenTime:    openTime,
			CloseTime:   closeTime,
			AutoConfirm: autoConfirm,
			Available:   available,
		})
	}
	return rows.Err()
}
