package commands

import (
	"context"
	"encoding/json"
	"sort"
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

// VisitSelection is one desk with the calendar days it should be held for.
type VisitSelection struct {
	AreaID uuid.UUID
	DeskID uuid.UUID
	Dates  []time.Time
}

type CreateVisitsParams struct {
	OfficeID   uuid.UUID
	Status     booking.Status // empty defaults to confirmed
	Metadata   json.RawMessage
	Selections []VisitSelection
}

type CreateVisitsResult struct {
	VisitIDs []uuid.UUID
}

type VisitCommands interface {
	CreateVisits(ctx context.Context, params CreateVisitsParams, actor Actor) (*CreateVisitsResult, error)
	UpdateVisitStatus(ctx context.Context, visitID uuid.UUID, status booking.Status, actor Actor) error
}

type visitCommandsImpl struct {
	offices   OfficeProvider
	visits    VisitRepository
	roleReads RoleReads
	notifier  Notifier
	cache     CacheInvalidator
	pool      *pgxpool.Pool
	clock     clock.Clock
}

func NewVisitCommands(
	offices OfficeProvider,
	visits VisitRepository,
	roleReads RoleReads,
	notifier Notifier,
	cacheInvalidator CacheInvalidator,
	pool *pgxpool.Pool,
	clk clock.Clock,
) VisitCommands {
	return &visitCommandsImpl{
		offices:   offices,
		visits:    visits,
		roleReads: roleReads,
		notifier:  notifier,
		cache:     cacheInvalidator,
		pool:      pool,
		clock:     clk,
	}
}

// CreateVisits commits a whole booking batch or nothing. Validation runs
// before the transaction; the conflict check and the inserts run inside one
// transaction under the area locks, so no concurrent request can claim the
// same desk/date between check and insert.
func (c *visitCommandsImpl) CreateVisits(ctx context.Context, params CreateVisitsParams, actor Actor) (*CreateVisitsResult, error) {
	off, det, pol, err := c.resolveOffice(params.OfficeID)
	if err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = booking.StatusConfirmed
	}
	if !status.IsOccupying() {
		return nil, ErrInvalidStatus
	}

	candidates, areaIDs, err := c.buildCandidates(ctx, off, pol, params, status, actor)
	if err != nil {
		return nil, err
	}

	dates := candidateDates(candidates)

	result, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (*CreateVisitsResult, error) {
		if err := c.visits.LockAreas(ctx, tx, areaIDs); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := c.visits.OccupyingByOfficeAndDates(ctx, tx, off.ID, dates)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if conflicted := det.Conflicts(candidates, existing); len(conflicted) > 0 {
			return nil, conflictError(off, conflicted)
		}

		if err := c.visits.BulkCreate(ctx, tx, candidates); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		ids := make([]uuid.UUID, len(candidates))
		for i, v := range candidates {
			ids[i] = v.ID()
		}
		return &CreateVisitsResult{VisitIDs: ids}, nil
	})
	if err != nil {
		return nil, err
	}

	c.afterCommit(off.ID, actor.UserID, notify.EventVisitsBooked, result.VisitIDs)
	return result, nil
}

func (c *visitCommandsImpl) UpdateVisitStatus(ctx context.Context, visitID uuid.UUID, status booking.Status, actor Actor) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	visit, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (*booking.Visit, error) {
		visit, err := c.visits.GetForUpdate(ctx, tx, visitID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrVisitNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !actor.IsAdmin && !visit.IsOwnedBy(actor.UserID) {
			return nil, ErrForbidden
		}
		wasOccupying := visit.IsOccupying()
		if err := visit.Transition(status, actor.IsAdmin); err != nil {
			return nil, errs.Mark(err, ErrForbiddenTransition)
		}
		// Reinstating a cancelled visit re-occupies the desk, so it must pass
		// the same conflict check a fresh booking would: the desk may have
		// been re-booked since the cancellation.
		if !wasOccupying && visit.IsOccupying() {
			if err := c.recheckConflicts(ctx, tx, visit); err != nil {
				return nil, err
			}
		}
		if err := c.visits.UpdateStatus(ctx, tx, visitID, status); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return visit, nil
	})
	if err != nil {
		return err
	}

	c.afterCommit(visit.OfficeID(), actor.UserID, notify.EventVisitStatusChanged, []uuid.UUID{visitID})
	return nil
}

// recheckConflicts runs under the caller's transaction: it takes the same
// area lock CreateVisits takes, then evaluates the visit against the
// occupying rows of its day. The visit's stored status is still
// non-occupying here, so it cannot collide with itself.
func (c *visitCommandsImpl) recheckConflicts(ctx context.Context, tx db.DBTX, visit *booking.Visit) error {
	off, det, _, err := c.resolveOffice(visit.OfficeID())
	if err != nil {
		return err
	}
	if err := c.visits.LockAreas(ctx, tx, []uuid.UUID{visit.AreaID()}); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	existing, err := c.visits.OccupyingByOfficeAndDates(ctx, tx, visit.OfficeID(), []time.Time{visit.Date()})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflicted := det.Conflicts([]*booking.Visit{visit}, existing); len(conflicted) > 0 {
		return conflictError(off, conflicted)
	}
	return nil
}

func (c *visitCommandsImpl) resolveOffice(officeID uuid.UUID) (*office.Office, *booking.Detector, schedule.Policy, error) {
	off, err := c.offices.GetOfficeByID(officeID)
	if err != nil {
		return nil, nil, schedule.Policy{}, errs.Mark(err, ErrOfficeNotFound)
	}
	det, err := booking.NewDetector(off)
	if err != nil {
		return nil, nil, schedule.Policy{}, errs.Mark(err, ErrOfficeMisconfigured)
	}
	pol, err := schedule.NewPolicy(off.Timezone, off.WorkingDays)
	if err != nil {
		return nil, nil, schedule.Policy{}, errs.Mark(err, ErrOfficeMisconfigured)
	}
	return off, det, pol, nil
}

// buildCandidates validates every selection against static config and the
// working-hours policy, and expands it into one Visit per desk per date.
func (c *visitCommandsImpl) buildCandidates(
	ctx context.Context,
	off *office.Office,
	pol schedule.Policy,
	params CreateVisitsParams,
	status booking.Status,
	actor Actor,
) ([]*booking.Visit, []uuid.UUID, error) {
	if len(params.Selections) == 0 {
		return nil, nil, ErrEmptyBatch
	}

	rolesInUse, err := c.roleReads.RolesInUse(ctx, allPermittedRoles(off))
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	requestor := booking.Requestor{UserID: actor.UserID, Roles: actor.Roles, RolesInUse: rolesInUse}

	var candidates []*booking.Visit
	areaSet := make(map[uuid.UUID]struct{})
	now := c.clock.Now()

	for _, sel := range params.Selections {
		if len(sel.Dates) == 0 {
			return nil, nil, ErrEmptyBatch
		}
		area, err := off.AreaByID(sel.AreaID)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrAreaNotFound)
		}
		if !area.Available {
			return nil, nil, ErrAreaUnavailable
		}
		desk, err := area.DeskByID(sel.DeskID)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrDeskNotFound)
		}
		if err := checkDeskAccess(desk, requestor); err != nil {
			return nil, nil, err
		}

		areaSet[area.ID] = struct{}{}
		for _, date := range sel.Dates {
			if pol.IsWeekend(date) {
				return nil, nil, ErrWeekendDate
			}
			if pol.IsPastDate(date, now) {
				return nil, nil, ErrPastDate
			}
			visit, err := booking.NewVisit(actor.UserID, off.ID, area.ID, desk.ID, date, status, params.Metadata)
			if err != nil {
				return nil, nil, errs.Mark(err, ErrInvalidStatus)
			}
			candidates = append(candidates, visit)
		}
	}

	areaIDs := make([]uuid.UUID, 0, len(areaSet))
	for id := range areaSet {
		areaIDs = append(areaIDs, id)
	}
	sort.Slice(areaIDs, func(i, j int) bool { return areaIDs[i].String() < areaIDs[j].String() })

	return candidates, areaIDs, nil
}

func checkDeskAccess(desk *office.Desk, req booking.Requestor) error {
	if desk.Kind == office.DeskPersonal && !desk.IsOwnedBy(req.UserID) {
		return ErrDeskNotPermitted
	}
	if len(desk.PermittedRoles) > 0 {
		active := false
		for _, role := range desk.PermittedRoles {
			if _, ok := req.RolesInUse[role]; ok {
				active = true
				break
			}
		}
		if active && !holdsAny(req.Roles, desk.PermittedRoles) {
			return ErrDeskNotPermitted
		}
	}
	return nil
}

func holdsAny(held, wanted []string) bool {
	for _, w := range wanted {
		for _, h := range held {
			if h == w {
				return true
			}
		}
	}
	return false
}

func candidateDates(candidates []*booking.Visit) []time.Time {
	seen := make(map[time.Time]struct{})
	var dates []time.Time
	for _, v := range candidates {
		if _, dup := seen[v.Date()]; dup {
			continue
		}
		seen[v.Date()] = struct{}{}
		dates = append(dates, v.Date())
	}
	return dates
}

func conflictError(off *office.Office, conflicted []*booking.Visit) error {
	items := make([]ConflictedVisit, len(conflicted))
	for i, v := range conflicted {
		item := ConflictedVisit{Date: v.Date()}
		if area, err := off.AreaByID(v.AreaID()); err == nil {
			item.AreaName = area.Name
			if desk, err := area.DeskByID(v.DeskID()); err == nil {
				item.DeskName = desk.Name
			}
		}
		items[i] = item
	}
	return &VisitConflictError{Items: items}
}

func allPermittedRoles(off *office.Office) []string {
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

func (c *visitCommandsImpl) afterCommit(officeID, userID uuid.UUID, kind string, visitIDs []uuid.UUID) {
	// Post-commit side effects are detached from the request: a slow broker
	// or cache must not delay or fail the response.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		defer cancel()
		c.cache.InvalidateOffice(ctx, officeID.String())
		payload, _ := json.Marshal(map[string]any{"visit_ids": visitIDs})
		c.notifier.Publish(ctx, notify.Event{
			Kind:       kind,
			OfficeID:   officeID.String(),
			UserID:     userID.String(),
			OccurredAt: c.clock.Now(),
			Payload:    payload,
		})
	}()
}
