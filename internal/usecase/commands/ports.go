package commands

import (
	"context"
	"time"

	"office-booking/internal/domain/booking"
	"office-booking/internal/domain/office"
	"office-booking/internal/infra/db"
	"office-booking/internal/infra/notify"

	"github.com/google/uuid"
)

type OfficeProvider interface {
	GetOfficeByID(id uuid.UUID) (*office.Office, error)
}

type VisitRepository interface {
	LockAreas(ctx context.Context, tx db.DBTX, areaIDs []uuid.UUID) error
	OccupyingByOfficeAndDates(ctx context.Context, tx db.DBTX, officeID uuid.UUID, dates []time.Time) ([]*booking.Visit, error)
	BulkCreate(ctx context.Context, tx db.DBTX, visits []*booking.Visit) error
	GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Visit, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type RoomReservationRepository interface {
	LockRoom(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error
	OccupyingOverlapping(ctx context.Context, tx db.DBTX, roomID uuid.UUID, from, to time.Time) ([]*booking.RoomReservation, error)
	Create(ctx context.Context, tx db.DBTX, res *booking.RoomReservation) error
	GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.RoomReservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type RoleReads interface {
	RolesInUse(ctx context.Context, roles []string) (map[string]struct{}, error)
}

// Notifier publishes booking events after commit. Implementations must be
// fire-and-forget: they log failures and never return them.
type Notifier interface {
	Publish(ctx context.Context, event notify.Event)
}

// CacheInvalidator drops availability cache entries for an office after a
// commit.
type CacheInvalidator interface {
	InvalidateOffice(ctx context.Context, officeID string)
}

// Actor is the authenticated caller as the boundary layer resolved it.
type Actor struct {
	UserID  uuid.UUID
	Roles   []string
	IsAdmin bool
}
