//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// OfficeFixture is one seeded office with the IDs tests need to address its
// parts directly.
type OfficeFixture struct {
	OfficeID         uuid.UUID
	AreaID           uuid.UUID
	DeskIDs          []uuid.UUID
	FullAreaDeskID   uuid.UUID
	PersonalDeskID   uuid.UUID
	PersonalOwner    uuid.UUID
	RestrictedDeskID uuid.UUID
	RestrictedRole   string
	RoomID           uuid.UUID
	ManualRoomID     uuid.UUID
}

// SeedOffice inserts a complete office: one area with three shared desks,
// one full-area desk, one personal desk and one role-restricted desk, plus
// an auto-confirming room and a manually confirmed one. Working days are
// Monday through Friday.
//
// The engine snapshots the office topology at startup, so this must run
// before the application is built.
func SeedOffice(t *testing.T, db DBLike, timezone string) OfficeFixture {
	t.Helper()
	ctx := context.Background()

	fx := OfficeFixture{
		OfficeID:         uuid.New(),
		AreaID:           uuid.New(),
		FullAreaDeskID:   uuid.New(),
		PersonalDeskID:   uuid.New(),
		PersonalOwner:    uuid.New(),
		RestrictedDeskID: uuid.New(),
		RestrictedRole:   "finance",
		RoomID:           uuid.New(),
		ManualRoomID:     uuid.New(),
	}

	_, err := db.Exec(ctx,
		`INSERT INTO offices (id, name, timezone, working_days) VALUES ($1, $2, $3, '{1,2,3,4,5}')`,
		fx.OfficeID, "Test Office", timezone)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO areas (id, office_id, name, bookable, available) VALUES ($1, $2, $3, true, true)`,
		fx.AreaID, fx.OfficeID, "Open Space")
	require.NoError(t, err)

	for i := range 3 {
		deskID := uuid.New()
		_, err = db.Exec(ctx,
			`INSERT INTO desks (id, area_id, name, kind, position) VALUES ($1, $2, $3, 'shared', $4)`,
			deskID, fx.AreaID, fmt.Sprintf("Desk %d", i+1), i)
		require.NoError(t, err)
		fx.DeskIDs = append(fx.DeskIDs, deskID)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO desks (id, area_id, name, kind, full_area_booking, position) VALUES ($1, $2, 'Whole Area', 'shared', true, 3)`,
		fx.FullAreaDeskID, fx.AreaID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO desks (id, area_id, name, kind, owner_id, position) VALUES ($1, $2, 'Corner Desk', 'personal', $3, 4)`,
		fx.PersonalDeskID, fx.AreaID, fx.PersonalOwner)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO desks (id, area_id, name, kind, permitted_roles, position) VALUES ($1, $2, 'Finance Desk', 'shared', $3, 5)`,
		fx.RestrictedDeskID, fx.AreaID, []string{fx.RestrictedRole})
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO rooms (id, office_id, name, open_time, close_time, auto_confirm, available)
		 VALUES ($1, $2, 'Aquarium', '9:00', '18:00', true, true)`,
		fx.RoomID, fx.OfficeID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO rooms (id, office_id, name, open_time, close_time, auto_confirm, available)
		 VALUES ($1, $2, 'Boardroom', '9:00', '18:00', false, true)`,
		fx.ManualRoomID, fx.OfficeID)
	require.NoError(t, err)

	return fx
}

// AssignRole records that the user holds the role, which activates any desk
// restriction naming it. Role membership is read per request, so this takes
// effect immediately.
func AssignRole(t *testing.T, db DBLike, userID uuid.UUID, role string) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, role)
	require.NoError(t, err)
}

func CountVisits(t *testing.T, db DBLike, officeID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM visits WHERE office_id = $1 AND status IN ('pending', 'confirmed')`,
		officeID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRoomReservations(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM room_reservations WHERE room_id = $1 AND status IN ('pending', 'confirmed')`,
		roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB clears the mutable booking state between tests. The office
// topology tables stay untouched: the engine snapshots them at startup, and
// truncating them would desync the in-memory catalog from the database.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE visits, room_reservations, user_roles RESTART IDENTITY CASCADE`)
	return err
}
