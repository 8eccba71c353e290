package repository

import (
	"context"
	"time"

	"office-booking/internal/domain/booking"
	"office-booking/internal/infra"
	"office-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, office_id, room_id, creator_id, start_date, end_date, status, attendees, created_at, updated_at`

type RoomReservationRepository struct{}

func NewRoomReservationRepository() *RoomReservationRepository {
	return &RoomReservationRepository{}
}

// LockRoom serializes concurrent reservations for one room on the room's
// config row, closing the read-then-insert race window.
func (r *RoomReservationRepository) LockRoom(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error {
	rows, err := tx.Query(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	rows.Close()
	return rows.Err()
}

// OccupyingOverlapping reads the pending/confirmed reservations whose
// [start_date, end_date) interval intersects [from, to).
func (r *RoomReservationRepository) OccupyingOverlapping(ctx context.Context, tx db.DBTX, roomID uuid.UUID, from, to time.Time) ([]*booking.RoomReservation, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM room_reservations
		WHERE room_id = $1 AND status IN ('pending', 'confirmed')
		  AND start_date < $3 AND end_date > $2`,
		roomID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read occupying reservations", err)
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *RoomReservationRepository) Create(ctx context.Context, tx db.DBTX, res *booking.RoomReservation) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO room_reservations (id, office_id, room_id, creator_id, start_date, end_date, status, attendees)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID(), res.OfficeID(), res.RoomID(), res.CreatorID(), res.StartDate(), res.EndDate(), res.Status().String(), res.Attendees())
	if err != nil {
		return infra.WrapRepoErr("failed to insert room reservation", err)
	}
	return nil
}

func (r *RoomReservationRepository) GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.RoomReservation, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM room_reservations WHERE id = $1 FOR UPDATE`, id)
	res, err := scanReservation(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("room reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read room reservation", err)
	}
	return res, nil
}

func (r *RoomReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, `UPDATE room_reservations SET status = $2, updated_at = now() WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanReservation(row rowScanner) (*booking.RoomReservation, error) {
	var (
		id, officeID, roomID, creatorID uuid.UUID
		start, end                      time.Time
		status                          string
		attendees                       []uuid.UUID
		createdAt, updatedAt            time.Time
	)
	if err := row.Scan(&id, &officeID, &roomID, &creatorID, &start, &end, &status, &attendees, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return booking.ReconstructRoomReservation(id, officeID, roomID, creatorID, start, end, booking.Status(status), attendees, createdAt, updatedAt), nil
}

func scanReservations(rows pgx.Rows) ([]*booking.RoomReservation, error) {
	var reservations []*booking.RoomReservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return reservations, nil
}
