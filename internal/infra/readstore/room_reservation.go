package readstore

import (
	"context"
	"time"

	"office-booking/internal/domain/booking"
	"office-booking/internal/infra"
	"office-booking/internal/infra/repository"
	"office-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomReservationReadStore struct {
	pool *pgxpool.Pool
	repo *repository.RoomReservationRepository
}

func NewRoomReservationReadStore(pool *pgxpool.Pool, repo *repository.RoomReservationRepository) *RoomReservationReadStore {
	return &RoomReservationReadStore{pool: pool, repo: repo}
}

func (s *RoomReservationReadStore) OccupyingOverlapping(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*booking.RoomReservation, error) {
	return s.repo.OccupyingOverlapping(ctx, s.pool, roomID, from, to)
}

func (s *RoomReservationReadStore) FindByRoomBetween(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*queries.RoomReservationView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, office_id, room_id, creator_id, start_date, end_date, status, attendees, created_at, updated_at
		FROM room_reservations
		WHERE room_id = $1 AND status IN ('pending', 'confirmed')
		  AND start_date < $3 AND end_date > $2
		ORDER BY start_date`,
		roomID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by room", err)
	}
	defer rows.Close()

	var views []*queries.RoomReservationView
	for rows.Next() {
		var v queries.RoomReservationView
		if err := rows.Scan(&v.ID, &v.OfficeID, &v.RoomID, &v.CreatorID, &v.StartDate, &v.EndDate, &v.Status, &v.Attendees, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation views", err)
	}
	return views, nil
}
