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

// VisitReadStore serves availability reads outside any transaction. The
// committer never trusts these snapshots; it re-reads under its own lock.
type VisitReadStore struct {
	pool *pgxpool.Pool
	repo *repository.VisitRepository
}

func NewVisitReadStore(pool *pgxpool.Pool, repo *repository.VisitRepository) *VisitReadStore {
	return &VisitReadStore{pool: pool, repo: repo}
}

func (s *VisitReadStore) OccupyingByOfficeAndDates(ctx context.Context, officeID uuid.UUID, dates []time.Time) ([]*booking.Visit, error) {
	return s.repo.OccupyingByOfficeAndDates(ctx, s.pool, officeID, dates)
}

func (s *VisitReadStore) FindByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]*queries.VisitView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, office_id, area_id, desk_id, date, status, metadata, created_at, updated_at
		FROM visits
		WHERE user_id = $1 AND date >= $2 AND status IN ('pending', 'confirmed')
		ORDER BY date, created_at`,
		userID, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find visits by user", err)
	}
	defer rows.Close()

	var views []*queries.VisitView
	for rows.Next() {
		var v queries.VisitView
		if err := rows.Scan(&v.ID, &v.UserID, &v.OfficeID, &v.AreaID, &v.DeskID, &v.Date, &v.Status, &v.Metadata, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan visit view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate visit views", err)
	}
	return views, nil
}
