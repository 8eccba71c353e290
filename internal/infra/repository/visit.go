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

const visitColumns = `id, user_id, office_id, area_id, desk_id, date, status, metadata, created_at, updated_at`

type VisitRepository struct{}

func NewVisitRepository() *VisitRepository {
	return &VisitRepository{}
}

// LockAreas serializes concurrent bookings touching the same areas by taking
// row locks on the area records, in a fixed order to avoid deadlocks between
// overlapping batches. FOR UPDATE on the visit rows alone would not stop two
// transactions from inserting into an empty desk/date at the same time.
func (r *VisitRepository) LockAreas(ctx context.Context, tx db.DBTX, areaIDs []uuid.UUID) error {
	rows, err := tx.Query(ctx, `SELECT id FROM areas WHERE id = ANY($1) ORDER BY id FOR UPDATE`, areaIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to lock areas", err)
	}
	rows.Close()
	return rows.Err()
}

// OccupyingByOfficeAndDates reads the pending/confirmed visits for the office
// on the given calendar days. Run inside the committing transaction, after
// LockAreas, so the snapshot cannot change before the insert.
func (r *VisitRepository) OccupyingByOfficeAndDates(ctx context.Context, tx db.DBTX, officeID uuid.UUID, dates []time.Time) ([]*booking.Visit, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE office_id = $1 AND date = ANY($2) AND status IN ('pending', 'confirmed')`,
		officeID, dates)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read occupying visits", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

// BulkCreate inserts the batch, denormalizing the desk's exclusivity so the
// partial unique index on occupying visits can act as the store-level
// backstop behind the in-transaction conflict check.
func (r *VisitRepository) BulkCreate(ctx context.Context, tx db.DBTX, visits []*booking.Visit) error {
	for _, v := range visits {
		_, err := tx.Exec(ctx, `
			INSERT INTO visits (id, user_id, office_id, area_id, desk_id, date, status, metadata, exclusive)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			        (SELECT NOT allow_multiple_bookings FROM desks WHERE id = $5))`,
			v.ID(), v.UserID(), v.OfficeID(), v.AreaID(), v.DeskID(), v.Date(), v.Status().String(), v.Metadata())
		if err != nil {
			return infra.WrapRepoErr("failed to insert visit", err)
		}
	}
	return nil
}

func (r *VisitRepository) GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Visit, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+visitColumns+`
		FROM visits WHERE id = $1 FOR UPDATE`, id)
	v, err := scanVisit(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("visit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read visit", err)
	}
	return v, nil
}

func (r *VisitRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, `UPDATE visits SET status = $2, updated_at = now() WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update visit status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("visit not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisit(row rowScanner) (*booking.Visit, error) {
	var (
		id, userID, officeID, areaID, deskID uuid.UUID
		date                                 time.Time
		status                               string
		metadata                             []byte
		createdAt, updatedAt                 time.Time
	)
	if err := row.Scan(&id, &userID, &officeID, &areaID, &deskID, &date, &status, &metadata, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return booking.ReconstructVisit(id, userID, officeID, areaID, deskID, date, booking.Status(status), metadata, createdAt, updatedAt), nil
}

func scanVisits(rows pgx.Rows) ([]*booking.Visit, error) {
	var visits []*booking.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan visit row", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate visit rows", err)
	}
	return visits, nil
}
