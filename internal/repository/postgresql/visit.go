package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/visit"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
)

type visitRepositoryImpl struct {
	db *database.DB
}

func NewVisitRepository(db *database.DB) visit.VisitRepository {
	return &visitRepositoryImpl{db: db}
}

func (r *visitRepositoryImpl) Create(ctx context.Context, v visit.Visit) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO visits (
			id, field_executive_id, party_type, party_name,
			year, month, week_of_month, weekday, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	v.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		v.ID, v.FieldExecutiveID, v.PartyType, v.PartyName,
		v.Year, v.Month, v.WeekOfMonth, int(v.Weekday), v.Status,
	).Scan(&v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		return visit.Visit{}, err
	}

	return v, nil
}

func (r *visitRepositoryImpl) GetByID(ctx context.Context, id string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, field_executive_id, party_type, party_name,
			   year, month, week_of_month, weekday, status, remarks, completed_at,
			   created_at, updated_at
		FROM visits
		WHERE id = $1
	`

	var v visit.Visit
	var weekday int
	err := q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.FieldExecutiveID, &v.PartyType, &v.PartyName,
		&v.Year, &v.Month, &v.WeekOfMonth, &weekday, &v.Status, &v.Remarks, &v.CompletedAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return visit.Visit{}, visit.ErrVisitNotFound
		}
		return visit.Visit{}, err
	}

	v.Weekday = time.Weekday(weekday)
	return v, nil
}

func (r *visitRepositoryImpl) ListByExecutiveMonth(ctx context.Context, fieldExecutiveID string, year, month int) ([]visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, field_executive_id, party_type, party_name,
			   year, month, week_of_month, weekday, status, remarks, completed_at,
			   created_at, updated_at
		FROM visits
		WHERE field_executive_id = $1 AND year = $2 AND month = $3
		ORDER BY week_of_month, weekday
	`

	rows, err := q.Query(ctx, query, fieldExecutiveID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		var v visit.Visit
		var weekday int
		err := rows.Scan(
			&v.ID, &v.FieldExecutiveID, &v.PartyType, &v.PartyName,
			&v.Year, &v.Month, &v.WeekOfMonth, &weekday, &v.Status, &v.Remarks, &v.CompletedAt,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		v.Weekday = time.Weekday(weekday)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (r *visitRepositoryImpl) ExistsInSlot(ctx context.Context, fieldExecutiveID, partyName string, year, month, weekOfMonth int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM visits
			WHERE field_executive_id = $1 AND party_name = $2
			  AND year = $3 AND month = $4 AND week_of_month = $5
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, fieldExecutiveID, partyName, year, month, weekOfMonth).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *visitRepositoryImpl) UpdateStatus(ctx context.Context, id string, status visit.VisitStatus, remarks *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE visits
		SET status = $2, remarks = COALESCE($3, remarks),
			completed_at = CASE WHEN $2 = 'completed' THEN NOW() ELSE completed_at END,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, remarks)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return visit.ErrVisitNotFound
	}
	return nil
}
