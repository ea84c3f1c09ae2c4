package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/target"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
)

type targetRepositoryImpl struct {
	db *database.DB
}

func NewTargetRepository(db *database.DB) target.TargetRepository {
	return &targetRepositoryImpl{db: db}
}

func (r *targetRepositoryImpl) Upsert(ctx context.Context, t target.Target) (target.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sales_targets (
			id, field_executive_id, year, month, target_set, target_achieved, set_by,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, 0, $6, NOW(), NOW())
		ON CONFLICT (field_executive_id, year, month)
		DO UPDATE SET target_set = EXCLUDED.target_set, set_by = EXCLUDED.set_by, updated_at = NOW()
		RETURNING id, target_achieved, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), t.FieldExecutiveID, t.Year, t.Month, t.TargetSet, t.SetBy,
	).Scan(&t.ID, &t.TargetAchieved, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return target.Target{}, err
	}

	return t, nil
}

func (r *targetRepositoryImpl) GetByExecutiveMonth(ctx context.Context, fieldExecutiveID string, year, month int) (target.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, field_executive_id, year, month, target_set, target_achieved, set_by,
			   created_at, updated_at
		FROM sales_targets
		WHERE field_executive_id = $1 AND year = $2 AND month = $3
	`

	var t target.Target
	err := q.QueryRow(ctx, query, fieldExecutiveID, year, month).Scan(
		&t.ID, &t.FieldExecutiveID, &t.Year, &t.Month, &t.TargetSet, &t.TargetAchieved,
		&t.SetBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return target.Target{}, target.ErrTargetNotFound
		}
		return target.Target{}, err
	}

	return t, nil
}

func (r *targetRepositoryImpl) ListByExecutiveYear(ctx context.Context, fieldExecutiveID string, year int) ([]target.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, field_executive_id, year, month, target_set, target_achieved, set_by,
			   created_at, updated_at
		FROM sales_targets
		WHERE field_executive_id = $1 AND year = $2
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, fieldExecutiveID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []target.Target
	for rows.Next() {
		var t target.Target
		err := rows.Scan(
			&t.ID, &t.FieldExecutiveID, &t.Year, &t.Month, &t.TargetSet, &t.TargetAchieved,
			&t.SetBy, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (r *targetRepositoryImpl) AddAchievement(ctx context.Context, fieldExecutiveID string, year, month int, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sales_targets
		SET target_achieved = target_achieved + $4, updated_at = NOW()
		WHERE field_executive_id = $1 AND year = $2 AND month = $3
	`

	tag, err := q.Exec(ctx, query, fieldExecutiveID, year, month, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return target.ErrTargetNotFound
	}
	return nil
}
