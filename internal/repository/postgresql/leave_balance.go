package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, requester_id, leave_type, year, total, used, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	balance.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		balance.ID, balance.RequesterID, balance.LeaveType, balance.Year,
		balance.Total, balance.Used,
	).Scan(&balance.CreatedAt, &balance.UpdatedAt)

	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByRequesterTypeYear(ctx context.Context, requesterID string, leaveType leave.LeaveType, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, requester_id, leave_type, year, total, used, created_at, updated_at
		FROM leave_balances
		WHERE requester_id = $1 AND leave_type = $2 AND year = $3
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, requesterID, leaveType, year).Scan(
		&b.ID, &b.RequesterID, &b.LeaveType, &b.Year, &b.Total, &b.Used,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return b, nil
}

func (r *leaveBalanceRepositoryImpl) ListByRequesterYear(ctx context.Context, requesterID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, requester_id, leave_type, year, total, used, created_at, updated_at
		FROM leave_balances
		WHERE requester_id = $1 AND year = $2
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, requesterID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		err := rows.Scan(
			&b.ID, &b.RequesterID, &b.LeaveType, &b.Year, &b.Total, &b.Used,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// ConsumeDays is the single write path for Used. The guard clause keeps
// used <= total under concurrent approvals: the row is only updated
// when the remaining balance still covers the requested days.
func (r *leaveBalanceRepositoryImpl) ConsumeDays(ctx context.Context, requesterID string, leaveType leave.LeaveType, year int, days int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = used + $4, updated_at = NOW()
		WHERE requester_id = $1 AND leave_type = $2 AND year = $3
		  AND total - used >= $4
	`

	tag, err := q.Exec(ctx, query, requesterID, leaveType, year, days)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
