package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, requester_id, requester_role, leave_type,
			from_date, to_date, days, reason, status,
			applied_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW(), NOW())
		RETURNING applied_at, created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID, request.RequesterID, request.RequesterRole, request.LeaveType,
		request.FromDate, request.ToDate, request.Days, request.Reason, request.Status,
	).Scan(&request.AppliedAt, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.requester_id, lr.requester_role, lr.leave_type,
			   lr.from_date, lr.to_date, lr.days, lr.reason, lr.status,
			   lr.decided_by, lr.decided_at, lr.rejection_reason,
			   lr.applied_at, lr.created_at, lr.updated_at,
			   e.full_name AS requester_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.requester_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	var requesterName string

	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.RequesterRole, &req.LeaveType,
		&req.FromDate, &req.ToDate, &req.Days, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.RejectionReason,
		&req.AppliedAt, &req.CreatedAt, &req.UpdatedAt,
		&requesterName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	req.RequesterName = &requesterName
	return req, nil
}

func (r *leaveRequestRepositoryImpl) ListByRequester(ctx context.Context, requesterID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE lr.requester_id = $1"
	args := []interface{}{requesterID}
	argIndex := 2

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND lr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.LeaveType != nil {
		whereClause += fmt.Sprintf(" AND lr.leave_type = $%d", argIndex)
		args = append(args, *filter.LeaveType)
		argIndex++
	}

	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(YEAR FROM lr.from_date) = $%d", argIndex)
		args = append(args, *filter.Year)
	}

	query := `
		SELECT lr.id, lr.requester_id, lr.requester_role, lr.leave_type,
			   lr.from_date, lr.to_date, lr.days, lr.reason, lr.status,
			   lr.decided_by, lr.decided_at, lr.rejection_reason,
			   lr.applied_at, lr.created_at, lr.updated_at
		FROM leave_requests lr
		` + whereClause + `
		ORDER BY lr.applied_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListPendingForApprover(ctx context.Context, approver leave.Requester) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Managers see their own reports' pending requests; admins and
	// super-admins see every pending request their role may decide.
	var query string
	args := []interface{}{leave.LeaveStatusPending}

	switch approver.Role {
	case user.RoleManager:
		query = `
			SELECT lr.id, lr.requester_id, lr.requester_role, lr.leave_type,
				   lr.from_date, lr.to_date, lr.days, lr.reason, lr.status,
				   lr.decided_by, lr.decided_at, lr.rejection_reason,
				   lr.applied_at, lr.created_at, lr.updated_at
			FROM leave_requests lr
			JOIN employees e ON e.id = lr.requester_id
			WHERE lr.status = $1 AND e.manager_id = $2
			ORDER BY lr.applied_at
		`
		args = append(args, approver.ID)
	case user.RoleAdmin:
		query = `
			SELECT lr.id, lr.requester_id, lr.requester_role, lr.leave_type,
				   lr.from_date, lr.to_date, lr.days, lr.reason, lr.status,
				   lr.decided_by, lr.decided_at, lr.rejection_reason,
				   lr.applied_at, lr.created_at, lr.updated_at
			FROM leave_requests lr
			WHERE lr.status = $1 AND lr.requester_role IN ($2, $3)
			ORDER BY lr.applied_at
		`
		args = append(args, user.RoleFieldExecutive, user.RoleManager)
	default:
		query = `
			SELECT lr.id, lr.requester_id, lr.requester_role, lr.leave_type,
				   lr.from_date, lr.to_date, lr.days, lr.reason, lr.status,
				   lr.decided_by, lr.decided_at, lr.rejection_reason,
				   lr.applied_at, lr.created_at, lr.updated_at
			FROM leave_requests lr
			WHERE lr.status = $1 AND lr.requester_role != $2
			ORDER BY lr.applied_at
		`
		args = append(args, user.RoleSuperAdmin)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) MarkDecided(ctx context.Context, id string, status leave.LeaveStatus, decidedBy string, rejectionReason *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decided_at = NOW(),
			rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	tag, err := q.Exec(ctx, query, id, status, decidedBy, rejectionReason, leave.LeaveStatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *leaveRequestRepositoryImpl) SumApprovedDays(ctx context.Context, requesterID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leave_requests
		WHERE requester_id = $1 AND status = $2
		  AND from_date >= $3 AND from_date <= $4
	`

	var total int
	err := q.QueryRow(ctx, query, requesterID, leave.LeaveStatusApproved, from, to).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *leaveRequestRepositoryImpl) CountByType(ctx context.Context, requesterID string, leaveType leave.LeaveType, year int) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = $4)
		FROM leave_requests
		WHERE requester_id = $1 AND leave_type = $2
		  AND EXTRACT(YEAR FROM from_date) = $3
	`

	var total, approved int
	err := q.QueryRow(ctx, query, requesterID, leaveType, year, leave.LeaveStatusApproved).Scan(&total, &approved)
	if err != nil {
		return 0, 0, err
	}
	return total, approved, nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.RequesterID, &lr.RequesterRole, &lr.LeaveType,
			&lr.FromDate, &lr.ToDate, &lr.Days, &lr.Reason, &lr.Status,
			&lr.DecidedBy, &lr.DecidedAt, &lr.RejectionReason,
			&lr.AppliedAt, &lr.CreatedAt, &lr.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
