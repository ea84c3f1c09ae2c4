package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByRequester(ctx context.Context, requesterID string, filter LeaveRequestFilter) ([]LeaveRequest, error)
	ListPendingForApprover(ctx context.Context, approver Requester) ([]LeaveRequest, error)
	// MarkDecided transitions a request out of pending. It is conditional
	// on the current status still being pending and reports whether the
	// transition was claimed, so a racing second decision is a no-op.
	MarkDecided(ctx context.Context, id string, status LeaveStatus, decidedBy string, rejectionReason *string) (bool, error)
	// SumApprovedDays totals the day counts of approved requests starting
	// within [from, to].
	SumApprovedDays(ctx context.Context, requesterID string, from, to time.Time) (int, error)
	// CountByType returns how many requests of the type were filed in
	// the year, and how many of those are approved.
	CountByType(ctx context.Context, requesterID string, leaveType LeaveType, year int) (total int, approved int, err error)
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByRequesterTypeYear(ctx context.Context, requesterID string, leaveType LeaveType, year int) (LeaveBalance, error)
	ListByRequesterYear(ctx context.Context, requesterID string, year int) ([]LeaveBalance, error)
	// ConsumeDays atomically adds days to Used, guarded by the remaining
	// balance. It reports false when the balance no longer covers the
	// requested days; the row is left untouched in that case.
	ConsumeDays(ctx context.Context, requesterID string, leaveType LeaveType, year int, days int) (bool, error)
}
