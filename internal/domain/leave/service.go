package leave

import (
	"context"
	"time"
)

// LeaveService is the ledger surface: one generic set of lifecycle
// operations parameterized by Requester instead of per-role copies.
type LeaveService interface {
	Apply(ctx context.Context, requester Requester, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	Approve(ctx context.Context, approver Requester, requestID string) (ApprovalResponse, error)
	Reject(ctx context.Context, approver Requester, requestID string, reason string) (LeaveRequestResponse, error)
	ListMine(ctx context.Context, requester Requester, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context, approver Requester) ([]LeaveRequestResponse, error)
	Balances(ctx context.Context, requester Requester, year int) ([]LeaveBalanceResponse, error)
	MonthSummary(ctx context.Context, requesterID string, year int, month time.Month) (MonthSummaryResponse, error)
}
