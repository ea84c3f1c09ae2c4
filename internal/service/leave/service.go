package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
	"github.com/pharmatrack/fieldforce-backend-go/internal/repository/postgresql"
)

const insufficientAtApproval = "insufficient balance at approval time"

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
}

func NewLeaveService(db *database.DB, requestRepo leave.LeaveRequestRepository, balanceRepo leave.LeaveBalanceRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: requestRepo,
		LeaveBalanceRepository: balanceRepo,
	}
}

// Apply validates and files a leave request in pending state. The
// balance guard runs before anything is persisted: a request that
// exceeds the remaining balance never reaches the store.
func (l *LeaveServiceImpl) Apply(ctx context.Context, requester leave.Requester, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Validate guarantees the formats parse
	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse from date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse to date: %w", err)
	}

	days := SelectableDays(fromDate, toDate)
	if days <= 0 {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	leaveType := leave.LeaveType(req.LeaveType)
	if !leaveType.Unlimited() {
		balance, err := l.LeaveBalanceRepository.GetByRequesterTypeYear(ctx, requester.ID, leaveType, fromDate.Year())
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if days > balance.Remaining() {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	request := leave.LeaveRequest{
		RequesterID:   requester.ID,
		RequesterRole: requester.Role,
		LeaveType:     leaveType,
		FromDate:      fromDate,
		ToDate:        toDate,
		Days:          days,
		Reason:        req.Reason,
		Status:        leave.LeaveStatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.NewLeaveRequestResponse(created), nil
}

// Approve decides a pending request. The balance is re-read at
// decision time: when a competing approval has consumed it in the
// meantime the request resolves to rejected instead, and the outcome
// says so explicitly.
func (l *LeaveServiceImpl) Approve(ctx context.Context, approver leave.Requester, requestID string) (leave.ApprovalResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.ApprovalResponse{}, err
	}

	if err := l.checkApprover(approver, request); err != nil {
		return leave.ApprovalResponse{}, err
	}

	if request.Status.Terminal() {
		return leave.ApprovalResponse{}, leave.ErrAlreadyProcessed
	}

	var result leave.ApprovalResult
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		result, err = l.decide(txCtx, request, approver)
		return err
	})
	if err != nil {
		return leave.ApprovalResponse{}, err
	}

	return leave.ApprovalResponse{
		Outcome: string(result.Outcome),
		Request: leave.NewLeaveRequestResponse(result.Request),
	}, nil
}

// decide runs the balance-guarded transition. It must execute inside a
// transaction so a lost race on MarkDecided also rolls back the
// consumed days.
func (l *LeaveServiceImpl) decide(ctx context.Context, request leave.LeaveRequest, approver leave.Requester) (leave.ApprovalResult, error) {
	covered := true
	if !request.LeaveType.Unlimited() {
		var err error
		covered, err = l.LeaveBalanceRepository.ConsumeDays(ctx, request.RequesterID, request.LeaveType, request.FromDate.Year(), request.Days)
		if err != nil {
			return leave.ApprovalResult{}, fmt.Errorf("failed to consume balance: %w", err)
		}
	}

	now := time.Now()
	request.DecidedBy = &approver.ID
	request.DecidedAt = &now

	if !covered {
		reason := insufficientAtApproval
		claimed, err := l.LeaveRequestRepository.MarkDecided(ctx, request.ID, leave.LeaveStatusRejected, approver.ID, &reason)
		if err != nil {
			return leave.ApprovalResult{}, fmt.Errorf("failed to reject leave request: %w", err)
		}
		if !claimed {
			return leave.ApprovalResult{}, leave.ErrAlreadyProcessed
		}

		request.Status = leave.LeaveStatusRejected
		request.RejectionReason = &reason
		return leave.ApprovalResult{Outcome: leave.OutcomeRejectedInsufficientBalance, Request: request}, nil
	}

	claimed, err := l.LeaveRequestRepository.MarkDecided(ctx, request.ID, leave.LeaveStatusApproved, approver.ID, nil)
	if err != nil {
		return leave.ApprovalResult{}, fmt.Errorf("failed to approve leave request: %w", err)
	}
	if !claimed {
		return leave.ApprovalResult{}, leave.ErrAlreadyProcessed
	}

	request.Status = leave.LeaveStatusApproved
	return leave.ApprovalResult{Outcome: leave.OutcomeApproved, Request: request}, nil
}

// Reject unconditionally transitions a pending request to rejected.
func (l *LeaveServiceImpl) Reject(ctx context.Context, approver leave.Requester, requestID string, reason string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := l.checkApprover(approver, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status.Terminal() {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	var rejectionReason *string
	if reason != "" {
		rejectionReason = &reason
	}

	claimed, err := l.LeaveRequestRepository.MarkDecided(ctx, requestID, leave.LeaveStatusRejected, approver.ID, rejectionReason)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}
	if !claimed {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.LeaveStatusRejected
	request.DecidedBy = &approver.ID
	request.DecidedAt = &now
	request.RejectionReason = rejectionReason

	return leave.NewLeaveRequestResponse(request), nil
}

func (l *LeaveServiceImpl) ListMine(ctx context.Context, requester leave.Requester, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListByRequester(ctx, requester.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(request))
	}
	return responses, nil
}

func (l *LeaveServiceImpl) ListPending(ctx context.Context, approver leave.Requester) ([]leave.LeaveRequestResponse, error) {
	if !approver.Role.Valid() || approver.Role == user.RoleFieldExecutive {
		return nil, leave.ErrApproverNotAllowed
	}

	requests, err := l.LeaveRequestRepository.ListPendingForApprover(ctx, approver)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(request))
	}
	return responses, nil
}

func (l *LeaveServiceImpl) Balances(ctx context.Context, requester leave.Requester, year int) ([]leave.LeaveBalanceResponse, error) {
	balances, err := l.LeaveBalanceRepository.ListByRequesterYear(ctx, requester.ID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances)+1)
	for _, balance := range balances {
		responses = append(responses, leave.NewLeaveBalanceResponse(balance))
	}

	// Earned leave carries no stored row; surface its unlimited balance
	responses = append(responses, leave.NewLeaveBalanceResponse(leave.LeaveBalance{
		RequesterID: requester.ID,
		LeaveType:   leave.LeaveTypeEarned,
		Year:        year,
	}))

	return responses, nil
}

// MonthSummary recomputes the attendance aggregate from the current
// request snapshot. Nothing here is persisted.
func (l *LeaveServiceImpl) MonthSummary(ctx context.Context, requesterID string, year int, month time.Month) (leave.MonthSummaryResponse, error) {
	first, last := monthBounds(year, month)

	taken, err := l.LeaveRequestRepository.SumApprovedDays(ctx, requesterID, first, last)
	if err != nil {
		return leave.MonthSummaryResponse{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	present := WorkingDaysPerMonth - taken
	if present < 0 {
		present = 0
	}

	return leave.MonthSummaryResponse{
		Month:          fmt.Sprintf("%04d-%02d", year, int(month)),
		LeavesTaken:    taken,
		WorkingDays:    WorkingDaysPerMonth,
		PresentDays:    present,
		AttendanceRate: AttendanceRate(present),
	}, nil
}

func (l *LeaveServiceImpl) checkApprover(approver leave.Requester, request leave.LeaveRequest) error {
	if approver.ID == request.RequesterID {
		return leave.ErrApproverNotAllowed
	}
	if !user.CanApproveFor(approver.Role, request.RequesterRole) {
		return leave.ErrApproverNotAllowed
	}
	return nil
}
