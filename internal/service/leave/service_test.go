package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

type fakeRequestRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int

	approvedDaysSum int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = fmt.Sprintf("req-%d", f.nextID)
	request.AppliedAt = time.Now()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeRequestRepo) ListByRequester(_ context.Context, requesterID string, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.RequesterID == requesterID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListPendingForApprover(_ context.Context, _ leave.Requester) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.Status == leave.LeaveStatusPending {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) MarkDecided(_ context.Context, id string, status leave.LeaveStatus, decidedBy string, rejectionReason *string) (bool, error) {
	request, ok := f.requests[id]
	if !ok || request.Status != leave.LeaveStatusPending {
		return false, nil
	}
	now := time.Now()
	request.Status = status
	request.DecidedBy = &decidedBy
	request.DecidedAt = &now
	request.RejectionReason = rejectionReason
	f.requests[id] = request
	return true, nil
}

func (f *fakeRequestRepo) SumApprovedDays(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return f.approvedDaysSum, nil
}

func (f *fakeRequestRepo) CountByType(_ context.Context, requesterID string, leaveType leave.LeaveType, _ int) (int, int, error) {
	var total, approved int
	for _, request := range f.requests {
		if request.RequesterID == requesterID && request.LeaveType == leaveType {
			total++
			if request.Status == leave.LeaveStatusApproved {
				approved++
			}
		}
	}
	return total, approved, nil
}

type balanceKey struct {
	requesterID string
	leaveType   leave.LeaveType
	year        int
}

type fakeBalanceRepo struct {
	balances map[balanceKey]leave.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[balanceKey]leave.LeaveBalance)}
}

func (f *fakeBalanceRepo) seed(requesterID string, leaveType leave.LeaveType, year, total, used int) {
	key := balanceKey{requesterID, leaveType, year}
	f.balances[key] = leave.LeaveBalance{
		ID:          fmt.Sprintf("bal-%d", len(f.balances)+1),
		RequesterID: requesterID,
		LeaveType:   leaveType,
		Year:        year,
		Total:       total,
		Used:        used,
	}
}

func (f *fakeBalanceRepo) Create(_ context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	key := balanceKey{balance.RequesterID, balance.LeaveType, balance.Year}
	f.balances[key] = balance
	return balance, nil
}

func (f *fakeBalanceRepo) GetByRequesterTypeYear(_ context.Context, requesterID string, leaveType leave.LeaveType, year int) (leave.LeaveBalance, error) {
	balance, ok := f.balances[balanceKey{requesterID, leaveType, year}]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return balance, nil
}

func (f *fakeBalanceRepo) ListByRequesterYear(_ context.Context, requesterID string, year int) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, balance := range f.balances {
		if balance.RequesterID == requesterID && balance.Year == year {
			out = append(out, balance)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) ConsumeDays(_ context.Context, requesterID string, leaveType leave.LeaveType, year, days int) (bool, error) {
	key := balanceKey{requesterID, leaveType, year}
	balance, ok := f.balances[key]
	if !ok || balance.Total-balance.Used < days {
		return false, nil
	}
	balance.Used += days
	f.balances[key] = balance
	return true, nil
}

func newTestService() (*LeaveServiceImpl, *fakeRequestRepo, *fakeBalanceRepo) {
	requestRepo := newFakeRequestRepo()
	balanceRepo := newFakeBalanceRepo()
	svc := NewLeaveService(nil, requestRepo, balanceRepo).(*LeaveServiceImpl)
	return svc, requestRepo, balanceRepo
}

var (
	executive = leave.Requester{Role: user.RoleFieldExecutive, ID: "emp-fe-1"}
	manager   = leave.Requester{Role: user.RoleManager, ID: "emp-mgr-1"}
)

func TestApply_Success(t *testing.T) {
	svc, requestRepo, balanceRepo := newTestService()
	balanceRepo.seed(executive.ID, leave.LeaveTypeCasual, 2025, 12, 3)

	resp, err := svc.Apply(context.Background(), executive, leave.ApplyLeaveRequest{
		LeaveType: string(leave.LeaveTypeCasual),
		FromDate:  "2025-02-05",
		ToDate:    "2025-02-06",
		Reason:    "family function",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Days)
	assert.Equal(t, string(leave.LeaveStatusPending), resp.Status)
	assert.Len(t, requestRepo.requests, 1)

	// pending requests must not consume the balance
	balance, err := balanceRepo.GetByRequesterTypeYear(context.Background(), executive.ID, leave.LeaveTypeCasual, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, balance.Used)
}

func TestApply_InsufficientBalance(t *testing.T) {
	svc, requestRepo, balanceRepo := newTestService()
	balanceRepo.seed(executive.ID, leave.LeaveTypeSick, 2025, 6, 5)

	_, err := svc.Apply(context.Background(), executive, leave.ApplyLeaveRequest{
		LeaveType: string(leave.LeaveTypeSick),
		FromDate:  "2025-02-05",
		ToDate:    "2025-02-06",
		Reason:    "fever",
	})

	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Empty(t, requestRepo.requests, "nothing may be persisted when the balance is short")
}

func TestApply_ExactRemainingBalance(t *testing.T) {
	svc, _, balanceRepo := newTestService()
	balanceRepo.seed(executive.ID, leave.LeaveTypeSick, 2025, 6, 4)

	resp, err := svc.Apply(context.Background(), executive, leave.ApplyLeaveRequest{
		LeaveType: string(leave.LeaveTypeSick),
		FromDate:  "2025-02-05",
		ToDate:    "2025-02-06",
		Reason:    "fever",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Days)
}

func TestApply_EarnedLeaveSkipsBalance(t *testing.T) {
	svc, requestRepo, _ := newTestService()

	// no balance rows exist at all; earned leave must not look one up
	resp, err := svc.Apply(context.Background(), executive, leave.ApplyLeaveRequest{
		LeaveType: string(leave.LeaveTypeEarned),
		FromDate:  "2025-03-01",
		ToDate:    "2025-03-30",
		Reason:    "sabbatical",
	})

	require.NoError(t, err)
	assert.Equal(t, 30, resp.Days)
	assert.Len(t, requestRepo.requests, 1)
}

func TestApply_ValidationFailure(t *testing.T) {
	svc, requestRepo, _ := newTestService()

	_, err := svc.Apply(context.Background(), executive, leave.ApplyLeaveRequest{
		LeaveType: "maternity_leave",
		FromDate:  "2025-02-05",
		ToDate:    "2025-02-06",
		Reason:    "x",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Empty(t, requestRepo.requests)
}

func TestApply_ReversedRange(t *testing.T) {
	svc, _, balanceRepo := newTestService()
	balanceRepo.seed(executive.ID, leave.LeaveTypeCasual, 2025, 12, 0)

	_, err := svc.Apply(context.Background(), executive, leave.ApplyLeaveRequest{
		LeaveType: string(leave.LeaveTypeCasual),
		FromDate:  "2025-02-06",
		ToDate:    "2025-02-05",
		Reason:    "typo",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	svc, requestRepo, _ := newTestService()
	created, err := requestRepo.Create(context.Background(), leave.LeaveRequest{
		RequesterID:   executive.ID,
		RequesterRole: executive.Role,
		LeaveType:     leave.LeaveTypeCasual,
		Days:          1,
		Status:        leave.LeaveStatusApproved,
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), manager, created.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestApprove_SelfApprovalBlocked(t *testing.T) {
	svc, requestRepo, _ := newTestService()
	created, err := requestRepo.Create(context.Background(), leave.LeaveRequest{
		RequesterID:   manager.ID,
		RequesterRole: manager.Role,
		LeaveType:     leave.LeaveTypeCasual,
		Days:          1,
		Status:        leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), manager, created.ID)
	assert.ErrorIs(t, err, leave.ErrApproverNotAllowed)
}

func TestApprove_RoleHierarchyEnforced(t *testing.T) {
	svc, requestRepo, _ := newTestService()
	created, err := requestRepo.Create(context.Background(), leave.LeaveRequest{
		RequesterID:   "emp-mgr-2",
		RequesterRole: user.RoleManager,
		LeaveType:     leave.LeaveTypeCasual,
		Days:          1,
		Status:        leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	// a manager cannot decide another manager's request
	_, err = svc.Approve(context.Background(), manager, created.ID)
	assert.ErrorIs(t, err, leave.ErrApproverNotAllowed)
}

func TestApprove_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), manager, "missing")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecide_Approved(t *testing.T) {
	svc, requestRepo, balanceRepo := newTestService()
	balanceRepo.seed(executive.ID, leave.LeaveTypeCasual, 2025, 12, 10)
	created, err := requestRepo.Create(context.Background(), leave.LeaveRequest{
		RequesterID:   executive.ID,
		RequesterRole: executive.Role,
		LeaveType:     leave.LeaveTypeCasual,
		FromDate:      date(2025, 2, 5),
		ToDate:        date(2025, 2, 6),
		Days:          2,
		Status:        leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	result, err := svc.decide(context.Background(), created, manager)

	require.NoError(t, err)
	assert.Equal(t, leave.OutcomeApproved, result.Outcome)
	assert.Equal(t, leave.LeaveStatusApproved, result.Request.Status)

	stored := requestRepo.requests[created.ID]
	assert.Equal(t, leave.LeaveStatusApproved, stored.Status)
	require.NotNil(t, stored.DecidedBy)
	assert.Equal(t, manager.ID, *stored.DecidedBy)

	balance, err := balanceRepo.GetByRequesterTypeYear(context.Background(), executive.ID, leave.LeaveTypeCasual, 2025)
	require.NoError(t, err)
	assert.Equal(t, 12, balance.Used)
}

func TestDecide_DowngradesToRejected(t *testing.T) {
	svc, requestRepo, balanceRepo := newTestService()
	// balance was consumed by a competing approval after this request
	// was filed: 2 requested, 1 remaining
	balanceRepo.seed(executive.ID, leave.LeaveTypeCasual, 2025, 12, 11)
	created, err := requestRepo.Create(context.Background(), leave.LeaveRequest{
		RequesterID:   executive.ID,
		RequesterRole: executive.Role,
		LeaveType:     leave.LeaveTypeCasual,
		FromDate:      date(2025, 2, 5),
		ToDate:        date(2025, 2, 6),
		Days:          2,
		Status:        leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	result, err := svc.decide(context.Background(), created, manager)

	require.NoError(t, err)
	assert.Equal(t, leave.OutcomeRejectedInsufficientBalance, result.Outcome)
	assert.Equal(t, leave.LeaveStatusRejected, result.Request.Status)
	require.NotNil(t, result.Request.RejectionReason)

	stored := requestRepo.requests[created.ID]
	assert.Equal(t, leave.LeaveStatusRejected, stored.Status)

	balance, err := balanceRepo.GetByRequesterTypeYear(context.Background(), executive.ID, leave.LeaveTypeCasual, 2025)
	require.NoError(t, err)
	assert.Equal(t, 11, balance.Used, "a downgraded approval must not consume days")
}

func TestDecide_EarnedLeaveNeverDowngrades(t *testing.T) {
	svc, requestRepo, _ := newTestService()
	created, err := requestRepo.Create(context.Background(), leave.LeaveRequest{
		RequesterID:   executive.ID,
		RequesterRole: executive.Role,
		LeaveType:     leave.LeaveTypeEarned,
		FromDate:      date(2025, 3, 1),
		ToDate:        date(2025, 3, 30),
		Days:          30,
		Status:        leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	result, err := svc.decide(context.Background(), created, manager)

	require.NoError(t, err)
	assert.Equal(t, leave.OutcomeApproved, result.Outcome)
}

func TestReject(t *testing.T) {
	svc, requestRepo, _ := newTestService()
	created, err := requestRepo.Create(context.Background(), leave.LeaveRequest{
		RequesterID:   executive.ID,
		RequesterRole: executive.Role,
		LeaveType:     leave.LeaveTypeSick,
		Days:          1,
		Status:        leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	resp, err := svc.Reject(context.Background(), manager, created.ID, "no coverage that week")

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "no coverage that week", *resp.RejectionReason)

	// a second decision on the same request is refused
	_, err = svc.Reject(context.Background(), manager, created.ID, "again")
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestListPending_RequiresApproverRole(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListPending(context.Background(), executive)
	assert.ErrorIs(t, err, leave.ErrApproverNotAllowed)
}

func TestBalances_AppendsUnlimitedEarned(t *testing.T) {
	svc, _, balanceRepo := newTestService()
	balanceRepo.seed(executive.ID, leave.LeaveTypeCasual, 2025, 12, 4)
	balanceRepo.seed(executive.ID, leave.LeaveTypeSick, 2025, 12, 0)

	responses, err := svc.Balances(context.Background(), executive, 2025)

	require.NoError(t, err)
	require.Len(t, responses, 3)

	byType := make(map[string]leave.LeaveBalanceResponse, len(responses))
	for _, resp := range responses {
		byType[resp.LeaveType] = resp
	}

	casual := byType[string(leave.LeaveTypeCasual)]
	assert.Equal(t, 8, casual.Remaining)
	assert.False(t, casual.Unlimited)

	earned := byType[string(leave.LeaveTypeEarned)]
	assert.Equal(t, leave.BalanceUnlimited, earned.Remaining)
	assert.True(t, earned.Unlimited)
}

func TestMonthSummary(t *testing.T) {
	svc, requestRepo, _ := newTestService()
	requestRepo.approvedDaysSum = 6

	summary, err := svc.MonthSummary(context.Background(), executive.ID, 2025, time.February)

	require.NoError(t, err)
	assert.Equal(t, "2025-02", summary.Month)
	assert.Equal(t, 6, summary.LeavesTaken)
	assert.Equal(t, 26, summary.WorkingDays)
	assert.Equal(t, 20, summary.PresentDays)
	assert.Equal(t, 77, summary.AttendanceRate)
}

func TestMonthSummary_PresentNeverNegative(t *testing.T) {
	svc, requestRepo, _ := newTestService()
	requestRepo.approvedDaysSum = 31

	summary, err := svc.MonthSummary(context.Background(), executive.ID, 2025, time.March)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 0, summary.AttendanceRate)
}
