package leave

import (
	"time"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
)

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "casual_leave"
	LeaveTypeSick   LeaveType = "sick_leave"
	LeaveTypeEarned LeaveType = "earned_leave"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeCasual, LeaveTypeSick, LeaveTypeEarned:
		return true
	}
	return false
}

// Unlimited reports whether the type has no numeric balance ceiling.
// Earned leave is modeled without an allotment; casual and sick leave
// draw down a finite yearly balance.
func (t LeaveType) Unlimited() bool {
	return t == LeaveTypeEarned
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Terminal reports whether no further transition may leave the status.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// Requester identifies who a ledger operation acts for. One tagged
// pair replaces per-role endpoint families: the role is an explicit
// parameter of every lifecycle operation.
type Requester struct {
	Role user.Role
	ID   string // employee ID
}

// LeaveRequest entity
type LeaveRequest struct {
	ID            string
	RequesterID   string
	RequesterRole user.Role
	LeaveType     LeaveType

	FromDate time.Time // inclusive
	ToDate   time.Time // inclusive
	Days     int       // inclusive day count, fixed at application time

	Reason string

	Status          LeaveStatus
	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string

	AppliedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	RequesterName *string
}

// LeaveBalance entity, one row per requester / type / calendar year.
// Remaining is always derived, never stored.
type LeaveBalance struct {
	ID          string
	RequesterID string
	LeaveType   LeaveType
	Year        int
	Total       int
	Used        int // approved days only; pending requests do not consume
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceUnlimited is the sentinel Remaining returns for leave types
// without a ceiling.
const BalanceUnlimited = -1

func (b LeaveBalance) Remaining() int {
	if b.LeaveType.Unlimited() {
		return BalanceUnlimited
	}
	return b.Total - b.Used
}

// Default yearly allotments seeded when an employee is created.
const (
	DefaultCasualAllotment = 12
	DefaultSickAllotment   = 12
)

// ApprovalOutcome makes both possible results of an approve call
// explicit: the backend re-checks the balance at decision time and may
// resolve an approval into a rejection if the balance was consumed by a
// competing request in the meantime.
type ApprovalOutcome string

const (
	OutcomeApproved                    ApprovalOutcome = "approved"
	OutcomeRejectedInsufficientBalance ApprovalOutcome = "rejected_insufficient_balance"
)

type ApprovalResult struct {
	Outcome ApprovalOutcome
	Request LeaveRequest
}
