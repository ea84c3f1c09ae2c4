package leave

import (
	"time"

	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of casual_leave, sick_leave, earned_leave",
		})
	}

	var from, to time.Time
	var fromOK, toOK bool

	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date is required",
		})
	} else if from, fromOK = validator.IsValidDate(r.FromDate); !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date is required",
		})
	} else if to, toOK = validator.IsValidDate(r.ToDate); !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequest struct {
	Reason string `json:"reason,omitempty"`
}

type LeaveRequestFilter struct {
	Status    *LeaveStatus
	LeaveType *LeaveType
	Year      *int
}

type LeaveRequestResponse struct {
	ID              string     `json:"id"`
	RequesterID     string     `json:"requester_id"`
	RequesterRole   string     `json:"requester_role"`
	RequesterName   *string    `json:"requester_name,omitempty"`
	LeaveType       string     `json:"leave_type"`
	FromDate        time.Time  `json:"from_date"`
	ToDate          time.Time  `json:"to_date"`
	Days            int        `json:"days"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	DecidedBy       *string    `json:"decided_by,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	AppliedAt       time.Time  `json:"applied_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		RequesterRole:   string(r.RequesterRole),
		RequesterName:   r.RequesterName,
		LeaveType:       string(r.LeaveType),
		FromDate:        r.FromDate,
		ToDate:          r.ToDate,
		Days:            r.Days,
		Reason:          r.Reason,
		Status:          string(r.Status),
		DecidedBy:       r.DecidedBy,
		DecidedAt:       r.DecidedAt,
		RejectionReason: r.RejectionReason,
		AppliedAt:       r.AppliedAt,
	}
}

type ApprovalResponse struct {
	Outcome string               `json:"outcome"`
	Request LeaveRequestResponse `json:"request"`
}

type LeaveBalanceResponse struct {
	LeaveType string `json:"leave_type"`
	Year      int    `json:"year"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"` // -1 when unlimited
	Unlimited bool   `json:"unlimited"`
}

func NewLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		LeaveType: string(b.LeaveType),
		Year:      b.Year,
		Total:     b.Total,
		Used:      b.Used,
		Remaining: b.Remaining(),
		Unlimited: b.LeaveType.Unlimited(),
	}
}

// MonthSummaryResponse is a pure display figure recomputed from the
// current request snapshot, never persisted.
type MonthSummaryResponse struct {
	Month          string `json:"month"` // YYYY-MM
	LeavesTaken    int    `json:"leaves_taken"`
	WorkingDays    int    `json:"working_days"`
	PresentDays    int    `json:"present_days"`
	AttendanceRate int    `json:"attendance_rate"` // percent, rounded
}
