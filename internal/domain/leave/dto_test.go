package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

func TestApplyLeaveRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		req        ApplyLeaveRequest
		wantFields []string
	}{
		{
			name: "valid casual leave",
			req: ApplyLeaveRequest{
				LeaveType: "casual_leave",
				FromDate:  "2025-02-05",
				ToDate:    "2025-02-06",
				Reason:    "family function",
			},
		},
		{
			name: "valid single day without reason",
			req: ApplyLeaveRequest{
				LeaveType: "sick_leave",
				FromDate:  "2025-02-05",
				ToDate:    "2025-02-05",
			},
		},
		{
			name:       "missing everything",
			req:        ApplyLeaveRequest{},
			wantFields: []string{"leave_type", "from_date", "to_date"},
		},
		{
			name: "unknown leave type",
			req: ApplyLeaveRequest{
				LeaveType: "maternity_leave",
				FromDate:  "2025-02-05",
				ToDate:    "2025-02-06",
			},
			wantFields: []string{"leave_type"},
		},
		{
			name: "malformed dates",
			req: ApplyLeaveRequest{
				LeaveType: "casual_leave",
				FromDate:  "05-02-2025",
				ToDate:    "2025/02/06",
			},
			wantFields: []string{"from_date", "to_date"},
		},
		{
			name: "to before from",
			req: ApplyLeaveRequest{
				LeaveType: "casual_leave",
				FromDate:  "2025-02-06",
				ToDate:    "2025-02-05",
			},
			wantFields: []string{"to_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)

			details := validationErrs.ToMap()
			for _, field := range tt.wantFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestLeaveBalanceRemaining(t *testing.T) {
	casual := LeaveBalance{LeaveType: LeaveTypeCasual, Total: 12, Used: 5}
	assert.Equal(t, 7, casual.Remaining())

	exhausted := LeaveBalance{LeaveType: LeaveTypeSick, Total: 6, Used: 6}
	assert.Equal(t, 0, exhausted.Remaining())

	earned := LeaveBalance{LeaveType: LeaveTypeEarned}
	assert.Equal(t, BalanceUnlimited, earned.Remaining())
}

func TestLeaveStatusTerminal(t *testing.T) {
	assert.False(t, LeaveStatusPending.Terminal())
	assert.True(t, LeaveStatusApproved.Terminal())
	assert.True(t, LeaveStatusRejected.Terminal())
}
