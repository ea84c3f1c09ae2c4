package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrInvalidDateRange     = errors.New("to_date must not be before from_date")
	ErrNotRequestOwner      = errors.New("leave request belongs to another employee")
	ErrApproverNotAllowed   = errors.New("approver role cannot decide this request")
)
