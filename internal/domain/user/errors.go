package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrApproverRoleRequired   = errors.New("approver role required")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
