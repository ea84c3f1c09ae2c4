package user

import "time"

type Role string

const (
	RoleFieldExecutive Role = "field_executive" // front-line rep, files leaves and logs visits
	RoleManager        Role = "manager"         // supervises FEs, approves their leaves
	RoleAdmin          Role = "admin"           // org-wide oversight, approves manager leaves
	RoleSuperAdmin     Role = "super_admin"     // global config, approves admin leaves
)

func (r Role) Valid() bool {
	switch r {
	case RoleFieldExecutive, RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user has org-wide oversight
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// CanApprove checks if user can approve any leave requests
func (u *User) CanApprove() bool {
	return u.Role != RoleFieldExecutive
}

// CanApproveFor reports whether an approver role may decide requests
// filed by the given requester role. Managers decide FE requests,
// admins decide FE and manager requests, super-admins decide everything
// below them.
func CanApproveFor(approver, requester Role) bool {
	switch approver {
	case RoleManager:
		return requester == RoleFieldExecutive
	case RoleAdmin:
		return requester == RoleFieldExecutive || requester == RoleManager
	case RoleSuperAdmin:
		return requester != RoleSuperAdmin
	}
	return false
}
