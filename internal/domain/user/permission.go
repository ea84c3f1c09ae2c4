package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Visit Management
	PermissionVisitViewOwn Permission = "visit.view_own"
	PermissionVisitPlan    Permission = "visit.plan"
	PermissionVisitViewAll Permission = "visit.view_all"

	// Target Management
	PermissionTargetViewOwn Permission = "target.view_own"
	PermissionTargetSet     Permission = "target.set"
	PermissionTargetViewAll Permission = "target.view_all"

	// Catalog Management
	PermissionProductView   Permission = "product.view"
	PermissionProductManage Permission = "product.manage"

	// People Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleFieldExecutive: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionVisitViewOwn,
		PermissionVisitPlan,
		PermissionTargetViewOwn,
		PermissionProductView,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionVisitViewAll,
		PermissionTargetSet,
		PermissionTargetViewAll,
		PermissionProductView,
		PermissionEmployeeViewAll,
	},
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionVisitViewAll,
		PermissionTargetSet,
		PermissionTargetViewAll,
		PermissionProductView,
		PermissionProductManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
	},
	RoleSuperAdmin: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionVisitViewAll,
		PermissionTargetSet,
		PermissionTargetViewAll,
		PermissionProductView,
		PermissionProductManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
	},
}

// HasPermission checks if a role carries a permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
