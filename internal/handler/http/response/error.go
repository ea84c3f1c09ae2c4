package response

import (
	"errors"
	"net/http"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/auth"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/employee"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/product"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/target"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/visit"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrApproverRoleRequired):
		Forbidden(w, "Approver role required")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrManagerRoleRequired):
		BadRequest(w, "Assigned manager must hold the manager role", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid leave date range", nil)
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")
	case errors.Is(err, leave.ErrApproverNotAllowed):
		Forbidden(w, "Not allowed to decide this leave request")

	// Target domain errors
	case errors.Is(err, target.ErrTargetNotFound):
		NotFound(w, "Sales target not found")

	// Visit domain errors
	case errors.Is(err, visit.ErrVisitNotFound):
		NotFound(w, "Visit not found")
	case errors.Is(err, visit.ErrVisitNotPlanned):
		Conflict(w, "Visit is not in planned state")
	case errors.Is(err, visit.ErrVisitNotOwned):
		Forbidden(w, "Visit belongs to another field executive")
	case errors.Is(err, visit.ErrSlotAlreadyOccupied):
		Conflict(w, "Party already planned for that slot")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrProductNameExists):
		Conflict(w, "Product name already exists")
	case errors.Is(err, product.ErrPromotionNotFound):
		NotFound(w, "Promotion not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
