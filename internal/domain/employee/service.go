package employee

import (
	"context"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
)

type EmployeeService interface {
	// Create provisions the login, the employee record and the yearly
	// leave balances in one unit.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByUserID(ctx context.Context, userID string) (EmployeeResponse, error)
	// List is scoped by the viewer: managers see their own reports,
	// admins and super-admins see everyone.
	List(ctx context.Context, viewer leave.Requester) ([]EmployeeResponse, error)
}
