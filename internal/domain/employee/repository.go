package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
