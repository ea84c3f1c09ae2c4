package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/employee"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
	"github.com/pharmatrack/fieldforce-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	leave.LeaveBalanceRepository
}

func NewEmployeeService(db *database.DB, userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, balanceRepo leave.LeaveBalanceRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                     db,
		UserRepository:         userRepo,
		EmployeeRepository:     employeeRepo,
		LeaveBalanceRepository: balanceRepo,
	}
}

// Create implements employee.EmployeeService. The login, the employee
// record and the current year's leave balances are created in one
// transaction: a new hire either fully exists or not at all.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Validate guarantees the format parses
	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
	}

	if req.ManagerID != nil {
		manager, err := e.EmployeeRepository.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if manager.Role != user.RoleManager {
			return employee.EmployeeResponse{}, employee.ErrManagerRoleRequired
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newUser, err := e.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.Role(req.Role),
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		created, err = e.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:       newUser.ID,
			ManagerID:    req.ManagerID,
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			PhoneNumber:  req.PhoneNumber,
			Headquarters: req.Headquarters,
			JoinDate:     joinDate,
		})
		if err != nil {
			return err
		}
		created.Role = newUser.Role
		created.Email = newUser.Email

		year := joinDate.Year()
		for leaveType, total := range map[leave.LeaveType]int{
			leave.LeaveTypeCasual: leave.DefaultCasualAllotment,
			leave.LeaveTypeSick:   leave.DefaultSickAllotment,
		} {
			_, err := e.LeaveBalanceRepository.Create(txCtx, leave.LeaveBalance{
				RequesterID: created.ID,
				LeaveType:   leaveType,
				Year:        year,
				Total:       total,
			})
			if err != nil {
				return fmt.Errorf("failed to seed leave balance: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return newEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return newEmployeeResponse(emp), nil
}

// GetByUserID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByUserID(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return newEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, viewer leave.Requester) ([]employee.EmployeeResponse, error) {
	var employees []employee.Employee
	var err error

	switch viewer.Role {
	case user.RoleManager:
		employees, err = e.EmployeeRepository.ListByManager(ctx, viewer.ID)
	case user.RoleAdmin, user.RoleSuperAdmin:
		employees, err = e.EmployeeRepository.List(ctx)
	default:
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, newEmployeeResponse(emp))
	}
	return responses, nil
}

func newEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Role:         string(emp.Role),
		PhoneNumber:  emp.PhoneNumber,
		Headquarters: emp.Headquarters,
		ManagerID:    emp.ManagerID,
		JoinDate:     emp.JoinDate,
	}
}
