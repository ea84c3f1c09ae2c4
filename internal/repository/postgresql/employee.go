package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/employee"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.manager_id, e.employee_code, e.full_name,
	e.phone_number, e.headquarters, e.join_date, e.created_at, e.updated_at,
	u.role, u.email
`

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, manager_id, employee_code, full_name,
			phone_number, headquarters, join_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	emp.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		emp.ID, emp.UserID, emp.ManagerID, emp.EmployeeCode, emp.FullName,
		emp.PhoneNumber, emp.Headquarters, emp.JoinDate,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	return r.scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
	`

	return r.scanEmployee(q.QueryRow(ctx, query, userID))
}

func (r *employeeRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.manager_id = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEmployees(rows)
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEmployees(rows)
}

func (r *employeeRepositoryImpl) scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.ManagerID, &emp.EmployeeCode, &emp.FullName,
		&emp.PhoneNumber, &emp.Headquarters, &emp.JoinDate, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.Role, &emp.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.ManagerID, &emp.EmployeeCode, &emp.FullName,
			&emp.PhoneNumber, &emp.Headquarters, &emp.JoinDate, &emp.CreatedAt, &emp.UpdatedAt,
			&emp.Role, &emp.Email,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
