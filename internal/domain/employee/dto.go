package employee

import (
	"time"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	FullName     string  `json:"full_name"`
	EmployeeCode string  `json:"employee_code"`
	PhoneNumber  string  `json:"phone_number"`
	Headquarters string  `json:"headquarters"`
	ManagerID    *string `json:"manager_id,omitempty"`
	JoinDate     string  `json:"join_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !user.Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of field_executive, manager, admin, super_admin",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the pattern XX-0000",
		})
	}

	if !validator.IsEmpty(r.PhoneNumber) && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number format is invalid",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Headquarters string    `json:"headquarters,omitempty"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	JoinDate     time.Time `json:"join_date"`
}
