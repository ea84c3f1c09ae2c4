package employee

import (
	"time"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
)

type Employee struct {
	ID           string
	UserID       string
	ManagerID    *string // supervising manager, nil for admins and unassigned FEs
	EmployeeCode string
	FullName     string
	PhoneNumber  string
	Headquarters string // operating territory, e.g. "Dhaka North"
	JoinDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	Role  user.Role
	Email string
}
