package target

import (
	"context"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
)

type TargetService interface {
	// SetTarget creates or replaces the month's target amount for a
	// field executive. Approver roles only.
	SetTarget(ctx context.Context, setter leave.Requester, req SetTargetRequest) (TargetResponse, error)
	// RecordSales accumulates a reported amount onto the caller's
	// achieved figure for the month.
	RecordSales(ctx context.Context, executive leave.Requester, req RecordSalesRequest) (TargetResponse, error)
	GetMonth(ctx context.Context, fieldExecutiveID string, year, month int) (TargetResponse, error)
	ListYear(ctx context.Context, fieldExecutiveID string, year int) ([]TargetResponse, error)
}
