package visit

import (
	"context"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
)

type VisitService interface {
	Plan(ctx context.Context, executive leave.Requester, req PlanVisitRequest) (VisitResponse, error)
	Complete(ctx context.Context, executive leave.Requester, visitID string, req CompleteVisitRequest) (VisitResponse, error)
	Miss(ctx context.Context, executive leave.Requester, visitID string, remarks *string) (VisitResponse, error)
	ListMonth(ctx context.Context, fieldExecutiveID string, year, month int) ([]VisitResponse, error)
	ComplianceForMonth(ctx context.Context, fieldExecutiveID string, year, month int) (Compliance, error)
}
