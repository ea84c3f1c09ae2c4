package visit

import "context"

// VisitRepository - interface for visits table
type VisitRepository interface {
	Create(ctx context.Context, v Visit) (Visit, error)
	GetByID(ctx context.Context, id string) (Visit, error)
	ListByExecutiveMonth(ctx context.Context, fieldExecutiveID string, year, month int) ([]Visit, error)
	ExistsInSlot(ctx context.Context, fieldExecutiveID, partyName string, year, month, weekOfMonth int) (bool, error)
	UpdateStatus(ctx context.Context, id string, status VisitStatus, remarks *string) error
}
