package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	// Overview assembles the month's stats, attendance and visit
	// compliance for one field executive, all recomputed on read.
	Overview(ctx context.Context, fieldExecutiveID string, year int, month time.Month) (Overview, error)
}
