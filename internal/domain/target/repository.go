package target

import (
	"context"

	"github.com/shopspring/decimal"
)

// TargetRepository - interface for sales_targets table
type TargetRepository interface {
	// Upsert creates the month's target or replaces its set amount.
	Upsert(ctx context.Context, t Target) (Target, error)
	GetByExecutiveMonth(ctx context.Context, fieldExecutiveID string, year, month int) (Target, error)
	ListByExecutiveYear(ctx context.Context, fieldExecutiveID string, year int) ([]Target, error)
	// AddAchievement accumulates a reported sales amount onto the
	// month's achieved figure.
	AddAchievement(ctx context.Context, fieldExecutiveID string, year, month int, amount decimal.Decimal) error
}
