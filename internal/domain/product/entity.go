package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product catalog entry. PTS/PTR are the trade prices (price to
// stockist / price to retailer) printed on promotion material.
type Product struct {
	ID          string
	Name        string
	Composition *string
	PackSize    *string
	PTS         decimal.Decimal
	PTR         decimal.Decimal
	MRP         decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Promotion is a time-bounded campaign attached to a product.
type Promotion struct {
	ID        string
	ProductID string
	Title     string
	Message   string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveOn reports whether the promotion covers the given date.
func (p Promotion) ActiveOn(day time.Time) bool {
	return !day.Before(p.StartDate) && !day.After(p.EndDate)
}
