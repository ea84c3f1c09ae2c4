package target

import (
	"time"

	"github.com/shopspring/decimal"
)

// Target is a per-FE monthly sales target. Achieved accumulates from
// reported sales; the percentage is always derived.
type Target struct {
	ID               string
	FieldExecutiveID string
	Year             int
	Month            int // 1-12
	TargetSet        decimal.Decimal
	TargetAchieved   decimal.Decimal
	SetBy            string // manager employee ID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AchievementPercent returns achieved/set as a rounded percentage,
// 0 when no target amount is set.
func (t Target) AchievementPercent() int {
	if t.TargetSet.IsZero() {
		return 0
	}
	pct := t.TargetAchieved.Div(t.TargetSet).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}
