package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/visit"
)

// Stats enumerates exactly the fields the dashboard consumes. No
// untyped stat bags: a missing figure is a compile error, not a silent
// undefined.
type Stats struct {
	TargetSet            decimal.Decimal `json:"target_set"`
	TargetAchieved       decimal.Decimal `json:"target_achieved"`
	AchievementPercent   int             `json:"achievement_percent"`
	CasualLeaves         int             `json:"casual_leaves"`
	ApprovedCasualLeaves int             `json:"approved_casual_leaves"`
	SickLeaves           int             `json:"sick_leaves"`
	ApprovedSickLeaves   int             `json:"approved_sick_leaves"`
}

// Overview is the full dashboard payload for one field executive and
// month: the typed stats, the attendance aggregate and the visit
// compliance figure, each recomputed from the current snapshot.
type Overview struct {
	Stats      Stats                      `json:"stats"`
	Attendance leave.MonthSummaryResponse `json:"attendance"`
	Compliance visit.Compliance           `json:"compliance"`
}
