package visit

import "time"

type PartyType string

const (
	PartyDoctor  PartyType = "doctor"
	PartyChemist PartyType = "chemist"
)

func (p PartyType) Valid() bool {
	return p == PartyDoctor || p == PartyChemist
}

type VisitStatus string

const (
	VisitStatusPlanned   VisitStatus = "planned"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusMissed    VisitStatus = "missed"
)

// Visit is a planned call on a doctor or chemist, slotted into a
// week-of-month and weekday.
type Visit struct {
	ID               string
	FieldExecutiveID string
	PartyType        PartyType
	PartyName        string
	Year             int
	Month            int // 1-12
	WeekOfMonth      int // 1-5
	Weekday          time.Weekday
	Status           VisitStatus
	Remarks          *string
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Compliance is the planned-vs-completed figure shown on manager
// dashboards. Plain counting over the month's visit list.
type Compliance struct {
	Planned   int `json:"planned"`
	Completed int `json:"completed"`
	Missed    int `json:"missed"`
	Rate      int `json:"rate"` // percent of planned visits completed, rounded
}

// ComputeCompliance folds a visit list into its compliance figure.
func ComputeCompliance(visits []Visit) Compliance {
	var c Compliance
	for _, v := range visits {
		c.Planned++
		switch v.Status {
		case VisitStatusCompleted:
			c.Completed++
		case VisitStatusMissed:
			c.Missed++
		}
	}
	if c.Planned > 0 {
		c.Rate = (c.Completed*100 + c.Planned/2) / c.Planned
	}
	return c
}
