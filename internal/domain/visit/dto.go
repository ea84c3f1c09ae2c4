package visit

import (
	"time"

	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

type PlanVisitRequest struct {
	PartyType   string `json:"party_type"`
	PartyName   string `json:"party_name"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	WeekOfMonth int    `json:"week_of_month"`
	Weekday     int    `json:"weekday"` // 1 = Monday .. 6 = Saturday
}

func (r *PlanVisitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !PartyType(r.PartyType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "party_type",
			Message: "party_type must be doctor or chemist",
		})
	}

	if validator.IsEmpty(r.PartyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "party_name",
			Message: "party_name is required",
		})
	}

	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a valid calendar year",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.WeekOfMonth < 1 || r.WeekOfMonth > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "week_of_month",
			Message: "week_of_month must be between 1 and 5",
		})
	}

	// Sunday is the fixed off day
	if r.Weekday < 1 || r.Weekday > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekday",
			Message: "weekday must be between 1 (Monday) and 6 (Saturday)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompleteVisitRequest struct {
	Remarks *string `json:"remarks,omitempty"`
}

type VisitResponse struct {
	ID               string     `json:"id"`
	FieldExecutiveID string     `json:"field_executive_id"`
	PartyType        string     `json:"party_type"`
	PartyName        string     `json:"party_name"`
	Year             int        `json:"year"`
	Month            int        `json:"month"`
	WeekOfMonth      int        `json:"week_of_month"`
	Weekday          string     `json:"weekday"`
	Status           string     `json:"status"`
	Remarks          *string    `json:"remarks,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func NewVisitResponse(v Visit) VisitResponse {
	return VisitResponse{
		ID:               v.ID,
		FieldExecutiveID: v.FieldExecutiveID,
		PartyType:        string(v.PartyType),
		PartyName:        v.PartyName,
		Year:             v.Year,
		Month:            v.Month,
		WeekOfMonth:      v.WeekOfMonth,
		Weekday:          v.Weekday.String(),
		Status:           string(v.Status),
		Remarks:          v.Remarks,
		CompletedAt:      v.CompletedAt,
	}
}
