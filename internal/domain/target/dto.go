package target

import (
	"github.com/shopspring/decimal"

	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

type SetTargetRequest struct {
	FieldExecutiveID string `json:"field_executive_id"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	Amount           string `json:"amount"`
}

func (r *SetTargetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FieldExecutiveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "field_executive_id",
			Message: "field_executive_id is required",
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

	if amount, err := decimal.NewFromString(r.Amount); err != nil || amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordSalesRequest struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Amount string `json:"amount"`
}

func (r *RecordSalesRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if amount, err := decimal.NewFromString(r.Amount); err != nil || amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TargetResponse struct {
	ID                 string          `json:"id"`
	FieldExecutiveID   string          `json:"field_executive_id"`
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	TargetSet          decimal.Decimal `json:"target_set"`
	TargetAchieved     decimal.Decimal `json:"target_achieved"`
	AchievementPercent int             `json:"achievement_percent"`
}

func NewTargetResponse(t Target) TargetResponse {
	return TargetResponse{
		ID:                 t.ID,
		FieldExecutiveID:   t.FieldExecutiveID,
		Year:               t.Year,
		Month:              t.Month,
		TargetSet:          t.TargetSet,
		TargetAchieved:     t.TargetAchieved,
		AchievementPercent: t.AchievementPercent(),
	}
}
