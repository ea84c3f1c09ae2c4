package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/validator"
)

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Composition *string `json:"composition,omitempty"`
	PackSize    *string `json:"pack_size,omitempty"`
	PTS         string  `json:"pts"`
	PTR         string  `json:"ptr"`
	MRP         string  `json:"mrp"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	for field, raw := range map[string]string{"pts": r.PTS, "ptr": r.PTR, "mrp": r.MRP} {
		if amount, err := decimal.NewFromString(raw); err != nil || amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreatePromotionRequest struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreatePromotionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	var start, end time.Time
	var startOK, endOK bool

	if start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if end, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Composition *string         `json:"composition,omitempty"`
	PackSize    *string         `json:"pack_size,omitempty"`
	PTS         decimal.Decimal `json:"pts"`
	PTR         decimal.Decimal `json:"ptr"`
	MRP         decimal.Decimal `json:"mrp"`
	IsActive    bool            `json:"is_active"`
}

func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Composition: p.Composition,
		PackSize:    p.PackSize,
		PTS:         p.PTS,
		PTR:         p.PTR,
		MRP:         p.MRP,
		IsActive:    p.IsActive,
	}
}

type PromotionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func NewPromotionResponse(p Promotion) PromotionResponse {
	return PromotionResponse{
		ID:        p.ID,
		ProductID: p.ProductID,
		Title:     p.Title,
		Message:   p.Message,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}
