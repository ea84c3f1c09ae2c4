package target

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/target"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
)

type TargetServiceImpl struct {
	target.TargetRepository
}

func NewTargetService(targetRepo target.TargetRepository) target.TargetService {
	return &TargetServiceImpl{TargetRepository: targetRepo}
}

// SetTarget implements target.TargetService.
func (t *TargetServiceImpl) SetTarget(ctx context.Context, setter leave.Requester, req target.SetTargetRequest) (target.TargetResponse, error) {
	if setter.Role == user.RoleFieldExecutive || !setter.Role.Valid() {
		return target.TargetResponse{}, user.ErrApproverRoleRequired
	}
	if err := req.Validate(); err != nil {
		return target.TargetResponse{}, err
	}

	// Validate guarantees the amount parses
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return target.TargetResponse{}, fmt.Errorf("failed to parse target amount: %w", err)
	}

	saved, err := t.TargetRepository.Upsert(ctx, target.Target{
		FieldExecutiveID: req.FieldExecutiveID,
		Year:             req.Year,
		Month:            req.Month,
		TargetSet:        amount,
		SetBy:            setter.ID,
	})
	if err != nil {
		return target.TargetResponse{}, fmt.Errorf("failed to upsert sales target: %w", err)
	}

	return target.NewTargetResponse(saved), nil
}

// RecordSales implements target.TargetService.
func (t *TargetServiceImpl) RecordSales(ctx context.Context, executive leave.Requester, req target.RecordSalesRequest) (target.TargetResponse, error) {
	if err := req.Validate(); err != nil {
		return target.TargetResponse{}, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return target.TargetResponse{}, fmt.Errorf("failed to parse sales amount: %w", err)
	}

	if err := t.TargetRepository.AddAchievement(ctx, executive.ID, req.Year, req.Month, amount); err != nil {
		return target.TargetResponse{}, err
	}

	updated, err := t.TargetRepository.GetByExecutiveMonth(ctx, executive.ID, req.Year, req.Month)
	if err != nil {
		return target.TargetResponse{}, err
	}

	return target.NewTargetResponse(updated), nil
}

// GetMonth implements target.TargetService.
func (t *TargetServiceImpl) GetMonth(ctx context.Context, fieldExecutiveID string, year, month int) (target.TargetResponse, error) {
	found, err := t.TargetRepository.GetByExecutiveMonth(ctx, fieldExecutiveID, year, month)
	if err != nil {
		return target.TargetResponse{}, err
	}
	return target.NewTargetResponse(found), nil
}

// ListYear implements target.TargetService.
func (t *TargetServiceImpl) ListYear(ctx context.Context, fieldExecutiveID string, year int) ([]target.TargetResponse, error) {
	targets, err := t.TargetRepository.ListByExecutiveYear(ctx, fieldExecutiveID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales targets: %w", err)
	}

	responses := make([]target.TargetResponse, 0, len(targets))
	for _, tgt := range targets {
		responses = append(responses, target.NewTargetResponse(tgt))
	}
	return responses, nil
}
