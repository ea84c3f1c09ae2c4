package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/visit"
)

type VisitServiceImpl struct {
	visit.VisitRepository
}

func NewVisitService(visitRepo visit.VisitRepository) visit.VisitService {
	return &VisitServiceImpl{VisitRepository: visitRepo}
}

// Plan implements visit.VisitService. A party may occupy a given
// week-of-month slot only once per executive.
func (v *VisitServiceImpl) Plan(ctx context.Context, executive leave.Requester, req visit.PlanVisitRequest) (visit.VisitResponse, error) {
	if err := req.Validate(); err != nil {
		return visit.VisitResponse{}, err
	}

	occupied, err := v.VisitRepository.ExistsInSlot(ctx, executive.ID, req.PartyName, req.Year, req.Month, req.WeekOfMonth)
	if err != nil {
		return visit.VisitResponse{}, fmt.Errorf("failed to check visit slot: %w", err)
	}
	if occupied {
		return visit.VisitResponse{}, visit.ErrSlotAlreadyOccupied
	}

	created, err := v.VisitRepository.Create(ctx, visit.Visit{
		FieldExecutiveID: executive.ID,
		PartyType:        visit.PartyType(req.PartyType),
		PartyName:        req.PartyName,
		Year:             req.Year,
		Month:            req.Month,
		WeekOfMonth:      req.WeekOfMonth,
		Weekday:          time.Weekday(req.Weekday),
		Status:           visit.VisitStatusPlanned,
	})
	if err != nil {
		return visit.VisitResponse{}, fmt.Errorf("failed to create visit: %w", err)
	}

	return visit.NewVisitResponse(created), nil
}

// Complete implements visit.VisitService.
func (v *VisitServiceImpl) Complete(ctx context.Context, executive leave.Requester, visitID string, req visit.CompleteVisitRequest) (visit.VisitResponse, error) {
	return v.transition(ctx, executive, visitID, visit.VisitStatusCompleted, req.Remarks)
}

// Miss implements visit.VisitService.
func (v *VisitServiceImpl) Miss(ctx context.Context, executive leave.Requester, visitID string, remarks *string) (visit.VisitResponse, error) {
	return v.transition(ctx, executive, visitID, visit.VisitStatusMissed, remarks)
}

func (v *VisitServiceImpl) transition(ctx context.Context, executive leave.Requester, visitID string, status visit.VisitStatus, remarks *string) (visit.VisitResponse, error) {
	found, err := v.VisitRepository.GetByID(ctx, visitID)
	if err != nil {
		return visit.VisitResponse{}, err
	}

	if found.FieldExecutiveID != executive.ID {
		return visit.VisitResponse{}, visit.ErrVisitNotOwned
	}
	if found.Status != visit.VisitStatusPlanned {
		return visit.VisitResponse{}, visit.ErrVisitNotPlanned
	}

	if err := v.VisitRepository.UpdateStatus(ctx, visitID, status, remarks); err != nil {
		return visit.VisitResponse{}, fmt.Errorf("failed to update visit status: %w", err)
	}

	found.Status = status
	found.Remarks = remarks
	if status == visit.VisitStatusCompleted {
		now := time.Now()
		found.CompletedAt = &now
	}

	return visit.NewVisitResponse(found), nil
}

// ListMonth implements visit.VisitService.
func (v *VisitServiceImpl) ListMonth(ctx context.Context, fieldExecutiveID string, year, month int) ([]visit.VisitResponse, error) {
	visits, err := v.VisitRepository.ListByExecutiveMonth(ctx, fieldExecutiveID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	responses := make([]visit.VisitResponse, 0, len(visits))
	for _, vis := range visits {
		responses = append(responses, visit.NewVisitResponse(vis))
	}
	return responses, nil
}

// ComplianceForMonth implements visit.VisitService.
func (v *VisitServiceImpl) ComplianceForMonth(ctx context.Context, fieldExecutiveID string, year, month int) (visit.Compliance, error) {
	visits, err := v.VisitRepository.ListByExecutiveMonth(ctx, fieldExecutiveID, year, month)
	if err != nil {
		return visit.Compliance{}, fmt.Errorf("failed to list visits: %w", err)
	}
	return visit.ComputeCompliance(visits), nil
}
