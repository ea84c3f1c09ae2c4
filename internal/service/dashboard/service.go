package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/dashboard"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/target"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/visit"
)

type DashboardServiceImpl struct {
	target.TargetRepository
	leave.LeaveRequestRepository
	visit.VisitRepository
	leaveService leave.LeaveService
}

func NewDashboardService(targetRepo target.TargetRepository, leaveRequestRepo leave.LeaveRequestRepository, visitRepo visit.VisitRepository, leaveService leave.LeaveService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		TargetRepository:       targetRepo,
		LeaveRequestRepository: leaveRequestRepo,
		VisitRepository:        visitRepo,
		leaveService:           leaveService,
	}
}

// Overview implements dashboard.DashboardService. Every figure is
// recomputed from the current snapshot; a month without a sales target
// yields zero stats, not an error.
func (d *DashboardServiceImpl) Overview(ctx context.Context, fieldExecutiveID string, year int, month time.Month) (dashboard.Overview, error) {
	var overview dashboard.Overview

	monthTarget, err := d.TargetRepository.GetByExecutiveMonth(ctx, fieldExecutiveID, year, int(month))
	if err != nil && err != target.ErrTargetNotFound {
		return dashboard.Overview{}, fmt.Errorf("failed to get sales target: %w", err)
	}
	if err == nil {
		overview.Stats.TargetSet = monthTarget.TargetSet
		overview.Stats.TargetAchieved = monthTarget.TargetAchieved
		overview.Stats.AchievementPercent = monthTarget.AchievementPercent()
	}

	casualTotal, casualApproved, err := d.LeaveRequestRepository.CountByType(ctx, fieldExecutiveID, leave.LeaveTypeCasual, year)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to count casual leaves: %w", err)
	}
	overview.Stats.CasualLeaves = casualTotal
	overview.Stats.ApprovedCasualLeaves = casualApproved

	sickTotal, sickApproved, err := d.LeaveRequestRepository.CountByType(ctx, fieldExecutiveID, leave.LeaveTypeSick, year)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to count sick leaves: %w", err)
	}
	overview.Stats.SickLeaves = sickTotal
	overview.Stats.ApprovedSickLeaves = sickApproved

	overview.Attendance, err = d.leaveService.MonthSummary(ctx, fieldExecutiveID, year, month)
	if err != nil {
		return dashboard.Overview{}, err
	}

	visits, err := d.VisitRepository.ListByExecutiveMonth(ctx, fieldExecutiveID, year, int(month))
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list visits: %w", err)
	}
	overview.Compliance = visit.ComputeCompliance(visits)

	return overview, nil
}
