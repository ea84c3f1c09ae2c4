package visit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/visit"
)

type fakeVisitRepo struct {
	visits map[string]visit.Visit
	nextID int
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{visits: make(map[string]visit.Visit)}
}

func (f *fakeVisitRepo) Create(_ context.Context, v visit.Visit) (visit.Visit, error) {
	f.nextID++
	v.ID = fmt.Sprintf("visit-%d", f.nextID)
	f.visits[v.ID] = v
	return v, nil
}

func (f *fakeVisitRepo) GetByID(_ context.Context, id string) (visit.Visit, error) {
	v, ok := f.visits[id]
	if !ok {
		return visit.Visit{}, visit.ErrVisitNotFound
	}
	return v, nil
}

func (f *fakeVisitRepo) ListByExecutiveMonth(_ context.Context, fieldExecutiveID string, year, month int) ([]visit.Visit, error) {
	var out []visit.Visit
	for _, v := range f.visits {
		if v.FieldExecutiveID == fieldExecutiveID && v.Year == year && v.Month == month {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVisitRepo) ExistsInSlot(_ context.Context, fieldExecutiveID, partyName string, year, month, weekOfMonth int) (bool, error) {
	for _, v := range f.visits {
		if v.FieldExecutiveID == fieldExecutiveID && v.PartyName == partyName &&
			v.Year == year && v.Month == month && v.WeekOfMonth == weekOfMonth {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVisitRepo) UpdateStatus(_ context.Context, id string, status visit.VisitStatus, remarks *string) error {
	v, ok := f.visits[id]
	if !ok {
		return visit.ErrVisitNotFound
	}
	v.Status = status
	v.Remarks = remarks
	f.visits[id] = v
	return nil
}

var executive = leave.Requester{Role: user.RoleFieldExecutive, ID: "emp-fe-1"}

func planRequest() visit.PlanVisitRequest {
	return visit.PlanVisitRequest{
		PartyType:   string(visit.PartyDoctor),
		PartyName:   "Dr. Rahman",
		Year:        2025,
		Month:       3,
		WeekOfMonth: 2,
		Weekday:     int(time.Tuesday),
	}
}

func TestPlan(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := NewVisitService(repo)

	created, err := svc.Plan(context.Background(), executive, planRequest())

	require.NoError(t, err)
	assert.Equal(t, string(visit.VisitStatusPlanned), created.Status)
	assert.Equal(t, "Tuesday", created.Weekday)
	assert.Equal(t, executive.ID, created.FieldExecutiveID)
}

func TestPlan_SlotAlreadyOccupied(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := NewVisitService(repo)

	_, err := svc.Plan(context.Background(), executive, planRequest())
	require.NoError(t, err)

	_, err = svc.Plan(context.Background(), executive, planRequest())
	assert.ErrorIs(t, err, visit.ErrSlotAlreadyOccupied)
}

func TestPlan_SamePartyDifferentWeek(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := NewVisitService(repo)

	_, err := svc.Plan(context.Background(), executive, planRequest())
	require.NoError(t, err)

	req := planRequest()
	req.WeekOfMonth = 4
	_, err = svc.Plan(context.Background(), executive, req)
	assert.NoError(t, err)
}

func TestComplete(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := NewVisitService(repo)

	created, err := svc.Plan(context.Background(), executive, planRequest())
	require.NoError(t, err)

	remarks := "discussed new antacid line"
	completed, err := svc.Complete(context.Background(), executive, created.ID, visit.CompleteVisitRequest{Remarks: &remarks})

	require.NoError(t, err)
	assert.Equal(t, string(visit.VisitStatusCompleted), completed.Status)
	require.NotNil(t, completed.CompletedAt)

	// a completed visit cannot be transitioned again
	_, err = svc.Miss(context.Background(), executive, created.ID, nil)
	assert.ErrorIs(t, err, visit.ErrVisitNotPlanned)
}

func TestComplete_OtherExecutivesVisit(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := NewVisitService(repo)

	created, err := svc.Plan(context.Background(), executive, planRequest())
	require.NoError(t, err)

	other := leave.Requester{Role: user.RoleFieldExecutive, ID: "emp-fe-2"}
	_, err = svc.Complete(context.Background(), other, created.ID, visit.CompleteVisitRequest{})
	assert.ErrorIs(t, err, visit.ErrVisitNotOwned)
}

func TestComplianceForMonth(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := NewVisitService(repo)

	parties := []string{"Dr. Rahman", "Lazz Pharma", "Dr. Sultana", "Popular Chemist"}
	var ids []string
	for i, party := range parties {
		req := planRequest()
		req.PartyName = party
		req.WeekOfMonth = i%4 + 1
		created, err := svc.Plan(context.Background(), executive, req)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	_, err := svc.Complete(context.Background(), executive, ids[0], visit.CompleteVisitRequest{})
	require.NoError(t, err)
	_, err = svc.Complete(context.Background(), executive, ids[1], visit.CompleteVisitRequest{})
	require.NoError(t, err)
	_, err = svc.Miss(context.Background(), executive, ids[2], nil)
	require.NoError(t, err)

	compliance, err := svc.ComplianceForMonth(context.Background(), executive.ID, 2025, 3)

	require.NoError(t, err)
	assert.Equal(t, visit.Compliance{Planned: 4, Completed: 2, Missed: 1, Rate: 50}, compliance)
}
