package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/handler/http/middleware"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/jwt"
)

type fakeLeaveService struct {
	applied       []leave.ApplyLeaveRequest
	applyErr      error
	approveResult leave.ApprovalResponse
	approveErr    error
	lastApprover  leave.Requester
}

func (f *fakeLeaveService) Apply(_ context.Context, requester leave.Requester, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if f.applyErr != nil {
		return leave.LeaveRequestResponse{}, f.applyErr
	}
	f.applied = append(f.applied, req)
	return leave.LeaveRequestResponse{
		ID:          "req-1",
		RequesterID: requester.ID,
		LeaveType:   req.LeaveType,
		Status:      string(leave.LeaveStatusPending),
	}, nil
}

func (f *fakeLeaveService) Approve(_ context.Context, approver leave.Requester, requestID string) (leave.ApprovalResponse, error) {
	f.lastApprover = approver
	if f.approveErr != nil {
		return leave.ApprovalResponse{}, f.approveErr
	}
	return f.approveResult, nil
}

func (f *fakeLeaveService) Reject(_ context.Context, _ leave.Requester, requestID string, reason string) (leave.LeaveRequestResponse, error) {
	return leave.LeaveRequestResponse{ID: requestID, Status: string(leave.LeaveStatusRejected)}, nil
}

func (f *fakeLeaveService) ListMine(_ context.Context, _ leave.Requester, _ leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) ListPending(_ context.Context, _ leave.Requester) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) Balances(_ context.Context, _ leave.Requester, _ int) ([]leave.LeaveBalanceResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) MonthSummary(_ context.Context, _ string, _ int, _ time.Month) (leave.MonthSummaryResponse, error) {
	return leave.MonthSummaryResponse{}, nil
}

const testSecret = "test-secret-key-for-jwt"

func newLeaveTestRouter(svc leave.LeaveService) (*chi.Mux, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	handler := NewLeaveHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Post("/leaves", handler.Apply)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireApprover)
			r.Post("/leaves/{id}/approve", handler.Approve)
		})
	})
	return r, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, employeeID string, role user.Role) string {
	t.Helper()
	empID := employeeID
	token, _, err := jwtService.GenerateAccessToken("user-1", "rep@pharmatrack.example", &empID, role)
	require.NoError(t, err)
	return token
}

func TestLeaveApplyEndpoint(t *testing.T) {
	svc := &fakeLeaveService{}
	router, jwtService := newLeaveTestRouter(svc)

	body, _ := json.Marshal(leave.ApplyLeaveRequest{
		LeaveType: "casual_leave",
		FromDate:  "2025-02-05",
		ToDate:    "2025-02-06",
		Reason:    "family function",
	})

	req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, "emp-fe-1", user.RoleFieldExecutive))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.applied, 1)
	assert.Equal(t, "casual_leave", svc.applied[0].LeaveType)

	var envelope struct {
		Success bool                       `json:"success"`
		Data    leave.LeaveRequestResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "emp-fe-1", envelope.Data.RequesterID)
}

func TestLeaveApplyEndpoint_NoToken(t *testing.T) {
	router, _ := newLeaveTestRouter(&fakeLeaveService{})

	req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLeaveApplyEndpoint_InsufficientBalance(t *testing.T) {
	svc := &fakeLeaveService{applyErr: leave.ErrInsufficientBalance}
	router, jwtService := newLeaveTestRouter(svc)

	body, _ := json.Marshal(leave.ApplyLeaveRequest{
		LeaveType: "sick_leave",
		FromDate:  "2025-02-05",
		ToDate:    "2025-02-06",
	})

	req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, "emp-fe-1", user.RoleFieldExecutive))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveApproveEndpoint(t *testing.T) {
	svc := &fakeLeaveService{
		approveResult: leave.ApprovalResponse{
			Outcome: string(leave.OutcomeApproved),
			Request: leave.LeaveRequestResponse{ID: "req-1", Status: string(leave.LeaveStatusApproved)},
		},
	}
	router, jwtService := newLeaveTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/leaves/req-1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, "emp-mgr-1", user.RoleManager))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, leave.Requester{Role: user.RoleManager, ID: "emp-mgr-1"}, svc.lastApprover)

	var envelope struct {
		Data leave.ApprovalResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, string(leave.OutcomeApproved), envelope.Data.Outcome)
}

func TestLeaveApproveEndpoint_FieldExecutiveForbidden(t *testing.T) {
	router, jwtService := newLeaveTestRouter(&fakeLeaveService{})

	req := httptest.NewRequest(http.MethodPost, "/leaves/req-1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, "emp-fe-1", user.RoleFieldExecutive))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
