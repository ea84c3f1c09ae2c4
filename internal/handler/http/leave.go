package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MonthSummary(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Apply(r.Context(), requester, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter leave.LeaveRequestFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := leave.LeaveStatus(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("leave_type"); raw != "" {
		leaveType := leave.LeaveType(raw)
		filter.LeaveType = &leaveType
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be numeric", nil)
			return
		}
		filter.Year = &year
	}

	requests, err := l.leaveService.ListMine(r.Context(), requester, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// GetMyBalances implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be numeric", nil)
			return
		}
	}

	balances, err := l.leaveService.Balances(r.Context(), requester, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// ListPending implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	approver, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pending, err := l.leaveService.ListPending(r.Context(), approver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approver, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	result, err := l.leaveService.Approve(r.Context(), approver, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approver, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.RejectLeaveRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Reject decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	rejected, err := l.leaveService.Reject(r.Context(), approver, requestID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rejected)
}

// MonthSummary implements LeaveHandler.
func (l *LeaveHandlerImpl) MonthSummary(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, ok := yearMonthFromQuery(w, r)
	if !ok {
		return
	}

	summary, err := l.leaveService.MonthSummary(r.Context(), requester.ID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// yearMonthFromQuery reads optional year/month query params, defaulting
// to the current month. It writes the error response itself.
func yearMonthFromQuery(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be numeric", nil)
			return 0, 0, false
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return 0, 0, false
		}
		month = time.Month(parsed)
	}

	return year, month, true
}
