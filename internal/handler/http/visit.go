package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/visit"
	"github.com/pharmatrack/fieldforce-backend-go/internal/handler/http/response"
)

type VisitHandler interface {
	Plan(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Miss(w http.ResponseWriter, r *http.Request)
	GetMyMonth(w http.ResponseWriter, r *http.Request)
	GetMyCompliance(w http.ResponseWriter, r *http.Request)
}

type VisitHandlerImpl struct {
	visitService visit.VisitService
}

func NewVisitHandler(visitService visit.VisitService) VisitHandler {
	return &VisitHandlerImpl{visitService: visitService}
}

// Plan implements VisitHandler.
func (v *VisitHandlerImpl) Plan(w http.ResponseWriter, r *http.Request) {
	executive, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req visit.PlanVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Plan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := v.visitService.Plan(r.Context(), executive, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Visit planned", created)
}

// Complete implements VisitHandler.
func (v *VisitHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	executive, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	visitID := chi.URLParam(r, "id")
	if visitID == "" {
		response.BadRequest(w, "Visit ID is required", nil)
		return
	}

	var req visit.CompleteVisitRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Complete decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	completed, err := v.visitService.Complete(r.Context(), executive, visitID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, completed)
}

// Miss implements VisitHandler.
func (v *VisitHandlerImpl) Miss(w http.ResponseWriter, r *http.Request) {
	executive, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	visitID := chi.URLParam(r, "id")
	if visitID == "" {
		response.BadRequest(w, "Visit ID is required", nil)
		return
	}

	var req visit.CompleteVisitRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Miss decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	missed, err := v.visitService.Miss(r.Context(), executive, visitID, req.Remarks)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, missed)
}

// GetMyMonth implements VisitHandler.
func (v *VisitHandlerImpl) GetMyMonth(w http.ResponseWriter, r *http.Request) {
	executive, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, ok := yearMonthFromQuery(w, r)
	if !ok {
		return
	}

	visits, err := v.visitService.ListMonth(r.Context(), executive.ID, year, int(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, visits)
}

// GetMyCompliance implements VisitHandler.
func (v *VisitHandlerImpl) GetMyCompliance(w http.ResponseWriter, r *http.Request) {
	executive, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, ok := yearMonthFromQuery(w, r)
	if !ok {
		return
	}

	compliance, err := v.visitService.ComplianceForMonth(r.Context(), executive.ID, year, int(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, compliance)
}
