package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/target"
	"github.com/pharmatrack/fieldforce-backend-go/internal/handler/http/response"
)

type TargetHandler interface {
	SetTarget(w http.ResponseWriter, r *http.Request)
	RecordSales(w http.ResponseWriter, r *http.Request)
	GetMyMonth(w http.ResponseWriter, r *http.Request)
	ListExecutiveYear(w http.ResponseWriter, r *http.Request)
}

type TargetHandlerImpl struct {
	targetService target.TargetService
}

func NewTargetHandler(targetService target.TargetService) TargetHandler {
	return &TargetHandlerImpl{targetService: targetService}
}

// SetTarget implements TargetHandler.
func (t *TargetHandlerImpl) SetTarget(w http.ResponseWriter, r *http.Request) {
	setter, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req target.SetTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetTarget decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := t.targetService.SetTarget(r.Context(), setter, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sales target saved", saved)
}

// RecordSales implements TargetHandler.
func (t *TargetHandlerImpl) RecordSales(w http.ResponseWriter, r *http.Request) {
	executive, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req target.RecordSalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordSales decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := t.targetService.RecordSales(r.Context(), executive, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// GetMyMonth implements TargetHandler.
func (t *TargetHandlerImpl) GetMyMonth(w http.ResponseWriter, r *http.Request) {
	executive, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, ok := yearMonthFromQuery(w, r)
	if !ok {
		return
	}

	found, err := t.targetService.GetMonth(r.Context(), executive.ID, year, int(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListExecutiveYear implements TargetHandler.
func (t *TargetHandlerImpl) ListExecutiveYear(w http.ResponseWriter, r *http.Request) {
	fieldExecutiveID := chi.URLParam(r, "id")
	if fieldExecutiveID == "" {
		response.BadRequest(w, "Field executive ID is required", nil)
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be numeric", nil)
			return
		}
		year = parsed
	}

	targets, err := t.targetService.ListYear(r.Context(), fieldExecutiveID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, targets)
}
