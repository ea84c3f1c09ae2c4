package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/dashboard"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetMyOverview(w http.ResponseWriter, r *http.Request)
	GetExecutiveOverview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetMyOverview implements DashboardHandler.
func (d *DashboardHandlerImpl) GetMyOverview(w http.ResponseWriter, r *http.Request) {
	requester, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, ok := yearMonthFromQuery(w, r)
	if !ok {
		return
	}

	overview, err := d.dashboardService.Overview(r.Context(), requester.ID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// GetExecutiveOverview implements DashboardHandler. Managers and above
// inspect an executive's dashboard by employee ID.
func (d *DashboardHandlerImpl) GetExecutiveOverview(w http.ResponseWriter, r *http.Request) {
	viewer, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if viewer.Role == user.RoleFieldExecutive {
		response.HandleError(w, user.ErrApproverRoleRequired)
		return
	}

	fieldExecutiveID := chi.URLParam(r, "id")
	if fieldExecutiveID == "" {
		response.BadRequest(w, "Field executive ID is required", nil)
		return
	}

	year, month, ok := yearMonthFromQuery(w, r)
	if !ok {
		return
	}

	overview, err := d.dashboardService.Overview(r.Context(), fieldExecutiveID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
