package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/dmstancu/workshop-api/internal/errors"
	"github.com/dmstancu/workshop-api/internal/middleware"
	"github.com/dmstancu/workshop-api/internal/services"
)

// DashboardHandler exposes the aggregated metrics endpoint.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardData aggregates the caller workshop's work orders over the
// optional mechanics/status/start/end filters. Set filters arrive as
// comma-separated values; unparseable dates drop that filter.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	filters := services.DashboardFilters{
		MechanicNames: splitCSV(c.Query("mechanics")),
		Statuses:      splitCSV(c.Query("status")),
		Start:         c.Query("start"),
		End:           c.Query("end"),
	}

	data, err := h.dashboardService.Query(workshopID, filters)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, data)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
