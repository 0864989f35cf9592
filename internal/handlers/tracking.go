package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmstancu/workshop-api/internal/dto"
	apierrors "github.com/dmstancu/workshop-api/internal/errors"
	"github.com/dmstancu/workshop-api/internal/services"
)

// TrackingHandler serves the public client view of a work order. No session
// is required: the tracking code itself is the capability.
type TrackingHandler struct {
	trackingService *services.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// Lookup returns the work order carrying the code, with computed per-line
// totals, regardless of which workshop owns it.
func (h *TrackingHandler) Lookup(c *gin.Context) {
	order, err := h.trackingService.Lookup(c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTrackingCodeRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrWorkOrderNotFound):
			apierrors.NotFound(c, "Cod invalid sau fișa nu există")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTrackingDTO(*order))
}
