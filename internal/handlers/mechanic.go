package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/dmstancu/workshop-api/internal/errors"
	"github.com/dmstancu/workshop-api/internal/middleware"
	"github.com/dmstancu/workshop-api/internal/services"
)

// MechanicHandler exposes the workshop roster.
type MechanicHandler struct {
	rosterService *services.RosterService
}

// NewMechanicHandler creates a new MechanicHandler.
func NewMechanicHandler(rosterService *services.RosterService) *MechanicHandler {
	return &MechanicHandler{rosterService: rosterService}
}

// ListMechanics returns the caller workshop's roster.
func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	mechanics, err := h.rosterService.ListMechanics(workshopID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"mechanics": mechanics})
}

// AddMechanic adds a mechanic to the roster. A blank name is ignored
// without error.
func (h *MechanicHandler) AddMechanic(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type AddMechanicRequest struct {
		Name string `json:"name"`
	}

	var req AddMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	mechanic, err := h.rosterService.AddMechanic(workshopID, req.Name)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if mechanic == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to add"})
		return
	}

	c.JSON(http.StatusCreated, mechanic)
}

// RemoveMechanic deletes a mechanic owned by the caller's workshop.
func (h *MechanicHandler) RemoveMechanic(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	mechanicID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid mechanic ID")
		return
	}

	if err := h.rosterService.RemoveMechanic(workshopID, mechanicID); err != nil {
		if errors.Is(err, services.ErrMechanicNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mechanic removed"})
}
