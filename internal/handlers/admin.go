package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/dmstancu/workshop-api/internal/errors"
	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/services"
	"github.com/dmstancu/workshop-api/internal/storage"
)

// AdminHandler exposes the cross-tenant registry operations: workshop
// creation, branding and user provisioning. All routes sit behind the
// admin role check.
type AdminHandler struct {
	workshopService *services.WorkshopService
	authService     *services.AuthService
	logoStore       *storage.LogoStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(workshopService *services.WorkshopService, authService *services.AuthService, logoStore *storage.LogoStore) *AdminHandler {
	return &AdminHandler{
		workshopService: workshopService,
		authService:     authService,
		logoStore:       logoStore,
	}
}

// ListWorkshops returns every registered workshop.
func (h *AdminHandler) ListWorkshops(c *gin.Context) {
	workshops, err := h.workshopService.ListWorkshops()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workshops": workshops})
}

// CreateWorkshop registers a new tenant.
func (h *AdminHandler) CreateWorkshop(c *gin.Context) {
	type CreateWorkshopRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	workshop, err := h.workshopService.CreateWorkshop(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWorkshopNameEmpty):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrWorkshopNameTaken):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, workshop)
}

// UpdateBranding updates a workshop's branding color and optional logo.
// Multipart form: "branding_color" field plus an optional "logo" file whose
// extension must be one of the accepted image formats.
func (h *AdminHandler) UpdateBranding(c *gin.Context) {
	workshopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid workshop ID")
		return
	}

	input := services.UpdateBrandingInput{
		Color: c.PostForm("branding_color"),
	}

	if fileHeader, err := c.FormFile("logo"); err == nil && fileHeader.Filename != "" {
		src, err := fileHeader.Open()
		if err != nil {
			apierrors.InternalError(c, "Failed to read uploaded logo")
			return
		}
		defer src.Close()

		ref, err := h.logoStore.Save(workshopID, fileHeader.Filename, src)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedFormat) {
				apierrors.BadRequest(c, "Format invalid. Folosește PNG/JPG/SVG/WebP")
				return
			}
			apierrors.InternalError(c, "Failed to store logo")
			return
		}
		input.LogoRef = ref
	}

	workshop, err := h.workshopService.UpdateBranding(workshopID, input)
	if err != nil {
		if errors.Is(err, services.ErrWorkshopNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, workshop)
}

// ProvisionUser creates a user inside an existing workshop.
func (h *AdminHandler) ProvisionUser(c *gin.Context) {
	type ProvisionUserRequest struct {
		Username   string `json:"username" binding:"required,min=3,max=50"`
		Password   string `json:"password" binding:"required"`
		Role       string `json:"role"`
		WorkshopID uint64 `json:"workshop_id" binding:"required"`
	}

	var req ProvisionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.ProvisionUser(services.ProvisionUserInput{
		Username:   req.Username,
		Password:   req.Password,
		Role:       models.UserRole(req.Role),
		WorkshopID: req.WorkshopID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameRequired),
			errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUsernameTaken):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrWorkshopNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Stats returns the registry totals for the admin overview page.
func (h *AdminHandler) Stats(c *gin.Context) {
	workshops, users, err := h.workshopService.Stats()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workshop_count": workshops,
		"user_count":     users,
	})
}
