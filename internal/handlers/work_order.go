package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmstancu/workshop-api/internal/constants"
	apierrors "github.com/dmstancu/workshop-api/internal/errors"
	"github.com/dmstancu/workshop-api/internal/logger"
	"github.com/dmstancu/workshop-api/internal/middleware"
	"github.com/dmstancu/workshop-api/internal/services"
)

// WorkOrderHandler exposes work order CRUD and the PDF export.
type WorkOrderHandler struct {
	orderService  *services.WorkOrderService
	exportService *services.ExportService
}

// NewWorkOrderHandler creates a new WorkOrderHandler.
func NewWorkOrderHandler(orderService *services.WorkOrderService, exportService *services.ExportService) *WorkOrderHandler {
	return &WorkOrderHandler{
		orderService:  orderService,
		exportService: exportService,
	}
}

type lineItemRequest struct {
	Description string  `json:"descriere" binding:"required"`
	Quantity    float64 `json:"cantitate"`
	UnitPrice   int64   `json:"pret_unitar"`
}

type createWorkOrderRequest struct {
	PlateNumber  string            `json:"nr_inmatriculare" binding:"required"`
	VehicleType  string            `json:"tip_auto" binding:"required"`
	MechanicName string            `json:"nume_mecanic" binding:"required"`
	Description  string            `json:"descriere_generala"`
	ClientName   string            `json:"client_nume"`
	ClientPhone  string            `json:"client_telefon"`
	DurationHrs  float64           `json:"durata_ore"`
	Status       string            `json:"status"`
	VATRate      *int              `json:"vat_rate"`
	TotalNet     int64             `json:"total_net"`
	VATAmount    int64             `json:"vat_amount"`
	TotalGross   int64             `json:"total_gross"`
	Items        []lineItemRequest `json:"articole"`
}

// CreateWorkOrder creates a work order under the caller's workshop. A
// non-numeric value in any numeric field fails JSON binding and rejects
// the whole request.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req createWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	vatRate := constants.DefaultVATRate
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}

	items := make([]services.LineItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = services.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	order, err := h.orderService.CreateWorkOrder(workshopID, services.CreateWorkOrderInput{
		PlateNumber:  req.PlateNumber,
		VehicleType:  req.VehicleType,
		MechanicName: req.MechanicName,
		Description:  req.Description,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		DurationHrs:  req.DurationHrs,
		Status:       req.Status,
		VATRate:      vatRate,
		TotalNet:     req.TotalNet,
		VATAmount:    req.VATAmount,
		TotalGross:   req.TotalGross,
		Items:        items,
	})
	if err != nil {
		respondWorkOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListWorkOrders lists the caller workshop's work orders, newest first.
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	orders, err := h.orderService.ListWorkOrders(workshopID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fise": orders})
}

// GetWorkOrder returns one work order with its line items.
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid work order ID")
		return
	}

	order, err := h.orderService.GetWorkOrder(workshopID, orderID)
	if err != nil {
		respondWorkOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteWorkOrder removes a work order and its line items.
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid work order ID")
		return
	}

	if err := h.orderService.DeleteWorkOrder(workshopID, orderID); err != nil {
		respondWorkOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Work order deleted"})
}

// ExportWorkOrderPDF streams the work order as an inline PDF document.
func (h *WorkOrderHandler) ExportWorkOrderPDF(c *gin.Context) {
	workshopID, exists := middleware.GetWorkshopID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid work order ID")
		return
	}

	order, err := h.orderService.GetWorkOrder(workshopID, orderID)
	if err != nil {
		respondWorkOrderError(c, err)
		return
	}

	pdfBytes, filename, err := h.exportService.RenderWorkOrderPDF(order)
	if err != nil {
		logger.Get().WithError(err).Error("PDF export failed")
		apierrors.ServiceUnavailable(c, "Document export is unavailable")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func respondWorkOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkOrderNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPlateRequired),
		errors.Is(err, services.ErrVehicleTypeRequired),
		errors.Is(err, services.ErrMechanicNameRequired),
		errors.Is(err, services.ErrNegativeDuration):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
