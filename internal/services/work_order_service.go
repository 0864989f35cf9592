package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
	"github.com/dmstancu/workshop-api/internal/utils"
)

var (
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrPlateRequired        = errors.New("plate number is required")
	ErrVehicleTypeRequired  = errors.New("vehicle type is required")
	ErrMechanicNameRequired = errors.New("mechanic name is required")
	ErrNegativeDuration     = errors.New("duration cannot be negative")
	ErrCodeIssuanceFailed   = errors.New("failed to issue a unique public code")
)

// maxCodeAttempts bounds the issuance retry loop. With an 8-character
// alphanumeric code the chance of even one collision is astronomically
// small; the loop exists for correctness, not likelihood.
const maxCodeAttempts = 10

// WorkOrderService manages work orders and their line items.
type WorkOrderService struct {
	orderRepo repository.WorkOrderRepository
}

// NewWorkOrderService creates a new WorkOrderService.
func NewWorkOrderService(orderRepo repository.WorkOrderRepository) *WorkOrderService {
	return &WorkOrderService{orderRepo: orderRepo}
}

// LineItemInput is one billed component of a new work order.
type LineItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   int64
}

// CreateWorkOrderInput carries caller-supplied work order fields. The three
// monetary totals are trusted verbatim and not recomputed from line items.
type CreateWorkOrderInput struct {
	PlateNumber  string
	VehicleType  string
	MechanicName string
	Description  string
	ClientName   string
	ClientPhone  string
	DurationHrs  float64
	Status       string
	VATRate      int
	TotalNet     int64
	VATAmount    int64
	TotalGross   int64
	Items        []LineItemInput
}

// CreateWorkOrder normalizes and stores a new work order under the caller's
// workshop, issuing a globally unique public tracking code.
//
// Code issuance: generate a candidate, re-roll while a work order with that
// code already exists, then insert. The pre-check is an optimization only;
// the unique index on public_code closes the check-then-insert race, and an
// insert that trips it is retried with a fresh code. A collision never
// surfaces to the caller.
func (s *WorkOrderService) CreateWorkOrder(workshopID uint64, input CreateWorkOrderInput) (*models.WorkOrder, error) {
	plate := strings.ToUpper(strings.TrimSpace(input.PlateNumber))
	if plate == "" {
		return nil, ErrPlateRequired
	}
	vehicleType := strings.TrimSpace(input.VehicleType)
	if vehicleType == "" {
		return nil, ErrVehicleTypeRequired
	}
	mechanicName := strings.TrimSpace(input.MechanicName)
	if mechanicName == "" {
		return nil, ErrMechanicNameRequired
	}
	if input.DurationHrs < 0 {
		return nil, ErrNegativeDuration
	}

	order := &models.WorkOrder{
		Data:         time.Now().UTC(),
		PlateNumber:  plate,
		VehicleType:  vehicleType,
		MechanicName: mechanicName,
		Description:  input.Description,
		ClientName:   input.ClientName,
		ClientPhone:  input.ClientPhone,
		DurationHrs:  input.DurationHrs,
		Status:       models.NormalizeStatus(models.WorkOrderStatus(input.Status)),
		VATRate:      input.VATRate,
		TotalNet:     input.TotalNet,
		VATAmount:    input.VATAmount,
		TotalGross:   input.TotalGross,
		WorkshopID:   workshopID,
	}

	items := make([]models.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1.0
		}
		items = append(items, models.LineItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := utils.GeneratePublicCode()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCodeIssuanceFailed, err)
		}

		if _, err := s.orderRepo.FindByPublicCode(code); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check public code: %w", err)
		}

		order.PublicCode = code
		err = s.orderRepo.Create(order, items)
		if err == nil {
			order.Items = items
			return order, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race on this candidate code; try a fresh one.
			order.ID = 0
			continue
		}
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	return nil, ErrCodeIssuanceFailed
}

// ListWorkOrders returns the workshop's work orders, most recent first.
func (s *WorkOrderService) ListWorkOrders(workshopID uint64) ([]models.WorkOrder, error) {
	orders, err := s.orderRepo.ListByWorkshop(workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	return orders, nil
}

// GetWorkOrder returns one work order with its line items, scoped to the
// caller's workshop. Another tenant's order reads as not found.
func (s *WorkOrderService) GetWorkOrder(workshopID, id uint64) (*models.WorkOrder, error) {
	order, err := s.orderRepo.FindOwned(workshopID, id, "Items")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}
	return order, nil
}

// DeleteWorkOrder removes a work order and all of its line items.
func (s *WorkOrderService) DeleteWorkOrder(workshopID, id uint64) error {
	order, err := s.orderRepo.FindOwned(workshopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkOrderNotFound
		}
		return fmt.Errorf("failed to find work order: %w", err)
	}

	if err := s.orderRepo.Delete(order.ID); err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}

	return nil
}
