package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
)

var ErrTrackingCodeRequired = errors.New("tracking code is required")

// TrackingService is the public, tenant-unscoped lookup of a work order by
// its tracking code. Possession of the code is the only access control.
type TrackingService struct {
	orderRepo repository.WorkOrderRepository
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(orderRepo repository.WorkOrderRepository) *TrackingService {
	return &TrackingService{orderRepo: orderRepo}
}

// Lookup returns the work order carrying the given code, with line items.
// The code is trimmed and uppercased before the lookup.
func (s *TrackingService) Lookup(code string) (*models.WorkOrder, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrTrackingCodeRequired
	}

	order, err := s.orderRepo.FindByPublicCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to find work order by code: %w", err)
	}

	return order, nil
}
