package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
)

var ErrMechanicNotFound = errors.New("mechanic not found")

// RosterService manages the per-workshop mechanic roster.
type RosterService struct {
	mechanicRepo repository.MechanicRepository
}

// NewRosterService creates a new RosterService.
func NewRosterService(mechanicRepo repository.MechanicRepository) *RosterService {
	return &RosterService{mechanicRepo: mechanicRepo}
}

// AddMechanic adds a mechanic to the workshop's roster. A blank name is
// silently ignored rather than rejected, matching the lenient intake
// behavior of the roster form.
func (s *RosterService) AddMechanic(workshopID uint64, name string) (*models.Mechanic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	mechanic := &models.Mechanic{
		Name:       name,
		WorkshopID: workshopID,
	}
	if err := s.mechanicRepo.Create(mechanic); err != nil {
		return nil, fmt.Errorf("failed to create mechanic: %w", err)
	}

	return mechanic, nil
}

// ListMechanics returns the workshop's roster.
func (s *RosterService) ListMechanics(workshopID uint64) ([]models.Mechanic, error) {
	mechanics, err := s.mechanicRepo.ListByWorkshop(workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}
	return mechanics, nil
}

// RemoveMechanic deletes a mechanic only if it belongs to the caller's
// workshop. An id owned by another workshop reads as not found, so ids
// cannot be probed across tenants. Work orders keep the mechanic's name.
func (s *RosterService) RemoveMechanic(workshopID, mechanicID uint64) error {
	mechanic, err := s.mechanicRepo.FindOwned(workshopID, mechanicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMechanicNotFound
		}
		return fmt.Errorf("failed to find mechanic: %w", err)
	}

	if err := s.mechanicRepo.Delete(mechanic.ID); err != nil {
		return fmt.Errorf("failed to delete mechanic: %w", err)
	}

	return nil
}
