package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/constants"
	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
)

var (
	ErrWorkshopNotFound  = errors.New("workshop not found")
	ErrWorkshopNameEmpty = errors.New("workshop name cannot be empty")
	ErrWorkshopNameTaken = errors.New("workshop name already exists")
)

// WorkshopService provides the tenant registry operations. Workshops are
// never deleted once created.
type WorkshopService struct {
	workshopRepo repository.WorkshopRepository
}

// NewWorkshopService creates a new WorkshopService.
func NewWorkshopService(workshopRepo repository.WorkshopRepository) *WorkshopService {
	return &WorkshopService{workshopRepo: workshopRepo}
}

// CreateWorkshop registers a new tenant.
func (s *WorkshopService) CreateWorkshop(name string) (*models.Workshop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrWorkshopNameEmpty
	}

	workshop := &models.Workshop{
		Name:          name,
		BrandingColor: constants.DefaultBrandingColor,
	}

	if err := s.workshopRepo.Create(workshop); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWorkshopNameTaken
		}
		return nil, fmt.Errorf("failed to create workshop: %w", err)
	}

	return workshop, nil
}

// ListWorkshops returns all workshops.
func (s *WorkshopService) ListWorkshops() ([]models.Workshop, error) {
	workshops, err := s.workshopRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}
	return workshops, nil
}

// UpdateBrandingInput carries the mutable branding fields. Empty values
// leave the stored field unchanged; LogoRef is produced by the file-storage
// boundary, never by the client directly.
type UpdateBrandingInput struct {
	Color   string
	LogoRef string
}

// UpdateBranding mutates a workshop's branding fields.
func (s *WorkshopService) UpdateBranding(id uint64, input UpdateBrandingInput) (*models.Workshop, error) {
	workshop, err := s.workshopRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("failed to find workshop: %w", err)
	}

	if color := strings.TrimSpace(input.Color); color != "" {
		workshop.BrandingColor = color
	} else if workshop.BrandingColor == "" {
		workshop.BrandingColor = constants.DefaultBrandingColor
	}
	if input.LogoRef != "" {
		workshop.LogoPath = input.LogoRef
	}

	if err := s.workshopRepo.Update(workshop); err != nil {
		return nil, fmt.Errorf("failed to update workshop: %w", err)
	}

	return workshop, nil
}

// Stats returns the registry totals shown on the admin overview.
func (s *WorkshopService) Stats() (workshops int64, users int64, err error) {
	workshops, users, err = s.workshopRepo.Counts()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count registry entries: %w", err)
	}
	return workshops, users, nil
}
