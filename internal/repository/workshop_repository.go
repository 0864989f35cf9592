package repository

import (
	"github.com/dmstancu/workshop-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkshopRepository is a GORM implementation of WorkshopRepository
type GormWorkshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository creates a new WorkshopRepository
func NewWorkshopRepository(db *gorm.DB) WorkshopRepository {
	return &GormWorkshopRepository{db: db}
}

// Create creates a new workshop
func (r *GormWorkshopRepository) Create(workshop *models.Workshop) error {
	return r.db.Create(workshop).Error
}

// FindByID finds a workshop by ID
func (r *GormWorkshopRepository) FindByID(id uint64) (*models.Workshop, error) {
	var workshop models.Workshop
	if err := r.db.First(&workshop, id).Error; err != nil {
		return nil, err
	}
	return &workshop, nil
}

// List lists all workshops
func (r *GormWorkshopRepository) List() ([]models.Workshop, error) {
	var workshops []models.Workshop
	if err := r.db.Order("id ASC").Find(&workshops).Error; err != nil {
		return nil, err
	}
	return workshops, nil
}

// Update updates a workshop
func (r *GormWorkshopRepository) Update(workshop *models.Workshop) error {
	return r.db.Save(workshop).Error
}

// Counts returns workshop and user totals
func (r *GormWorkshopRepository) Counts() (int64, int64, error) {
	var workshops, users int64
	if err := r.db.Model(&models.Workshop{}).Count(&workshops).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&models.User{}).Count(&users).Error; err != nil {
		return 0, 0, err
	}
	return workshops, users, nil
}
