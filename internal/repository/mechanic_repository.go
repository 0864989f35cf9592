package repository

import (
	"github.com/dmstancu/workshop-api/internal/models"
	"gorm.io/gorm"
)

// GormMechanicRepository is a GORM implementation of MechanicRepository
type GormMechanicRepository struct {
	db *gorm.DB
}

// NewMechanicRepository creates a new MechanicRepository
func NewMechanicRepository(db *gorm.DB) MechanicRepository {
	return &GormMechanicRepository{db: db}
}

// Create creates a new mechanic
func (r *GormMechanicRepository) Create(mechanic *models.Mechanic) error {
	return r.db.Create(mechanic).Error
}

// FindOwned finds a mechanic by id scoped to one workshop
func (r *GormMechanicRepository) FindOwned(workshopID, id uint64) (*models.Mechanic, error) {
	var mechanic models.Mechanic
	if err := r.db.Where("workshop_id = ?", workshopID).First(&mechanic, id).Error; err != nil {
		return nil, err
	}
	return &mechanic, nil
}

// ListByWorkshop lists all mechanics of a workshop
func (r *GormMechanicRepository) ListByWorkshop(workshopID uint64) ([]models.Mechanic, error) {
	var mechanics []models.Mechanic
	if err := r.db.Where("workshop_id = ?", workshopID).Find(&mechanics).Error; err != nil {
		return nil, err
	}
	return mechanics, nil
}

// Delete removes a mechanic
func (r *GormMechanicRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Mechanic{}, id).Error
}
