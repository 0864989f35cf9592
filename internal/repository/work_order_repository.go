package repository

import (
	"github.com/dmstancu/workshop-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkOrderRepository is a GORM implementation of WorkOrderRepository
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new WorkOrderRepository
func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// Create inserts the work order and its line items atomically. The unique
// index on public_code is the correctness backstop for code issuance: a
// concurrent insert racing on the same candidate code fails here with
// gorm.ErrDuplicatedKey and the caller retries with a fresh code.
func (r *GormWorkOrderRepository) Create(order *models.WorkOrder, items []models.LineItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].WorkOrderID = order.ID
		}
		return tx.Create(&items).Error
	})
}

// FindOwned finds a work order by id within one workshop. Ownership is part
// of the lookup itself, so a foreign tenant's id probe reads as not found.
func (r *GormWorkOrderRepository) FindOwned(workshopID, id uint64, preload ...string) (*models.WorkOrder, error) {
	var order models.WorkOrder
	query := r.db.Where("workshop_id = ?", workshopID)
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByPublicCode finds a work order by tracking code regardless of tenant
func (r *GormWorkOrderRepository) FindByPublicCode(code string) (*models.WorkOrder, error) {
	var order models.WorkOrder
	if err := r.db.Preload("Items").Where("public_code = ?", code).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByWorkshop lists a workshop's work orders ordered by id descending
func (r *GormWorkOrderRepository) ListByWorkshop(workshopID uint64) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	if err := r.db.Where("workshop_id = ?", workshopID).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Query returns work orders matching the dashboard filter
func (r *GormWorkOrderRepository) Query(filter WorkOrderFilter) ([]models.WorkOrder, error) {
	query := r.db.Model(&models.WorkOrder{}).Where("workshop_id = ?", filter.WorkshopID)

	if len(filter.MechanicNames) > 0 {
		query = query.Where("mechanic_name IN ?", filter.MechanicNames)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.DataFrom != nil {
		query = query.Where("data >= ?", *filter.DataFrom)
	}
	if filter.DataTo != nil {
		query = query.Where("data < ?", *filter.DataTo)
	}

	var orders []models.WorkOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes a work order and its line items in one transaction so no
// orphan line item can ever exist.
func (r *GormWorkOrderRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_id = ?", id).Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.WorkOrder{}, id).Error
	})
}
