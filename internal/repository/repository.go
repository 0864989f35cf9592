package repository

import (
	"time"

	"github.com/dmstancu/workshop-api/internal/models"
)

// WorkOrderFilter holds the dashboard filter dimensions. Filters are ANDed
// across dimensions; values inside a set are ORed. A nil/empty field means
// the dimension is not filtered.
type WorkOrderFilter struct {
	WorkshopID    uint64
	MechanicNames []string
	Statuses      []string
	DataFrom      *time.Time
	DataTo        *time.Time // exclusive upper bound
}

// WorkOrderRepository defines the interface for work order data access
type WorkOrderRepository interface {
	// Create inserts a work order and its line items in one transaction.
	// A public-code collision is reported as gorm.ErrDuplicatedKey.
	Create(order *models.WorkOrder, items []models.LineItem) error

	// FindOwned finds a work order by id scoped to one workshop.
	FindOwned(workshopID, id uint64, preload ...string) (*models.WorkOrder, error)

	// FindByPublicCode finds a work order by tracking code regardless of
	// tenant, with its line items.
	FindByPublicCode(code string) (*models.WorkOrder, error)

	// ListByWorkshop lists a workshop's work orders, most recent first.
	ListByWorkshop(workshopID uint64) ([]models.WorkOrder, error)

	// Query returns the work orders matching the dashboard filter.
	Query(filter WorkOrderFilter) ([]models.WorkOrder, error)

	// Delete removes a work order and all of its line items atomically.
	Delete(id uint64) error
}

// MechanicRepository defines the interface for roster data access
type MechanicRepository interface {
	Create(mechanic *models.Mechanic) error

	// FindOwned finds a mechanic by id scoped to one workshop. A mechanic
	// belonging to another workshop is reported as not found.
	FindOwned(workshopID, id uint64) (*models.Mechanic, error)

	ListByWorkshop(workshopID uint64) ([]models.Mechanic, error)

	Delete(id uint64) error
}

// WorkshopRepository defines the interface for tenant registry data access
type WorkshopRepository interface {
	// Create inserts a workshop. A name collision is reported as
	// gorm.ErrDuplicatedKey.
	Create(workshop *models.Workshop) error

	FindByID(id uint64) (*models.Workshop, error)

	List() ([]models.Workshop, error)

	Update(workshop *models.Workshop) error

	// Counts returns the workshop and user totals for the admin overview.
	Counts() (workshops int64, users int64, err error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a user. A username collision is reported as
	// gorm.ErrDuplicatedKey.
	Create(user *models.User) error

	FindByID(id uint64) (*models.User, error)

	FindByUsername(username string) (*models.User, error)
}
