package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/constants"
	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
)

func setupOrderService(t *testing.T) (*WorkOrderService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&models.Workshop{},
		&models.WorkOrder{},
		&models.LineItem{},
	))
	require.NoError(t, db.Create(&models.Workshop{Name: "Atelier Test"}).Error)

	return NewWorkOrderService(repository.NewWorkOrderRepository(db)), db
}

func validInput() CreateWorkOrderInput {
	return CreateWorkOrderInput{
		PlateNumber:  "cj-10-abc",
		VehicleType:  "Dacia Logan",
		MechanicName: "Ion Pop",
		VATRate:      21,
	}
}

func TestCreateWorkOrder_CodesUniqueAcrossManyCreates(t *testing.T) {
	svc, _ := setupOrderService(t)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		order, err := svc.CreateWorkOrder(1, validInput())
		require.NoError(t, err)
		require.Len(t, order.PublicCode, constants.PublicCodeLength)
		for _, r := range order.PublicCode {
			require.True(t, strings.ContainsRune(constants.PublicCodeAlphabet, r))
		}

		_, dup := seen[order.PublicCode]
		require.False(t, dup, "duplicate public code %q", order.PublicCode)
		seen[order.PublicCode] = struct{}{}
	}
}

func TestCreateWorkOrder_ValidationErrors(t *testing.T) {
	svc, _ := setupOrderService(t)

	input := validInput()
	input.PlateNumber = "   "
	_, err := svc.CreateWorkOrder(1, input)
	require.ErrorIs(t, err, ErrPlateRequired)

	input = validInput()
	input.VehicleType = ""
	_, err = svc.CreateWorkOrder(1, input)
	require.ErrorIs(t, err, ErrVehicleTypeRequired)

	input = validInput()
	input.MechanicName = ""
	_, err = svc.CreateWorkOrder(1, input)
	require.ErrorIs(t, err, ErrMechanicNameRequired)

	input = validInput()
	input.DurationHrs = -1
	_, err = svc.CreateWorkOrder(1, input)
	require.ErrorIs(t, err, ErrNegativeDuration)
}

// collidingOrderRepo fails the first inserts with a duplicate-key error,
// standing in for a concurrent create that won the race on the same code.
type collidingOrderRepo struct {
	repository.WorkOrderRepository
	collisions int
	attempts   int
}

func (r *collidingOrderRepo) FindByPublicCode(code string) (*models.WorkOrder, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *collidingOrderRepo) Create(order *models.WorkOrder, items []models.LineItem) error {
	r.attempts++
	if r.attempts <= r.collisions {
		return gorm.ErrDuplicatedKey
	}
	order.ID = uint64(r.attempts)
	return nil
}

func TestCreateWorkOrder_AbsorbsCodeCollisions(t *testing.T) {
	repo := &collidingOrderRepo{collisions: 3}
	svc := NewWorkOrderService(repo)

	order, err := svc.CreateWorkOrder(1, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, order.PublicCode)
	require.Equal(t, 4, repo.attempts)
}

func TestCreateWorkOrder_GivesUpAfterMaxAttempts(t *testing.T) {
	repo := &collidingOrderRepo{collisions: maxCodeAttempts + 1}
	svc := NewWorkOrderService(repo)

	_, err := svc.CreateWorkOrder(1, validInput())
	require.ErrorIs(t, err, ErrCodeIssuanceFailed)
}
