package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/constants"
	"github.com/dmstancu/workshop-api/internal/logger"
	"github.com/dmstancu/workshop-api/internal/models"
)

// Seed creates the demo workshop, admin user and mechanic if they do not
// exist yet. Idempotent: safe to run on every startup.
func Seed() error {
	var ws models.Workshop
	err := DB.Where("name = ?", "Atelier Demo").First(&ws).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ws = models.Workshop{Name: "Atelier Demo", BrandingColor: constants.DefaultBrandingColor}
		if err := DB.Create(&ws).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var user models.User
	err = DB.Where("username = ?", "demo").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = models.User{
			Username:     "demo",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			WorkshopID:   ws.ID,
		}
		if err := DB.Create(&user).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var count int64
	if err := DB.Model(&models.Mechanic{}).Where("workshop_id = ?", ws.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := DB.Create(&models.Mechanic{Name: "Mecanic Demo", WorkshopID: ws.ID}).Error; err != nil {
			return err
		}
	}

	logger.Get().Info("Demo data seeded")
	return nil
}
