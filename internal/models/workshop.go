package models

import "time"

// Workshop is a tenant. All users, mechanics and work orders belong to
// exactly one workshop.
type Workshop struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	BrandingColor string    `gorm:"type:varchar(20);default:'#2563eb'" json:"branding_color"`
	LogoPath      string    `gorm:"type:varchar(255)" json:"logo_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Users      []User      `gorm:"foreignKey:WorkshopID" json:"-"`
	Mechanics  []Mechanic  `gorm:"foreignKey:WorkshopID" json:"-"`
	WorkOrders []WorkOrder `gorm:"foreignKey:WorkshopID" json:"-"`
}
