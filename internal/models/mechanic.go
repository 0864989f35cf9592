package models

import "time"

// Mechanic is a roster entry scoped to one workshop. Work orders reference
// mechanics by display name, never by id, so deleting a mechanic leaves
// existing work orders untouched.
type Mechanic struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(120);not null" json:"name"`
	WorkshopID uint64    `gorm:"not null" json:"workshop_id"`
	CreatedAt  time.Time `json:"created_at"`

	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
}
