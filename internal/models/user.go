package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	WorkshopID   uint64    `gorm:"not null" json:"workshop_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
}

// IsAdmin reports whether the user holds the cross-tenant admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
