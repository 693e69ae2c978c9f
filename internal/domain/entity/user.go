package entity

import "time"

// UserRole determines what a logged-in account is allowed to manage.
type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDentist UserRole = "dentist"
	RoleAdmin   UserRole = "admin"
)

// User represents the centralized authentication table
type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"type:text;not null" json:"-"`
	Role           UserRole  `gorm:"type:varchar(20);not null;default:'patient';index" json:"role"`
	IsActive       *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Notifications []Notification `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsValidRole reports whether the given string is a known user role.
func IsValidRole(role string) bool {
	switch UserRole(role) {
	case RolePatient, RoleDentist, RoleAdmin:
		return true
	}
	return false
}
