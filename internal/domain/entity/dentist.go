package entity

import "time"

// Dentist represents a practicing dentist at the clinic
type Dentist struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName     string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Speciality    string    `gorm:"type:varchar(100)" json:"speciality,omitempty"`
	LicenseNumber string    `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Availability []Availability `gorm:"foreignKey:DentistID" json:"availability,omitempty"`
	Appointments []Appointment  `gorm:"foreignKey:DentistID" json:"appointments,omitempty"`
}

func (Dentist) TableName() string {
	return "dentists"
}
