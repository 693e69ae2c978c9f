package entity

import "time"

// Availability is one recurring working window for a dentist.
// Invariant: StartTime strictly precedes EndTime.
type Availability struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DentistID uint      `gorm:"not null;index" json:"dentist_id"`
	DayOfWeek string    `gorm:"type:varchar(20);not null" json:"day_of_week"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	// Relationships
	Dentist Dentist `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
}

func (Availability) TableName() string {
	return "availability"
}
