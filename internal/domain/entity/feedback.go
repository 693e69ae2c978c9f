package entity

import "time"

// Feedback is a patient rating of a completed appointment
type Feedback struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	DentistID     uint      `gorm:"not null;index" json:"dentist_id"`
	AppointmentID uint      `gorm:"not null;index" json:"appointment_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comments      string    `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist     Dentist     `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
