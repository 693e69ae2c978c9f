package entity

import "time"

// Report is a dentist's written record of an appointment
type Report struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	DentistID     uint      `gorm:"not null;index" json:"dentist_id"`
	AppointmentID uint      `gorm:"not null;index" json:"appointment_id"`
	ReportDetails string    `gorm:"type:text;not null" json:"report_details"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist     Dentist     `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
