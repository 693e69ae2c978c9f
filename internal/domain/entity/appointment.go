package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// TreatmentType enumerates the treatments the clinic offers
type TreatmentType string

const (
	TreatmentCleaning   TreatmentType = "cleaning"
	TreatmentFilling    TreatmentType = "filling"
	TreatmentExtraction TreatmentType = "extraction"
	TreatmentRootCanal  TreatmentType = "root_canal"
)

// Appointment links a patient and a dentist at a date and time
type Appointment struct {
	ID            uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uint                `gorm:"not null;index" json:"patient_id"`
	DentistID     uint                `gorm:"not null;index" json:"dentist_id"`
	Date          time.Time           `gorm:"type:date;not null" json:"date"`
	Time          string              `gorm:"type:time;not null" json:"time"`
	Status        AppointmentStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TreatmentType TreatmentType       `gorm:"type:varchar(30);not null" json:"treatment_type"`
	Notes         string              `gorm:"type:text" json:"notes,omitempty"`
	Cost          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost,omitempty"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist Dentist `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsValidAppointmentStatus reports whether the string is a known status.
func IsValidAppointmentStatus(status string) bool {
	switch AppointmentStatus(status) {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}
