package entity

import "time"

// Patient represents a clinic patient record
type Patient struct {
	ID                    uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName             string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName              string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email                 string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber           string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address               string     `gorm:"type:text" json:"address,omitempty"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	MedicalHistory        string     `gorm:"type:text" json:"medical_history,omitempty"`
	InsuranceProvider     string     `gorm:"type:varchar(50)" json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string     `gorm:"type:varchar(100)" json:"insurance_policy_number,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
