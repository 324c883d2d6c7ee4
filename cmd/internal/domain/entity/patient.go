package entity

import (
	"errors"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Phone     string    `gorm:"not null"`
	BirthDate int64     `gorm:"not null"`

	// Relations
	Appointments []Appointment `gorm:"foreignKey:PatientID"`
	Histories    []History     `gorm:"foreignKey:PatientID"`
}

func NewPatient(firstName, lastName, email, phone string, birthDate int64) *Patient {
	return &Patient{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		BirthDate: birthDate,
	}
}

func (p Patient) EntityID() uuid.UUID { return p.ID }

// AddAppointment binds the appointment to the patient, rejecting intervals
// that overlap an appointment the patient already has.
func (p *Patient) AddAppointment(a *Appointment) error {
	for i := range p.Appointments {
		if p.Appointments[i].Overlaps(a) {
			return errors.New("patient is not available in the given interval")
		}
	}
	a.PatientID = p.ID
	p.Appointments = append(p.Appointments, *a)
	return nil
}
