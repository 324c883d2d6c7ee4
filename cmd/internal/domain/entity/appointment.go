package entity

import (
	"errors"

	"github.com/google/uuid"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartsAt  int64     `gorm:"not null"`
	EndsAt    int64     `gorm:"not null"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null"` // References: doctors(id)
	PatientID uuid.UUID `gorm:"type:uuid;not null"` // References: patients(id)
	CreatedAt int64     `gorm:"not null"`
	UpdatedAt int64     `gorm:"not null"`
}

func NewAppointment(startsAt, endsAt, now int64) (*Appointment, error) {
	if endsAt <= startsAt {
		return nil, errors.New("appointment must end after it starts")
	}
	if startsAt <= now {
		return nil, errors.New("appointment must start in the future")
	}
	return &Appointment{
		ID:        uuid.New(),
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (a Appointment) EntityID() uuid.UUID { return a.ID }

func (a *Appointment) Overlaps(other *Appointment) bool {
	return a.StartsAt < other.EndsAt && a.EndsAt > other.StartsAt
}
