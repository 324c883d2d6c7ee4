package entity

import (
	"github.com/google/uuid"
)

type Hospital struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null"`
	Address string    `gorm:"not null"`
	Phone   string    `gorm:"not null"`

	// Relations
	Doctors []Doctor `gorm:"foreignKey:HospitalID"`
}

func NewHospital(name, address, phone string) *Hospital {
	return &Hospital{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
		Phone:   phone,
	}
}

func (h Hospital) EntityID() uuid.UUID { return h.ID }

// AddDoctors links a batch of doctors to the hospital. The whole batch is
// validated first; if any doctor is invalid, no doctor is linked.
func (h *Hospital) AddDoctors(doctors []*Doctor) error {
	for _, d := range doctors {
		if err := d.CheckFields(); err != nil {
			return err
		}
	}
	for _, d := range doctors {
		d.HospitalID = h.ID
		h.Doctors = append(h.Doctors, *d)
	}
	return nil
}
