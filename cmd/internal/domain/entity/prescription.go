package entity

import (
	"github.com/google/uuid"
)

type Prescription struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"not null"`

	// Relations
	Dosages []MedicationDosage `gorm:"foreignKey:PrescriptionID"`
}

// MedicationDosage is one line of a prescription: which medication,
// how much of it, and how often.
type MedicationDosage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;not null"`
	MedicationID   uuid.UUID `gorm:"type:uuid;not null"` // References: medications(id)
	Quantity       int       `gorm:"not null"`
	Frequency      string    `gorm:"not null"`
}

func NewPrescription(now int64) *Prescription {
	return &Prescription{ID: uuid.New(), CreatedAt: now}
}

func (p Prescription) EntityID() uuid.UUID     { return p.ID }
func (d MedicationDosage) EntityID() uuid.UUID { return d.ID }

func (p *Prescription) AddDosage(medicationID uuid.UUID, quantity int, frequency string) {
	p.Dosages = append(p.Dosages, MedicationDosage{
		ID:             uuid.New(),
		PrescriptionID: p.ID,
		MedicationID:   medicationID,
		Quantity:       quantity,
		Frequency:      frequency,
	})
}
