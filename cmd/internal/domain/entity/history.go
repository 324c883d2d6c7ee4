package entity

import (
	"github.com/google/uuid"
)

type History struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID uuid.UUID `gorm:"type:uuid;not null"` // References: patients(id)
	CreatedAt int64     `gorm:"not null"`

	// Relations
	Dosages []MedicationDosageHistory `gorm:"foreignKey:HistoryID"`
}

// MedicationDosageHistory records a medication the patient has taken,
// with the dosage it was taken at.
type MedicationDosageHistory struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	HistoryID    uuid.UUID `gorm:"type:uuid;not null"`
	MedicationID uuid.UUID `gorm:"type:uuid;not null"` // References: medications(id)
	Quantity     int       `gorm:"not null"`
	Frequency    string    `gorm:"not null"`
}

func NewHistory(now int64) *History {
	return &History{ID: uuid.New(), CreatedAt: now}
}

func (h History) EntityID() uuid.UUID                 { return h.ID }
func (d MedicationDosageHistory) EntityID() uuid.UUID { return d.ID }

func (h *History) AddPatientToHistory(p *Patient) {
	h.PatientID = p.ID
}

func (h *History) AddDosage(medicationID uuid.UUID, quantity int, frequency string) {
	h.Dosages = append(h.Dosages, MedicationDosageHistory{
		ID:           uuid.New(),
		HistoryID:    h.ID,
		MedicationID: medicationID,
		Quantity:     quantity,
		Frequency:    frequency,
	})
}
