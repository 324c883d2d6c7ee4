package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type Medication struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"not null"`
	Unit  string    `gorm:"not null"`
	Stock int       `gorm:"not null"`
}

func NewMedication(name, unit string, stock int) *Medication {
	return &Medication{ID: uuid.New(), Name: name, Unit: unit, Stock: stock}
}

func (m Medication) EntityID() uuid.UUID { return m.ID }

// UpdateStock takes one unit off the shelf. Stock never goes negative.
func (m *Medication) UpdateStock() error {
	if m.Stock < 1 {
		return fmt.Errorf("medication %s does not have enough stock", m.Name)
	}
	m.Stock--
	return nil
}

// UpdateMedication copies the scalar fields of other onto the medication.
func (m *Medication) UpdateMedication(other *Medication) {
	m.Name = other.Name
	m.Unit = other.Unit
	m.Stock = other.Stock
}
