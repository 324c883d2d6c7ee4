package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrBillAlreadyPaid = errors.New("the bill already has a payment")

type Bill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"not null"`

	// Relations
	Medications []Medication `gorm:"many2many:bill_medications"`
	Payment     *Payment     `gorm:"foreignKey:BillID"`
}

func NewBill(now int64) *Bill {
	return &Bill{ID: uuid.New(), CreatedAt: now}
}

func (b Bill) EntityID() uuid.UUID { return b.ID }

func (b *Bill) AddMedications(medications []*Medication) {
	for _, m := range medications {
		b.Medications = append(b.Medications, *m)
	}
}

func (b *Bill) RemoveMedication(id uuid.UUID) error {
	for i := range b.Medications {
		if b.Medications[i].ID == id {
			b.Medications = append(b.Medications[:i], b.Medications[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("medication %s is not on the bill", id)
}

// AddPaymentToBill links the payment. A bill holds at most one payment.
func (b *Bill) AddPaymentToBill(p *Payment) error {
	if b.Payment != nil {
		return ErrBillAlreadyPaid
	}
	p.BillID = b.ID
	b.Payment = p
	return nil
}
