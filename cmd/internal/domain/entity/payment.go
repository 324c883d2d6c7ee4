package entity

import (
	"github.com/google/uuid"
)

type Payment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amount float64   `gorm:"not null"`
	Method string    `gorm:"not null"`
	BillID uuid.UUID `gorm:"type:uuid;not null"` // References: bills(id)
}

func NewPayment(amount float64, method string) *Payment {
	return &Payment{ID: uuid.New(), Amount: amount, Method: method}
}

func (p Payment) EntityID() uuid.UUID { return p.ID }

func (p *Payment) AddBillToPayment(b *Bill) {
	p.BillID = b.ID
}
