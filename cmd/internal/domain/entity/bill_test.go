package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillAcceptsAtMostOnePayment(t *testing.T) {
	b := NewBill(testNow)

	first := NewPayment(120.50, "card")
	require.NoError(t, b.AddPaymentToBill(first))
	assert.Equal(t, b.ID, first.BillID)

	err := b.AddPaymentToBill(NewPayment(99.99, "cash"))
	assert.ErrorIs(t, err, ErrBillAlreadyPaid)
	assert.Same(t, first, b.Payment)
}

func TestBillRemoveMedication(t *testing.T) {
	b := NewBill(testNow)
	aspirin := NewMedication("Aspirin", "pill", 10)
	ibuprofen := NewMedication("Ibuprofen", "pill", 4)
	b.AddMedications([]*Medication{aspirin, ibuprofen})

	require.NoError(t, b.RemoveMedication(aspirin.ID))
	require.Len(t, b.Medications, 1)
	assert.Equal(t, ibuprofen.ID, b.Medications[0].ID)

	err := b.RemoveMedication(uuid.New())
	assert.ErrorContains(t, err, "is not on the bill")
}

func TestMedicationUpdateStock(t *testing.T) {
	m := NewMedication("Aspirin", "pill", 2)

	require.NoError(t, m.UpdateStock())
	require.NoError(t, m.UpdateStock())
	assert.Equal(t, 0, m.Stock)

	err := m.UpdateStock()
	assert.EqualError(t, err, "medication Aspirin does not have enough stock")
	assert.Equal(t, 0, m.Stock)
}
