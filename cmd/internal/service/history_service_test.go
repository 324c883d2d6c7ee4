package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydoc/cmd/internal/domain/entity"
	"mydoc/cmd/internal/domain/memory"
)

func TestCreateHistory(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewHistoryService(store, newValidate())
	patient := seedPatient(t, store)
	aspirin := entity.NewMedication("Aspirin", "pill", 5)
	require.NoError(t, store.Medications().Add(ctx, aspirin))

	resp, apierr := svc.CreateHistory(ctx, &CreateHistoryRequest{
		PatientID: patient.ID.String(),
		Dosages: []*HistoryDosageRequest{
			{MedicationID: aspirin.ID.String(), Quantity: 2, Frequency: "daily"},
		},
	})
	require.Nil(t, apierr)
	assert.Equal(t, patient.ID.String(), resp.PatientID)
	require.Len(t, resp.Dosages, 1)

	dosages, apierr := svc.GetMedicationsFromHistory(ctx, uuid.MustParse(resp.ID))
	require.Nil(t, apierr)
	require.Len(t, dosages, 1)
	assert.Equal(t, aspirin.ID.String(), dosages[0].MedicationID)
}

func TestCreateHistoryUnknownMedicationWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewHistoryService(store, newValidate())
	patient := seedPatient(t, store)

	missing := uuid.NewString()
	resp, apierr := svc.CreateHistory(ctx, &CreateHistoryRequest{
		PatientID: patient.ID.String(),
		Dosages: []*HistoryDosageRequest{
			{MedicationID: missing, Quantity: 2, Frequency: "daily"},
		},
	})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())
	assert.EqualError(t, apierr, "Medication with id "+missing+" not found")

	histories, err := store.Histories().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestCreateHistoryUnknownPatient(t *testing.T) {
	svc := NewHistoryService(memory.NewStore(), newValidate())

	resp, apierr := svc.CreateHistory(context.Background(), &CreateHistoryRequest{
		PatientID: uuid.NewString(),
	})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())
	assert.EqualError(t, apierr, "Patient with given id not found")
}
