package command

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydoc/cmd/internal/domain/entity"
	"mydoc/cmd/internal/domain/memory"
)

func TestCreatePrescriptionHandler(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	aspirin := entity.NewMedication("Aspirin", "pill", 5)
	require.NoError(t, store.Medications().Add(ctx, aspirin))

	h := &CreatePrescriptionHandler{Store: store, Validate: newValidate()}
	resp, apierr := h.Handle(ctx, &CreatePrescriptionCommand{
		Dosages: []*PrescriptionDosage{
			{MedicationID: aspirin.ID.String(), Quantity: 2, Frequency: "daily"},
		},
	})
	require.Nil(t, apierr)
	require.Len(t, resp.Dosages, 1)
	assert.Equal(t, aspirin.ID.String(), resp.Dosages[0].MedicationID)

	list := &ListPrescriptionDosagesHandler{Store: store}
	dosages, apierr := list.Handle(ctx, &ListPrescriptionDosagesQuery{PrescriptionID: uuid.MustParse(resp.ID)})
	require.Nil(t, apierr)
	assert.Len(t, dosages, 1)
}

func TestCreatePrescriptionHandlerUnknownMedicationWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	aspirin := entity.NewMedication("Aspirin", "pill", 5)
	require.NoError(t, store.Medications().Add(ctx, aspirin))

	missing := uuid.NewString()
	h := &CreatePrescriptionHandler{Store: store, Validate: newValidate()}
	resp, apierr := h.Handle(ctx, &CreatePrescriptionCommand{
		Dosages: []*PrescriptionDosage{
			{MedicationID: aspirin.ID.String(), Quantity: 2, Frequency: "daily"},
			{MedicationID: missing, Quantity: 1, Frequency: "weekly"},
		},
	})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())
	assert.EqualError(t, apierr, "Medication with id "+missing+" not found")

	prescriptions, err := store.Prescriptions().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, prescriptions)
}

func TestCreatePrescriptionHandlerRequiresDosages(t *testing.T) {
	h := &CreatePrescriptionHandler{Store: memory.NewStore(), Validate: newValidate()}

	resp, apierr := h.Handle(context.Background(), &CreatePrescriptionCommand{})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 400, apierr.Code())
}

func TestDeletePrescriptionHandlerNotFound(t *testing.T) {
	h := &DeletePrescriptionHandler{Store: memory.NewStore()}

	apierr := h.Handle(context.Background(), &DeletePrescriptionCommand{PrescriptionID: uuid.New()})
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
	assert.EqualError(t, apierr, "Prescription with given id not found")
}
