package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydoc/cmd/internal/domain/memory"
)

func TestMedicationLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewMedicationService(store, newValidate())

	created, apierr := svc.CreateMedication(ctx, &CreateMedicationRequest{Name: "Aspirin", Unit: "pill", Stock: 10})
	require.Nil(t, apierr)
	id := uuid.MustParse(created.ID)

	updated, apierr := svc.UpdateMedication(ctx, id, &CreateMedicationRequest{Name: "Aspirin", Unit: "box", Stock: 3})
	require.Nil(t, apierr)
	assert.Equal(t, "box", updated.Unit)
	assert.Equal(t, 3, updated.Stock)

	fetched, apierr := svc.GetMedication(ctx, id)
	require.Nil(t, apierr)
	assert.Equal(t, "box", fetched.Unit)

	require.Nil(t, svc.DeleteMedication(ctx, id))

	_, apierr = svc.GetMedication(ctx, id)
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}

func TestUpdateMedicationNotFound(t *testing.T) {
	svc := NewMedicationService(memory.NewStore(), newValidate())

	resp, apierr := svc.UpdateMedication(context.Background(), uuid.New(), &CreateMedicationRequest{Name: "Aspirin", Unit: "pill", Stock: 1})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())
}
