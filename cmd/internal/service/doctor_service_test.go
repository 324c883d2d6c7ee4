package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydoc/cmd/internal/domain/memory"
)

func TestAddAppointmentsToDoctorBooksWholeBatch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewDoctorService(store, newValidate())
	doctor := seedDoctor(t, store)
	patient := seedPatient(t, store)

	resp, apierr := svc.AddAppointmentsToDoctor(ctx, doctor.ID, []*DoctorAppointmentRequest{
		{PatientID: patient.ID.String(), StartsAt: futureISO(24), EndsAt: futureISO(25)},
		{PatientID: patient.ID.String(), StartsAt: futureISO(26), EndsAt: futureISO(27)},
	})
	require.Nil(t, apierr)
	require.Len(t, resp, 2)

	appts, err := store.Appointments().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, appts, 2)
}

func TestAddAppointmentsToDoctorRejectsOverlapWithinBatch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewDoctorService(store, newValidate())
	doctor := seedDoctor(t, store)
	first := seedPatient(t, store)
	second := seedPatient(t, store)

	// two patients asking for the same slot with one doctor
	resp, apierr := svc.AddAppointmentsToDoctor(ctx, doctor.ID, []*DoctorAppointmentRequest{
		{PatientID: first.ID.String(), StartsAt: futureISO(24), EndsAt: futureISO(25)},
		{PatientID: second.ID.String(), StartsAt: futureISO(24), EndsAt: futureISO(25)},
	})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 400, apierr.Code())
	assert.EqualError(t, apierr, "doctor is not available in the given interval")

	appts, err := store.Appointments().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestAddAppointmentsToDoctorUnknownPatient(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewDoctorService(store, newValidate())
	doctor := seedDoctor(t, store)

	resp, apierr := svc.AddAppointmentsToDoctor(ctx, doctor.ID, []*DoctorAppointmentRequest{
		{PatientID: uuid.NewString(), StartsAt: futureISO(24), EndsAt: futureISO(25)},
	})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())

	appts, err := store.Appointments().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestAddReviewToDoctor(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewDoctorService(store, newValidate())
	doctor := seedDoctor(t, store)

	_, apierr := svc.AddReviewToDoctor(ctx, doctor.ID, &CreateReviewRequest{Text: "too good", Rating: 6})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
	assert.EqualError(t, apierr, "review rating must be between 1 and 5")

	resp, apierr := svc.AddReviewToDoctor(ctx, doctor.ID, &CreateReviewRequest{Text: "brilliant but rude", Rating: 4})
	require.Nil(t, apierr)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, 4, resp.Reviews[0].Rating)

	stored, err := store.Doctors().FindByID(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Reviews, 1)
}

func TestUpdateDoctor(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewDoctorService(store, newValidate())
	doctor := seedDoctor(t, store)

	req := doctorRequest("Gregory")
	resp, apierr := svc.UpdateDoctor(ctx, doctor.ID, req)
	require.Nil(t, apierr)
	assert.Equal(t, "Gregory", resp.FirstName)

	stored, err := store.Doctors().FindByID(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gregory", stored.FirstName)
}

func TestUpdateDoctorNotFound(t *testing.T) {
	svc := NewDoctorService(memory.NewStore(), newValidate())

	resp, apierr := svc.UpdateDoctor(context.Background(), uuid.New(), doctorRequest("Greg"))
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())
}
