package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydoc/cmd/internal/domain/entity"
	"mydoc/cmd/internal/domain/memory"
	"mydoc/cmd/internal/utils/validators"
)

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("iso8601", validators.IsIso8601)
	return v
}

// futureISO returns an RFC3339 timestamp the given number of hours from now.
func futureISO(hours int) string {
	return time.Now().UTC().Add(time.Duration(hours) * time.Hour).Truncate(time.Second).Format(time.RFC3339)
}

func seedDoctor(t *testing.T, store *memory.Store) *entity.Doctor {
	t.Helper()
	d := entity.NewDoctor("Greg", "House", "Diagnostics", "house@ppth.org", "555-0101", "Dr.", "Physician", "Princeton")
	require.NoError(t, store.Doctors().Add(context.Background(), d))
	return d
}

func seedPatient(t *testing.T, store *memory.Store) *entity.Patient {
	t.Helper()
	p := entity.NewPatient("John", "Doe", "john@example.com", "555-0102", 0)
	require.NoError(t, store.Patients().Add(context.Background(), p))
	return p
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewAppointmentService(store, newValidate())
	doctor := seedDoctor(t, store)
	patient := seedPatient(t, store)

	resp, apierr := svc.CreateAppointment(ctx, &CreateAppointmentRequest{
		DoctorID:  doctor.ID.String(),
		PatientID: patient.ID.String(),
		StartsAt:  futureISO(24),
		EndsAt:    futureISO(25),
	})
	require.Nil(t, apierr)
	assert.Equal(t, doctor.ID.String(), resp.DoctorID)
	assert.Equal(t, patient.ID.String(), resp.PatientID)

	appts, err := store.Appointments().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, doctor.ID, appts[0].DoctorID)
	assert.Equal(t, patient.ID, appts[0].PatientID)
}

func TestCreateAppointmentUnknownDoctorPersistsNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewAppointmentService(store, newValidate())
	patient := seedPatient(t, store)

	resp, apierr := svc.CreateAppointment(ctx, &CreateAppointmentRequest{
		DoctorID:  uuid.NewString(),
		PatientID: patient.ID.String(),
		StartsAt:  futureISO(24),
		EndsAt:    futureISO(25),
	})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())
	assert.EqualError(t, apierr, "Doctor with given id not found")

	appts, err := store.Appointments().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestCreateAppointmentRejectsDoubleBooking(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewAppointmentService(store, newValidate())
	doctor := seedDoctor(t, store)
	patient := seedPatient(t, store)
	other := seedPatient(t, store)

	req := &CreateAppointmentRequest{
		DoctorID:  doctor.ID.String(),
		PatientID: patient.ID.String(),
		StartsAt:  futureISO(24),
		EndsAt:    futureISO(26),
	}
	_, apierr := svc.CreateAppointment(ctx, req)
	require.Nil(t, apierr)

	// another patient, overlapping slot with the same doctor
	_, apierr = svc.CreateAppointment(ctx, &CreateAppointmentRequest{
		DoctorID:  doctor.ID.String(),
		PatientID: other.ID.String(),
		StartsAt:  futureISO(25),
		EndsAt:    futureISO(27),
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
	assert.EqualError(t, apierr, "doctor is not available in the given interval")

	appts, err := store.Appointments().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestCreateAppointmentValidatesBody(t *testing.T) {
	svc := NewAppointmentService(memory.NewStore(), newValidate())

	_, apierr := svc.CreateAppointment(context.Background(), &CreateAppointmentRequest{
		DoctorID:  "not-a-uuid",
		PatientID: uuid.NewString(),
		StartsAt:  futureISO(24),
		EndsAt:    futureISO(25),
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
	assert.ErrorContains(t, apierr, "DoctorID violates 'uuid'")
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	svc := NewAppointmentService(memory.NewStore(), newValidate())

	apierr := svc.DeleteAppointment(context.Background(), uuid.New())
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}
