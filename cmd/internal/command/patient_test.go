package command

import (
	"context"
	"testing"

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

func TestCreatePatientHandler(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	h := &CreatePatientHandler{Store: store, Validate: newValidate()}

	resp, apierr := h.Handle(ctx, &CreatePatientCommand{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "555-0102",
		BirthDate: "1990-05-01T00:00:00Z",
	})
	require.Nil(t, apierr)
	assert.Equal(t, "1990-05-01T00:00:00Z", resp.BirthDate)

	stored, err := store.Patients().FindByID(ctx, uuid.MustParse(resp.ID))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "John", stored.FirstName)
}

func TestCreatePatientHandlerValidatesBody(t *testing.T) {
	h := &CreatePatientHandler{Store: memory.NewStore(), Validate: newValidate()}

	resp, apierr := h.Handle(context.Background(), &CreatePatientCommand{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "not-an-email",
		Phone:     "555-0102",
		BirthDate: "1990-05-01T00:00:00Z",
	})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 400, apierr.Code())
	assert.ErrorContains(t, apierr, "Email violates 'email'")
}

func TestListPatientAppointmentsHandler(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	patient := entity.NewPatient("John", "Doe", "john@example.com", "555-0102", 0)
	require.NoError(t, store.Patients().Add(ctx, patient))

	appt := &entity.Appointment{ID: uuid.New(), StartsAt: 1000, EndsAt: 2000, DoctorID: uuid.New(), PatientID: patient.ID}
	require.NoError(t, store.Appointments().Add(ctx, appt))
	other := &entity.Appointment{ID: uuid.New(), StartsAt: 1000, EndsAt: 2000, DoctorID: uuid.New(), PatientID: uuid.New()}
	require.NoError(t, store.Appointments().Add(ctx, other))

	h := &ListPatientAppointmentsHandler{Store: store}
	resp, apierr := h.Handle(ctx, &ListPatientAppointmentsQuery{PatientID: patient.ID})
	require.Nil(t, apierr)
	require.Len(t, resp, 1)
	assert.Equal(t, appt.ID.String(), resp[0].ID)
}

func TestListPatientAppointmentsHandlerUnknownPatient(t *testing.T) {
	h := &ListPatientAppointmentsHandler{Store: memory.NewStore()}

	resp, apierr := h.Handle(context.Background(), &ListPatientAppointmentsQuery{PatientID: uuid.New()})
	require.NotNil(t, apierr)
	assert.Nil(t, resp)
	assert.Equal(t, 404, apierr.Code())
	assert.EqualError(t, apierr, "Patient with given id not found")
}

func TestDeletePatientHandler(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	patient := entity.NewPatient("John", "Doe", "john@example.com", "555-0102", 0)
	require.NoError(t, store.Patients().Add(ctx, patient))

	h := &DeletePatientHandler{Store: store}
	require.Nil(t, h.Handle(ctx, &DeletePatientCommand{PatientID: patient.ID}))

	apierr := h.Handle(ctx, &DeletePatientCommand{PatientID: patient.ID})
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}
