// Package command holds the Patients and Prescriptions use cases, one
// handler per command or query, invoked directly by the route layer.
package command

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"mydoc/cmd/internal/domain/entity"
	"mydoc/cmd/internal/domain/repository"
	"mydoc/cmd/internal/utils"
	"mydoc/cmd/internal/utils/apierror"
)

// errAborted signals Atomic to roll back after a client error was already
// captured; it never reaches the caller.
var errAborted = errors.New("request aborted")

type CreatePatientCommand struct {
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"required,max=80"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=32"`
	BirthDate string `json:"birth_date" validate:"required,iso8601"`
}

type PatientResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

type PatientAppointmentResponse struct {
	ID       string `json:"id"`
	DoctorID string `json:"doctor_id"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

type CreatePatientHandler struct {
	Store    repository.Store
	Validate *validator.Validate
}

func (h *CreatePatientHandler) Handle(ctx context.Context, cmd *CreatePatientCommand) (*PatientResponse, apierror.ErrorResponse) {
	utils.Sanitize(cmd)
	if err := h.Validate.Struct(cmd); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	birthDate, err := utils.FromEpoch(cmd.BirthDate)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	patient := entity.NewPatient(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Phone, birthDate)
	if err := h.Store.Patients().Add(ctx, patient); err != nil {
		log.Errorf("failed to save patient: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPatientResponse(patient), nil
}

type ListPatientsHandler struct {
	Store repository.Store
}

func (h *ListPatientsHandler) Handle(ctx context.Context) ([]*PatientResponse, apierror.ErrorResponse) {
	patients, err := h.Store.Patients().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all patients: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*PatientResponse, len(patients))
	for i, p := range patients {
		resp[i] = toPatientResponse(p)
	}
	return resp, nil
}

type ListPatientAppointmentsQuery struct {
	PatientID uuid.UUID
}

type ListPatientAppointmentsHandler struct {
	Store repository.Store
}

func (h *ListPatientAppointmentsHandler) Handle(ctx context.Context, query *ListPatientAppointmentsQuery) ([]*PatientAppointmentResponse, apierror.ErrorResponse) {
	patient, err := h.Store.Patients().FindByID(ctx, query.PatientID)
	if err != nil {
		log.Errorf("failed to fetch patient %s: %v", query.PatientID, err)
		return nil, apierror.InternalServerError
	}
	if patient == nil {
		return nil, apierror.NewNotFound("Patient")
	}

	appts, err := h.Store.Appointments().Find(ctx, func(a *entity.Appointment) bool {
		return a.PatientID == query.PatientID
	})
	if err != nil {
		log.Errorf("failed to fetch appointments of patient %s: %v", query.PatientID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*PatientAppointmentResponse, len(appts))
	for i, a := range appts {
		resp[i] = &PatientAppointmentResponse{
			ID:       a.ID.String(),
			DoctorID: a.DoctorID.String(),
			StartsAt: utils.FormatEpoch(a.StartsAt),
			EndsAt:   utils.FormatEpoch(a.EndsAt),
		}
	}
	return resp, nil
}

type DeletePatientCommand struct {
	PatientID uuid.UUID
}

type DeletePatientHandler struct {
	Store repository.Store
}

func (h *DeletePatientHandler) Handle(ctx context.Context, cmd *DeletePatientCommand) apierror.ErrorResponse {
	err := h.Store.Patients().Delete(ctx, cmd.PatientID)
	if errors.Is(err, repository.ErrNotFound) {
		return apierror.NewNotFound("Patient")
	}
	if err != nil {
		log.Errorf("failed to delete patient %s: %v", cmd.PatientID, err)
		return apierror.InternalServerError
	}
	return nil
}

func toPatientResponse(p *entity.Patient) *PatientResponse {
	return &PatientResponse{
		ID:        p.ID.String(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		BirthDate: utils.FormatEpoch(p.BirthDate),
	}
}
