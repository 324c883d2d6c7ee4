package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"mydoc/cmd/internal/domain/entity"
	"mydoc/cmd/internal/domain/repository"
	"mydoc/cmd/internal/utils"
	"mydoc/cmd/internal/utils/apierror"
)

type CreateAppointmentRequest struct {
	DoctorID  string `json:"doctor_id" validate:"required,uuid"`
	PatientID string `json:"patient_id" validate:"required,uuid"`
	StartsAt  string `json:"starts_at" validate:"required,iso8601"`
	EndsAt    string `json:"ends_at" validate:"required,iso8601"`
}

type AppointmentResponse struct {
	ID        string `json:"id"`
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type DefaultAppointmentService struct {
	Store    repository.Store
	Validate *validator.Validate
}

func NewAppointmentService(store repository.Store, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{Store: store, Validate: validate}
}

func (s *DefaultAppointmentService) GetAppointments(ctx context.Context) ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := s.Store.Appointments().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		resp[i] = toAppointmentResponse(appt)
	}
	return resp, nil
}

// CreateAppointment books an appointment with a doctor for a patient. Both
// must exist and both must be free for the whole interval; the appointment is
// only persisted once both sides accepted it, in one atomic unit.
func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	startsAt, err := utils.FromEpoch(req.StartsAt)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}
	endsAt, err := utils.FromEpoch(req.EndsAt)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	appt, err := entity.NewAppointment(startsAt, endsAt, utils.NowUTC())
	if err != nil {
		return nil, apierror.FromDomainError(err)
	}

	doctorID := uuid.MustParse(req.DoctorID)
	patientID := uuid.MustParse(req.PatientID)

	var apierr apierror.ErrorResponse
	err = s.Store.Atomic(ctx, func(tx repository.Store) error {
		doctor, err := tx.Doctors().FindByID(ctx, doctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			apierr = apierror.NewNotFound("Doctor")
			return errAborted
		}

		patient, err := tx.Patients().FindByID(ctx, patientID)
		if err != nil {
			return err
		}
		if patient == nil {
			apierr = apierror.NewNotFound("Patient")
			return errAborted
		}

		if err := hydrateAppointments(ctx, tx, doctor, patient); err != nil {
			return err
		}

		if err := doctor.AddAppointment(appt); err != nil {
			apierr = apierror.FromDomainError(err)
			return errAborted
		}
		if err := patient.AddAppointment(appt); err != nil {
			apierr = apierror.FromDomainError(err)
			return errAborted
		}

		return tx.Appointments().Add(ctx, appt)
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to create appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

func (s *DefaultAppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	return deleteByID(ctx, s.Store.Appointments(), id, "Appointment")
}

// hydrateAppointments loads the current schedules of the doctor and patient,
// the association lives in the appointments table and not on either row.
func hydrateAppointments(ctx context.Context, tx repository.Store, doctor *entity.Doctor, patient *entity.Patient) error {
	booked, err := tx.Appointments().Find(ctx, func(a *entity.Appointment) bool {
		return a.DoctorID == doctor.ID || a.PatientID == patient.ID
	})
	if err != nil {
		return err
	}

	doctor.Appointments = doctor.Appointments[:0]
	patient.Appointments = patient.Appointments[:0]
	for _, a := range booked {
		if a.DoctorID == doctor.ID {
			doctor.Appointments = append(doctor.Appointments, *a)
		}
		if a.PatientID == patient.ID {
			patient.Appointments = append(patient.Appointments, *a)
		}
	}
	return nil
}

func toAppointmentResponse(a *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        a.ID.String(),
		DoctorID:  a.DoctorID.String(),
		PatientID: a.PatientID.String(),
		StartsAt:  utils.FormatEpoch(a.StartsAt),
		EndsAt:    utils.FormatEpoch(a.EndsAt),
		CreatedAt: utils.FormatEpoch(a.CreatedAt),
		UpdatedAt: utils.FormatEpoch(a.UpdatedAt),
	}
}
