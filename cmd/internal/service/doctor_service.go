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

type CreateDoctorRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=80"`
	LastName       string `json:"last_name" validate:"required,max=80"`
	Specialization string `json:"specialization" validate:"required,max=128"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,max=32"`
	Title          string `json:"title" validate:"required,max=80"`
	Profession     string `json:"profession" validate:"required,max=80"`
	Location       string `json:"location" validate:"required,max=128"`
}

type CreateReviewRequest struct {
	Text   string `json:"text" validate:"max=1024"`
	Rating int    `json:"rating" validate:"required"`
}

// DoctorAppointmentRequest books one slot with the doctor for a patient; used
// by the bulk endpoint.
type DoctorAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid"`
	StartsAt  string `json:"starts_at" validate:"required,iso8601"`
	EndsAt    string `json:"ends_at" validate:"required,iso8601"`
}

type ReviewResponse struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type DoctorResponse struct {
	ID             string            `json:"id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Specialization string            `json:"specialization"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Title          string            `json:"title"`
	Profession     string            `json:"profession"`
	Location       string            `json:"location"`
	HospitalID     string            `json:"hospital_id,omitempty"`
	Reviews        []*ReviewResponse `json:"reviews,omitempty"`
}

type DefaultDoctorService struct {
	Store    repository.Store
	Validate *validator.Validate
}

func NewDoctorService(store repository.Store, validate *validator.Validate) *DefaultDoctorService {
	return &DefaultDoctorService{Store: store, Validate: validate}
}

func (s *DefaultDoctorService) GetDoctors(ctx context.Context) ([]*DoctorResponse, apierror.ErrorResponse) {
	doctors, err := s.Store.Doctors().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all doctors: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DoctorResponse, len(doctors))
	for i, d := range doctors {
		resp[i] = toDoctorResponse(d)
	}
	return resp, nil
}

func (s *DefaultDoctorService) CreateDoctor(ctx context.Context, req *CreateDoctorRequest) (*DoctorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	doctor := fromCreateDoctorRequest(req)
	if err := s.Store.Doctors().Add(ctx, doctor); err != nil {
		log.Errorf("failed to save doctor: %v", err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponse(doctor), nil
}

func (s *DefaultDoctorService) UpdateDoctor(ctx context.Context, id uuid.UUID, req *CreateDoctorRequest) (*DoctorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	doctor, err := s.Store.Doctors().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch doctor %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if doctor == nil {
		return nil, apierror.NewNotFound("Doctor")
	}

	doctor.UpdateDoctor(fromCreateDoctorRequest(req))
	if err := s.Store.Doctors().Update(ctx, doctor); err != nil {
		log.Errorf("failed to update doctor %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponse(doctor), nil
}

func (s *DefaultDoctorService) DeleteDoctor(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	return deleteByID(ctx, s.Store.Doctors(), id, "Doctor")
}

func (s *DefaultDoctorService) GetAppointmentsFromDoctor(ctx context.Context, doctorID uuid.UUID) ([]*AppointmentResponse, apierror.ErrorResponse) {
	doctor, err := s.Store.Doctors().FindByID(ctx, doctorID)
	if err != nil {
		log.Errorf("failed to fetch doctor %s: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}
	if doctor == nil {
		return nil, apierror.NewNotFound("Doctor")
	}

	appts, err := s.Store.Appointments().Find(ctx, func(a *entity.Appointment) bool {
		return a.DoctorID == doctorID
	})
	if err != nil {
		log.Errorf("failed to fetch appointments of doctor %s: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentResponse, len(appts))
	for i, a := range appts {
		resp[i] = toAppointmentResponse(a)
	}
	return resp, nil
}

// AddAppointmentsToDoctor books a batch of appointments with one doctor. Any
// unresolved patient or rejected slot fails the whole batch; slots within the
// batch are checked against each other as well as the stored schedule.
func (s *DefaultDoctorService) AddAppointmentsToDoctor(ctx context.Context, doctorID uuid.UUID, reqs []*DoctorAppointmentRequest) ([]*AppointmentResponse, apierror.ErrorResponse) {
	for _, req := range reqs {
		utils.Sanitize(req)
		if err := s.Validate.Struct(req); err != nil {
			return nil, apierror.FromValidationError(err)
		}
	}

	var appts []*entity.Appointment
	var apierr apierror.ErrorResponse
	err := s.Store.Atomic(ctx, func(tx repository.Store) error {
		doctor, err := tx.Doctors().FindByID(ctx, doctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			apierr = apierror.NewNotFound("Doctor")
			return errAborted
		}

		for _, req := range reqs {
			patient, err := tx.Patients().FindByID(ctx, uuid.MustParse(req.PatientID))
			if err != nil {
				return err
			}
			if patient == nil {
				apierr = apierror.NewNotFound("Patient")
				return errAborted
			}

			startsAt, _ := utils.FromEpoch(req.StartsAt)
			endsAt, _ := utils.FromEpoch(req.EndsAt)
			appt, err := entity.NewAppointment(startsAt, endsAt, utils.NowUTC())
			if err != nil {
				apierr = apierror.FromDomainError(err)
				return errAborted
			}

			if err := hydrateAppointments(ctx, tx, doctor, patient); err != nil {
				return err
			}
			// keep slots accepted earlier in this batch on the schedules
			for _, accepted := range appts {
				doctor.Appointments = append(doctor.Appointments, *accepted)
				if accepted.PatientID == patient.ID {
					patient.Appointments = append(patient.Appointments, *accepted)
				}
			}

			if err := patient.AddAppointment(appt); err != nil {
				apierr = apierror.FromDomainError(err)
				return errAborted
			}
			if err := doctor.AddAppointment(appt); err != nil {
				apierr = apierror.FromDomainError(err)
				return errAborted
			}
			appts = append(appts, appt)
		}

		for _, appt := range appts {
			if err := tx.Appointments().Add(ctx, appt); err != nil {
				return err
			}
		}
		return nil
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to add appointments to doctor %s: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentResponse, len(appts))
	for i, a := range appts {
		resp[i] = toAppointmentResponse(a)
	}
	return resp, nil
}

func (s *DefaultDoctorService) AddReviewToDoctor(ctx context.Context, doctorID uuid.UUID, req *CreateReviewRequest) (*DoctorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	doctor, err := s.Store.Doctors().FindByID(ctx, doctorID)
	if err != nil {
		log.Errorf("failed to fetch doctor %s: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}
	if doctor == nil {
		return nil, apierror.NewNotFound("Doctor")
	}

	if err := doctor.AddReview(req.Text, req.Rating); err != nil {
		return nil, apierror.FromDomainError(err)
	}

	if err := s.Store.Doctors().Update(ctx, doctor); err != nil {
		log.Errorf("failed to update doctor %s: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponse(doctor), nil
}

func fromCreateDoctorRequest(req *CreateDoctorRequest) *entity.Doctor {
	return entity.NewDoctor(
		req.FirstName,
		req.LastName,
		req.Specialization,
		req.Email,
		req.Phone,
		req.Title,
		req.Profession,
		req.Location,
	)
}

func toDoctorResponse(d *entity.Doctor) *DoctorResponse {
	resp := &DoctorResponse{
		ID:             d.ID.String(),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Specialization: d.Specialization,
		Email:          d.Email,
		Phone:          d.Phone,
		Title:          d.Title,
		Profession:     d.Profession,
		Location:       d.Location,
	}
	if d.HospitalID != uuid.Nil {
		resp.HospitalID = d.HospitalID.String()
	}
	for i := range d.Reviews {
		r := &d.Reviews[i]
		resp.Reviews = append(resp.Reviews, &ReviewResponse{
			ID:     r.ID.String(),
			Text:   r.Text,
			Rating: r.Rating,
		})
	}
	return resp
}
