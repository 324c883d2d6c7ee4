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

type CreateHospitalRequest struct {
	Name    string `json:"name" validate:"required,max=128"`
	Address string `json:"address" validate:"required,max=256"`
	Phone   string `json:"phone" validate:"required,max=32"`
}

type HospitalResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type DefaultHospitalService struct {
	Store    repository.Store
	Validate *validator.Validate
}

func NewHospitalService(store repository.Store, validate *validator.Validate) *DefaultHospitalService {
	return &DefaultHospitalService{Store: store, Validate: validate}
}

func (s *DefaultHospitalService) GetHospitals(ctx context.Context) ([]*HospitalResponse, apierror.ErrorResponse) {
	hospitals, err := s.Store.Hospitals().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all hospitals: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*HospitalResponse, len(hospitals))
	for i, h := range hospitals {
		resp[i] = toHospitalResponse(h)
	}
	return resp, nil
}

func (s *DefaultHospitalService) CreateHospital(ctx context.Context, req *CreateHospitalRequest) (*HospitalResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	hospital := entity.NewHospital(req.Name, req.Address, req.Phone)
	if err := s.Store.Hospitals().Add(ctx, hospital); err != nil {
		log.Errorf("failed to save hospital: %v", err)
		return nil, apierror.InternalServerError
	}
	return toHospitalResponse(hospital), nil
}

func (s *DefaultHospitalService) DeleteHospital(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	return deleteByID(ctx, s.Store.Hospitals(), id, "Hospital")
}

func (s *DefaultHospitalService) GetDoctorsFromHospital(ctx context.Context, hospitalID uuid.UUID) ([]*DoctorResponse, apierror.ErrorResponse) {
	hospital, err := s.Store.Hospitals().FindByID(ctx, hospitalID)
	if err != nil {
		log.Errorf("failed to fetch hospital %s: %v", hospitalID, err)
		return nil, apierror.InternalServerError
	}
	if hospital == nil {
		return nil, apierror.NewNotFound("Hospital")
	}

	doctors, err := s.Store.Doctors().Find(ctx, func(d *entity.Doctor) bool {
		return d.HospitalID == hospitalID
	})
	if err != nil {
		log.Errorf("failed to fetch doctors of hospital %s: %v", hospitalID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DoctorResponse, len(doctors))
	for i, d := range doctors {
		resp[i] = toDoctorResponse(d)
	}
	return resp, nil
}

// AddDoctorsToHospital registers a batch of doctors under a hospital. One
// invalid doctor fails the whole batch and nothing is persisted.
func (s *DefaultHospitalService) AddDoctorsToHospital(ctx context.Context, hospitalID uuid.UUID, reqs []*CreateDoctorRequest) ([]*DoctorResponse, apierror.ErrorResponse) {
	doctors := make([]*entity.Doctor, len(reqs))
	for i, req := range reqs {
		utils.Sanitize(req)
		doctors[i] = fromCreateDoctorRequest(req)
	}

	var apierr apierror.ErrorResponse
	err := s.Store.Atomic(ctx, func(tx repository.Store) error {
		hospital, err := tx.Hospitals().FindByID(ctx, hospitalID)
		if err != nil {
			return err
		}
		if hospital == nil {
			apierr = apierror.NewNotFound("Hospital")
			return errAborted
		}

		if err := hospital.AddDoctors(doctors); err != nil {
			apierr = apierror.FromDomainError(err)
			return errAborted
		}

		for _, d := range doctors {
			if err := tx.Doctors().Add(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to add doctors to hospital %s: %v", hospitalID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DoctorResponse, len(doctors))
	for i, d := range doctors {
		resp[i] = toDoctorResponse(d)
	}
	return resp, nil
}

func toHospitalResponse(h *entity.Hospital) *HospitalResponse {
	return &HospitalResponse{
		ID:      h.ID.String(),
		Name:    h.Name,
		Address: h.Address,
		Phone:   h.Phone,
	}
}
