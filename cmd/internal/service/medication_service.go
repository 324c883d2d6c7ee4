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

type CreateMedicationRequest struct {
	Name  string `json:"name" validate:"required,max=128"`
	Unit  string `json:"unit" validate:"required,max=32"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type MedicationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Stock int    `json:"stock"`
}

type DefaultMedicationService struct {
	Store    repository.Store
	Validate *validator.Validate
}

func NewMedicationService(store repository.Store, validate *validator.Validate) *DefaultMedicationService {
	return &DefaultMedicationService{Store: store, Validate: validate}
}

func (s *DefaultMedicationService) GetMedications(ctx context.Context) ([]*MedicationResponse, apierror.ErrorResponse) {
	medications, err := s.Store.Medications().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all medications: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*MedicationResponse, len(medications))
	for i, m := range medications {
		resp[i] = toMedicationResponse(m)
	}
	return resp, nil
}

func (s *DefaultMedicationService) GetMedication(ctx context.Context, id uuid.UUID) (*MedicationResponse, apierror.ErrorResponse) {
	medication, err := s.Store.Medications().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch medication %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if medication == nil {
		return nil, apierror.NewNotFound("Medication")
	}
	return toMedicationResponse(medication), nil
}

func (s *DefaultMedicationService) CreateMedication(ctx context.Context, req *CreateMedicationRequest) (*MedicationResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	medication := entity.NewMedication(req.Name, req.Unit, req.Stock)
	if err := s.Store.Medications().Add(ctx, medication); err != nil {
		log.Errorf("failed to save medication: %v", err)
		return nil, apierror.InternalServerError
	}
	return toMedicationResponse(medication), nil
}

func (s *DefaultMedicationService) UpdateMedication(ctx context.Context, id uuid.UUID, req *CreateMedicationRequest) (*MedicationResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	medication, err := s.Store.Medications().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch medication %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if medication == nil {
		return nil, apierror.NewNotFound("Medication")
	}

	medication.UpdateMedication(&entity.Medication{Name: req.Name, Unit: req.Unit, Stock: req.Stock})
	if err := s.Store.Medications().Update(ctx, medication); err != nil {
		log.Errorf("failed to update medication %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toMedicationResponse(medication), nil
}

func (s *DefaultMedicationService) DeleteMedication(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	return deleteByID(ctx, s.Store.Medications(), id, "Medication")
}

func toMedicationResponse(m *entity.Medication) *MedicationResponse {
	return &MedicationResponse{
		ID:    m.ID.String(),
		Name:  m.Name,
		Unit:  m.Unit,
		Stock: m.Stock,
	}
}
