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

type HistoryDosageRequest struct {
	MedicationID string `json:"medication_id" validate:"required,uuid"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Frequency    string `json:"frequency" validate:"required,max=64"`
}

type CreateHistoryRequest struct {
	PatientID string                  `json:"patient_id" validate:"required,uuid"`
	Dosages   []*HistoryDosageRequest `json:"dosages" validate:"dive"`
}

type HistoryDosageResponse struct {
	ID           string `json:"id"`
	MedicationID string `json:"medication_id"`
	Quantity     int    `json:"quantity"`
	Frequency    string `json:"frequency"`
}

type HistoryResponse struct {
	ID        string                   `json:"id"`
	PatientID string                   `json:"patient_id"`
	CreatedAt string                   `json:"created_at"`
	Dosages   []*HistoryDosageResponse `json:"dosages"`
}

type DefaultHistoryService struct {
	Store    repository.Store
	Validate *validator.Validate
}

func NewHistoryService(store repository.Store, validate *validator.Validate) *DefaultHistoryService {
	return &DefaultHistoryService{Store: store, Validate: validate}
}

func (s *DefaultHistoryService) GetHistories(ctx context.Context) ([]*HistoryResponse, apierror.ErrorResponse) {
	histories, err := s.Store.Histories().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all histories: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*HistoryResponse, len(histories))
	for i, h := range histories {
		resp[i] = toHistoryResponse(h)
	}
	return resp, nil
}

// CreateHistory opens a medication history for a patient. Every referenced
// medication must exist; the first unresolved id fails the whole request.
func (s *DefaultHistoryService) CreateHistory(ctx context.Context, req *CreateHistoryRequest) (*HistoryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	history := entity.NewHistory(utils.NowUTC())

	var apierr apierror.ErrorResponse
	err := s.Store.Atomic(ctx, func(tx repository.Store) error {
		patient, err := tx.Patients().FindByID(ctx, uuid.MustParse(req.PatientID))
		if err != nil {
			return err
		}
		if patient == nil {
			apierr = apierror.NewNotFound("Patient")
			return errAborted
		}
		history.AddPatientToHistory(patient)

		for _, d := range req.Dosages {
			id := uuid.MustParse(d.MedicationID)
			medication, err := tx.Medications().FindByID(ctx, id)
			if err != nil {
				return err
			}
			if medication == nil {
				apierr = apierror.NewSimple(404, "Medication with id "+d.MedicationID+" not found")
				return errAborted
			}
			history.AddDosage(id, d.Quantity, d.Frequency)
		}

		return tx.Histories().Add(ctx, history)
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to save history: %v", err)
		return nil, apierror.InternalServerError
	}
	return toHistoryResponse(history), nil
}

func (s *DefaultHistoryService) DeleteHistory(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	return deleteByID(ctx, s.Store.Histories(), id, "History")
}

func (s *DefaultHistoryService) GetMedicationsFromHistory(ctx context.Context, historyID uuid.UUID) ([]*HistoryDosageResponse, apierror.ErrorResponse) {
	history, err := s.Store.Histories().FindByID(ctx, historyID)
	if err != nil {
		log.Errorf("failed to fetch history %s: %v", historyID, err)
		return nil, apierror.InternalServerError
	}
	if history == nil {
		return nil, apierror.NewNotFound("History")
	}
	return toHistoryResponse(history).Dosages, nil
}

func toHistoryResponse(h *entity.History) *HistoryResponse {
	resp := &HistoryResponse{
		ID:        h.ID.String(),
		PatientID: h.PatientID.String(),
		CreatedAt: utils.FormatEpoch(h.CreatedAt),
		Dosages:   make([]*HistoryDosageResponse, len(h.Dosages)),
	}
	for i := range h.Dosages {
		d := &h.Dosages[i]
		resp.Dosages[i] = &HistoryDosageResponse{
			ID:           d.ID.String(),
			MedicationID: d.MedicationID.String(),
			Quantity:     d.Quantity,
			Frequency:    d.Frequency,
		}
	}
	return resp
}
