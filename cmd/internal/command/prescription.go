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

type PrescriptionDosage struct {
	MedicationID string `json:"medication_id" validate:"required,uuid"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Frequency    string `json:"frequency" validate:"required,max=64"`
}

type CreatePrescriptionCommand struct {
	Dosages []*PrescriptionDosage `json:"dosages" validate:"required,min=1,dive"`
}

type PrescriptionDosageResponse struct {
	ID           string `json:"id"`
	MedicationID string `json:"medication_id"`
	Quantity     int    `json:"quantity"`
	Frequency    string `json:"frequency"`
}

type PrescriptionResponse struct {
	ID        string                        `json:"id"`
	CreatedAt string                        `json:"created_at"`
	Dosages   []*PrescriptionDosageResponse `json:"dosages"`
}

type CreatePrescriptionHandler struct {
	Store    repository.Store
	Validate *validator.Validate
}

// Handle writes a prescription. Every referenced medication must exist; the
// first unresolved id fails the whole command.
func (h *CreatePrescriptionHandler) Handle(ctx context.Context, cmd *CreatePrescriptionCommand) (*PrescriptionResponse, apierror.ErrorResponse) {
	for _, d := range cmd.Dosages {
		utils.Sanitize(d)
	}
	if err := h.Validate.Struct(cmd); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	prescription := entity.NewPrescription(utils.NowUTC())

	var apierr apierror.ErrorResponse
	err := h.Store.Atomic(ctx, func(tx repository.Store) error {
		for _, d := range cmd.Dosages {
			id := uuid.MustParse(d.MedicationID)
			medication, err := tx.Medications().FindByID(ctx, id)
			if err != nil {
				return err
			}
			if medication == nil {
				apierr = apierror.NewSimple(404, "Medication with id "+d.MedicationID+" not found")
				return errAborted
			}
			prescription.AddDosage(id, d.Quantity, d.Frequency)
		}
		return tx.Prescriptions().Add(ctx, prescription)
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to save prescription: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPrescriptionResponse(prescription), nil
}

type ListPrescriptionsHandler struct {
	Store repository.Store
}

func (h *ListPrescriptionsHandler) Handle(ctx context.Context) ([]*PrescriptionResponse, apierror.ErrorResponse) {
	prescriptions, err := h.Store.Prescriptions().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all prescriptions: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*PrescriptionResponse, len(prescriptions))
	for i, p := range prescriptions {
		resp[i] = toPrescriptionResponse(p)
	}
	return resp, nil
}

type ListPrescriptionDosagesQuery struct {
	PrescriptionID uuid.UUID
}

type ListPrescriptionDosagesHandler struct {
	Store repository.Store
}

func (h *ListPrescriptionDosagesHandler) Handle(ctx context.Context, query *ListPrescriptionDosagesQuery) ([]*PrescriptionDosageResponse, apierror.ErrorResponse) {
	prescription, err := h.Store.Prescriptions().FindByID(ctx, query.PrescriptionID)
	if err != nil {
		log.Errorf("failed to fetch prescription %s: %v", query.PrescriptionID, err)
		return nil, apierror.InternalServerError
	}
	if prescription == nil {
		return nil, apierror.NewNotFound("Prescription")
	}
	return toPrescriptionResponse(prescription).Dosages, nil
}

type DeletePrescriptionCommand struct {
	PrescriptionID uuid.UUID
}

type DeletePrescriptionHandler struct {
	Store repository.Store
}

func (h *DeletePrescriptionHandler) Handle(ctx context.Context, cmd *DeletePrescriptionCommand) apierror.ErrorResponse {
	err := h.Store.Prescriptions().Delete(ctx, cmd.PrescriptionID)
	if errors.Is(err, repository.ErrNotFound) {
		return apierror.NewNotFound("Prescription")
	}
	if err != nil {
		log.Errorf("failed to delete prescription %s: %v", cmd.PrescriptionID, err)
		return apierror.InternalServerError
	}
	return nil
}

func toPrescriptionResponse(p *entity.Prescription) *PrescriptionResponse {
	resp := &PrescriptionResponse{
		ID:        p.ID.String(),
		CreatedAt: utils.FormatEpoch(p.CreatedAt),
		Dosages:   make([]*PrescriptionDosageResponse, len(p.Dosages)),
	}
	for i := range p.Dosages {
		d := &p.Dosages[i]
		resp.Dosages[i] = &PrescriptionDosageResponse{
			ID:           d.ID.String(),
			MedicationID: d.MedicationID.String(),
			Quantity:     d.Quantity,
			Frequency:    d.Frequency,
		}
	}
	return resp
}
