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

type AddMedicationsToBillRequest struct {
	MedicationIDs []string `json:"medication_ids" validate:"required,min=1,dive,uuid"`
}

type RegisterPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,max=64"`
}

type PaymentResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	BillID string  `json:"bill_id"`
}

type BillResponse struct {
	ID          string                `json:"id"`
	CreatedAt   string                `json:"created_at"`
	Medications []*MedicationResponse `json:"medications"`
	Payment     *PaymentResponse      `json:"payment,omitempty"`
}

type DefaultBillService struct {
	Store    repository.Store
	Validate *validator.Validate
}

func NewBillService(store repository.Store, validate *validator.Validate) *DefaultBillService {
	return &DefaultBillService{Store: store, Validate: validate}
}

func (s *DefaultBillService) GetBills(ctx context.Context) ([]*BillResponse, apierror.ErrorResponse) {
	bills, err := s.Store.Bills().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all bills: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*BillResponse, len(bills))
	for i, b := range bills {
		resp[i] = toBillResponse(b)
	}
	return resp, nil
}

func (s *DefaultBillService) GetBill(ctx context.Context, id uuid.UUID) (*BillResponse, apierror.ErrorResponse) {
	bill, err := s.Store.Bills().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch bill %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if bill == nil {
		return nil, apierror.NewNotFound("Bill")
	}
	return toBillResponse(bill), nil
}

func (s *DefaultBillService) CreateBill(ctx context.Context) (*BillResponse, apierror.ErrorResponse) {
	bill := entity.NewBill(utils.NowUTC())
	if err := s.Store.Bills().Add(ctx, bill); err != nil {
		log.Errorf("failed to save bill: %v", err)
		return nil, apierror.InternalServerError
	}
	return toBillResponse(bill), nil
}

func (s *DefaultBillService) DeleteBill(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	return deleteByID(ctx, s.Store.Bills(), id, "Bill")
}

// GetMedicationsFromBill reads the bill's line items, with stock counts taken
// from the medications catalog rather than the bill's own copy.
func (s *DefaultBillService) GetMedicationsFromBill(ctx context.Context, billID uuid.UUID) ([]*MedicationResponse, apierror.ErrorResponse) {
	bill, err := s.Store.Bills().FindByID(ctx, billID)
	if err != nil {
		log.Errorf("failed to fetch bill %s: %v", billID, err)
		return nil, apierror.InternalServerError
	}
	if bill == nil {
		return nil, apierror.NewNotFound("Bill")
	}

	medications, apierr := s.lineItems(ctx, s.Store, bill)
	if apierr != nil {
		return nil, apierr
	}

	resp := make([]*MedicationResponse, len(medications))
	for i, m := range medications {
		resp[i] = toMedicationResponse(m)
	}
	return resp, nil
}

// AddMedicationsToBill appends medications to the bill. Every id must
// resolve; the first unresolved id fails the request with no partial addition.
func (s *DefaultBillService) AddMedicationsToBill(ctx context.Context, billID uuid.UUID, req *AddMedicationsToBillRequest) ([]*MedicationResponse, apierror.ErrorResponse) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	var medications []*entity.Medication
	var apierr apierror.ErrorResponse
	err := s.Store.Atomic(ctx, func(tx repository.Store) error {
		bill, err := tx.Bills().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		if bill == nil {
			apierr = apierror.NewNotFound("Bill")
			return errAborted
		}

		for _, rawID := range req.MedicationIDs {
			id := uuid.MustParse(rawID)
			medication, err := tx.Medications().FindByID(ctx, id)
			if err != nil {
				return err
			}
			if medication == nil {
				apierr = apierror.NewSimple(404, "Medication with id "+rawID+" not found")
				return errAborted
			}
			medications = append(medications, medication)
		}

		bill.AddMedications(medications)
		return tx.Bills().Update(ctx, bill)
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to add medications to bill %s: %v", billID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*MedicationResponse, len(medications))
	for i, m := range medications {
		resp[i] = toMedicationResponse(m)
	}
	return resp, nil
}

func (s *DefaultBillService) RemoveMedicationFromBill(ctx context.Context, billID, medicationID uuid.UUID) apierror.ErrorResponse {
	var apierr apierror.ErrorResponse
	err := s.Store.Atomic(ctx, func(tx repository.Store) error {
		bill, err := tx.Bills().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		if bill == nil {
			apierr = apierror.NewNotFound("Bill")
			return errAborted
		}

		medication, err := tx.Medications().FindByID(ctx, medicationID)
		if err != nil {
			return err
		}
		if medication == nil {
			apierr = apierror.NewNotFound("Medication")
			return errAborted
		}

		if err := bill.RemoveMedication(medicationID); err != nil {
			apierr = apierror.FromDomainError(err)
			return errAborted
		}
		return tx.Bills().Update(ctx, bill)
	})
	if apierr != nil {
		return apierr
	}
	if err != nil {
		log.Errorf("failed to remove medication %s from bill %s: %v", medicationID, billID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultBillService) GetPaymentFromBill(ctx context.Context, billID uuid.UUID) (*PaymentResponse, apierror.ErrorResponse) {
	bill, err := s.Store.Bills().FindByID(ctx, billID)
	if err != nil {
		log.Errorf("failed to fetch bill %s: %v", billID, err)
		return nil, apierror.InternalServerError
	}
	if bill == nil {
		return nil, apierror.NewNotFound("Bill")
	}

	payments, err := s.Store.Payments().Find(ctx, func(p *entity.Payment) bool {
		return p.BillID == billID
	})
	if err != nil {
		log.Errorf("failed to fetch payment of bill %s: %v", billID, err)
		return nil, apierror.InternalServerError
	}
	if len(payments) == 0 {
		return nil, apierror.NewSimple(404, "Bill has no payment")
	}
	return toPaymentResponse(payments[0]), nil
}

// RegisterPaymentToBill pays a bill. A bill is paid at most once, and payment
// is accepted only if every line item has stock left; one unit per line is
// then taken off the shelf and the payment is linked to the bill, all in one
// atomic unit, so a failure part-way cannot leave stock half-decremented.
func (s *DefaultBillService) RegisterPaymentToBill(ctx context.Context, billID uuid.UUID, req *RegisterPaymentRequest) (*PaymentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	payment := entity.NewPayment(req.Amount, req.Method)

	var apierr apierror.ErrorResponse
	err := s.Store.Atomic(ctx, func(tx repository.Store) error {
		bill, err := tx.Bills().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		if bill == nil {
			apierr = apierror.NewNotFound("Bill")
			return errAborted
		}

		if bill.Payment != nil {
			apierr = apierror.BillAlreadyPaidError
			return errAborted
		}

		medications, lerr := s.lineItems(ctx, tx, bill)
		if lerr != nil {
			apierr = lerr
			return errAborted
		}

		// validate before mutating: all line items must have stock
		for _, m := range medications {
			if m.Stock < 1 {
				apierr = apierror.NewSimple(400, "Medication "+m.Name+" does not have enough stock")
				return errAborted
			}
		}

		for _, m := range medications {
			if err := m.UpdateStock(); err != nil {
				apierr = apierror.FromDomainError(err)
				return errAborted
			}
			if err := tx.Medications().Update(ctx, m); err != nil {
				return err
			}
		}

		payment.AddBillToPayment(bill)
		if err := bill.AddPaymentToBill(payment); err != nil {
			apierr = apierror.BillAlreadyPaidError
			return errAborted
		}

		if err := tx.Payments().Add(ctx, payment); err != nil {
			return err
		}
		return tx.Bills().Update(ctx, bill)
	})
	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("failed to register payment to bill %s: %v", billID, err)
		return nil, apierror.InternalServerError
	}
	return toPaymentResponse(payment), nil
}

// lineItems resolves the bill's medications against the catalog.
func (s *DefaultBillService) lineItems(ctx context.Context, store repository.Store, bill *entity.Bill) ([]*entity.Medication, apierror.ErrorResponse) {
	medications := make([]*entity.Medication, 0, len(bill.Medications))
	for i := range bill.Medications {
		id := bill.Medications[i].ID
		medication, err := store.Medications().FindByID(ctx, id)
		if err != nil {
			log.Errorf("failed to fetch medication %s: %v", id, err)
			return nil, apierror.InternalServerError
		}
		if medication == nil {
			return nil, apierror.NewNotFound("Medication")
		}
		medications = append(medications, medication)
	}
	return medications, nil
}

func toPaymentResponse(p *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:     p.ID.String(),
		Amount: p.Amount,
		Method: p.Method,
		BillID: p.BillID.String(),
	}
}

func toBillResponse(b *entity.Bill) *BillResponse {
	resp := &BillResponse{
		ID:          b.ID.String(),
		CreatedAt:   utils.FormatEpoch(b.CreatedAt),
		Medications: make([]*MedicationResponse, len(b.Medications)),
	}
	for i := range b.Medications {
		resp.Medications[i] = toMedicationResponse(&b.Medications[i])
	}
	if b.Payment != nil {
		resp.Payment = toPaymentResponse(b.Payment)
	}
	return resp
}
