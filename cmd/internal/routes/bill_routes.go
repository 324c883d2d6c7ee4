package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/service"
	"mydoc/cmd/internal/utils/apierror"
)

type BillService interface {
	GetBills(ctx context.Context) ([]*service.BillResponse, apierror.ErrorResponse)
	GetBill(ctx context.Context, id uuid.UUID) (*service.BillResponse, apierror.ErrorResponse)
	CreateBill(ctx context.Context) (*service.BillResponse, apierror.ErrorResponse)
	DeleteBill(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
	GetMedicationsFromBill(ctx context.Context, billID uuid.UUID) ([]*service.MedicationResponse, apierror.ErrorResponse)
	AddMedicationsToBill(ctx context.Context, billID uuid.UUID, req *service.AddMedicationsToBillRequest) ([]*service.MedicationResponse, apierror.ErrorResponse)
	RemoveMedicationFromBill(ctx context.Context, billID, medicationID uuid.UUID) apierror.ErrorResponse
	GetPaymentFromBill(ctx context.Context, billID uuid.UUID) (*service.PaymentResponse, apierror.ErrorResponse)
	RegisterPaymentToBill(ctx context.Context, billID uuid.UUID, req *service.RegisterPaymentRequest) (*service.PaymentResponse, apierror.ErrorResponse)
}

type DefaultBillRoute struct {
	BillService BillService
}

func NewBillDefault(billService BillService) *DefaultBillRoute {
	return &DefaultBillRoute{BillService: billService}
}

func (b *DefaultBillRoute) GetBills(c echo.Context) error {
	bills, apierr := b.BillService.GetBills(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"bills": bills}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBillRoute) GetBill(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	bill, apierr := b.BillService.GetBill(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, bill)
}

func (b *DefaultBillRoute) CreateBill(c echo.Context) error {
	bill, apierr := b.BillService.CreateBill(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, bill)
}

func (b *DefaultBillRoute) DeleteBill(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := b.BillService.DeleteBill(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (b *DefaultBillRoute) GetMedicationsFromBill(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	medications, apierr := b.BillService.GetMedicationsFromBill(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"medications": medications}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBillRoute) AddMedicationsToBill(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.AddMedicationsToBillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	medications, apierr := b.BillService.AddMedicationsToBill(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"medications": medications}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBillRoute) RemoveMedicationFromBill(c echo.Context) error {
	billID, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	medicationID, apierr := parseIDParam(c, "medicationId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := b.BillService.RemoveMedicationFromBill(c.Request().Context(), billID, medicationID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (b *DefaultBillRoute) GetPaymentFromBill(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	payment, apierr := b.BillService.GetPaymentFromBill(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, payment)
}

func (b *DefaultBillRoute) RegisterPaymentToBill(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.RegisterPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	payment, apierr := b.BillService.RegisterPaymentToBill(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, payment)
}
