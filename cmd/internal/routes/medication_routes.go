package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/service"
	"mydoc/cmd/internal/utils/apierror"
)

type MedicationService interface {
	GetMedications(ctx context.Context) ([]*service.MedicationResponse, apierror.ErrorResponse)
	GetMedication(ctx context.Context, id uuid.UUID) (*service.MedicationResponse, apierror.ErrorResponse)
	CreateMedication(ctx context.Context, req *service.CreateMedicationRequest) (*service.MedicationResponse, apierror.ErrorResponse)
	UpdateMedication(ctx context.Context, id uuid.UUID, req *service.CreateMedicationRequest) (*service.MedicationResponse, apierror.ErrorResponse)
	DeleteMedication(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
}

type DefaultMedicationRoute struct {
	MedicationService MedicationService
}

func NewMedicationDefault(medicationService MedicationService) *DefaultMedicationRoute {
	return &DefaultMedicationRoute{MedicationService: medicationService}
}

func (m *DefaultMedicationRoute) GetMedications(c echo.Context) error {
	medications, apierr := m.MedicationService.GetMedications(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"medications": medications}
	return c.JSON(http.StatusOK, &resp)
}

func (m *DefaultMedicationRoute) GetMedication(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	medication, apierr := m.MedicationService.GetMedication(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, medication)
}

func (m *DefaultMedicationRoute) CreateMedication(c echo.Context) error {
	var req service.CreateMedicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	medication, apierr := m.MedicationService.CreateMedication(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, medication)
}

func (m *DefaultMedicationRoute) UpdateMedication(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.CreateMedicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	medication, apierr := m.MedicationService.UpdateMedication(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, medication)
}

func (m *DefaultMedicationRoute) DeleteMedication(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := m.MedicationService.DeleteMedication(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
