package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/service"
	"mydoc/cmd/internal/utils/apierror"
)

type HospitalService interface {
	GetHospitals(ctx context.Context) ([]*service.HospitalResponse, apierror.ErrorResponse)
	CreateHospital(ctx context.Context, req *service.CreateHospitalRequest) (*service.HospitalResponse, apierror.ErrorResponse)
	DeleteHospital(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
	GetDoctorsFromHospital(ctx context.Context, hospitalID uuid.UUID) ([]*service.DoctorResponse, apierror.ErrorResponse)
	AddDoctorsToHospital(ctx context.Context, hospitalID uuid.UUID, reqs []*service.CreateDoctorRequest) ([]*service.DoctorResponse, apierror.ErrorResponse)
}

type DefaultHospitalRoute struct {
	HospitalService HospitalService
}

func NewHospitalDefault(hospitalService HospitalService) *DefaultHospitalRoute {
	return &DefaultHospitalRoute{HospitalService: hospitalService}
}

func (h *DefaultHospitalRoute) GetHospitals(c echo.Context) error {
	hospitals, apierr := h.HospitalService.GetHospitals(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"hospitals": hospitals}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultHospitalRoute) CreateHospital(c echo.Context) error {
	var req service.CreateHospitalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	hospital, apierr := h.HospitalService.CreateHospital(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, hospital)
}

func (h *DefaultHospitalRoute) DeleteHospital(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := h.HospitalService.DeleteHospital(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DefaultHospitalRoute) GetDoctorsFromHospital(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	doctors, apierr := h.HospitalService.GetDoctorsFromHospital(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"doctors": doctors}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultHospitalRoute) AddDoctorsToHospital(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var reqs []*service.CreateDoctorRequest
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doctors, apierr := h.HospitalService.AddDoctorsToHospital(c.Request().Context(), id, reqs)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"doctors": doctors}
	return c.JSON(http.StatusOK, &resp)
}
