package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/service"
	"mydoc/cmd/internal/utils/apierror"
)

type DoctorService interface {
	GetDoctors(ctx context.Context) ([]*service.DoctorResponse, apierror.ErrorResponse)
	CreateDoctor(ctx context.Context, req *service.CreateDoctorRequest) (*service.DoctorResponse, apierror.ErrorResponse)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *service.CreateDoctorRequest) (*service.DoctorResponse, apierror.ErrorResponse)
	DeleteDoctor(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
	GetAppointmentsFromDoctor(ctx context.Context, doctorID uuid.UUID) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	AddAppointmentsToDoctor(ctx context.Context, doctorID uuid.UUID, reqs []*service.DoctorAppointmentRequest) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	AddReviewToDoctor(ctx context.Context, doctorID uuid.UUID, req *service.CreateReviewRequest) (*service.DoctorResponse, apierror.ErrorResponse)
}

type DefaultDoctorRoute struct {
	DoctorService DoctorService
}

func NewDoctorDefault(doctorService DoctorService) *DefaultDoctorRoute {
	return &DefaultDoctorRoute{DoctorService: doctorService}
}

func (d *DefaultDoctorRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.GetDoctors(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"doctors": doctors}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDoctorRoute) CreateDoctor(c echo.Context) error {
	var req service.CreateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doctor, apierr := d.DoctorService.CreateDoctor(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, doctor)
}

func (d *DefaultDoctorRoute) UpdateDoctor(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.CreateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doctor, apierr := d.DoctorService.UpdateDoctor(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctor)
}

func (d *DefaultDoctorRoute) DeleteDoctor(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := d.DoctorService.DeleteDoctor(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (d *DefaultDoctorRoute) GetAppointmentsFromDoctor(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	appts, apierr := d.DoctorService.GetAppointmentsFromDoctor(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDoctorRoute) AddAppointmentsToDoctor(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var reqs []*service.DoctorAppointmentRequest
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appts, apierr := d.DoctorService.AddAppointmentsToDoctor(c.Request().Context(), id, reqs)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDoctorRoute) AddReviewToDoctor(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doctor, apierr := d.DoctorService.AddReviewToDoctor(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctor)
}
