package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/command"
	"mydoc/cmd/internal/utils/apierror"
)

// DefaultPatientRoute dispatches to the patient command and query handlers
// instead of a service facade.
type DefaultPatientRoute struct {
	Create           *command.CreatePatientHandler
	List             *command.ListPatientsHandler
	ListAppointments *command.ListPatientAppointmentsHandler
	Delete           *command.DeletePatientHandler
}

func (p *DefaultPatientRoute) GetPatients(c echo.Context) error {
	patients, apierr := p.List.Handle(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"patients": patients}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPatientRoute) CreatePatient(c echo.Context) error {
	var cmd command.CreatePatientCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	patient, apierr := p.Create.Handle(c.Request().Context(), &cmd)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, patient)
}

func (p *DefaultPatientRoute) GetAppointmentsFromPatient(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	appointments, apierr := p.ListAppointments.Handle(c.Request().Context(), &command.ListPatientAppointmentsQuery{PatientID: id})
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appointments}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPatientRoute) DeletePatient(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := p.Delete.Handle(c.Request().Context(), &command.DeletePatientCommand{PatientID: id}); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
