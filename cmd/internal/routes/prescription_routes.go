package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/command"
	"mydoc/cmd/internal/utils/apierror"
)

type DefaultPrescriptionRoute struct {
	Create      *command.CreatePrescriptionHandler
	List        *command.ListPrescriptionsHandler
	ListDosages *command.ListPrescriptionDosagesHandler
	Delete      *command.DeletePrescriptionHandler
}

func (p *DefaultPrescriptionRoute) GetPrescriptions(c echo.Context) error {
	prescriptions, apierr := p.List.Handle(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"prescriptions": prescriptions}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPrescriptionRoute) CreatePrescription(c echo.Context) error {
	var cmd command.CreatePrescriptionCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	prescription, apierr := p.Create.Handle(c.Request().Context(), &cmd)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, prescription)
}

func (p *DefaultPrescriptionRoute) GetMedicationsFromPrescription(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	dosages, apierr := p.ListDosages.Handle(c.Request().Context(), &command.ListPrescriptionDosagesQuery{PrescriptionID: id})
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"dosages": dosages}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPrescriptionRoute) DeletePrescription(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := p.Delete.Handle(c.Request().Context(), &command.DeletePrescriptionCommand{PrescriptionID: id}); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
