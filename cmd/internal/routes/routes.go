package routes

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/utils/apierror"
)

func parseIDParam(c echo.Context, name string) (uuid.UUID, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return uuid.Nil, apierror.NewMissingParamError(name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.NewSimple(400, "ID is not a valid UUID")
	}
	return id, nil
}
