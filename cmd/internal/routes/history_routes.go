package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mydoc/cmd/internal/service"
	"mydoc/cmd/internal/utils/apierror"
)

type HistoryService interface {
	GetHistories(ctx context.Context) ([]*service.HistoryResponse, apierror.ErrorResponse)
	CreateHistory(ctx context.Context, req *service.CreateHistoryRequest) (*service.HistoryResponse, apierror.ErrorResponse)
	DeleteHistory(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
	GetMedicationsFromHistory(ctx context.Context, historyID uuid.UUID) ([]*service.HistoryDosageResponse, apierror.ErrorResponse)
}

type DefaultHistoryRoute struct {
	HistoryService HistoryService
}

func NewHistoryDefault(historyService HistoryService) *DefaultHistoryRoute {
	return &DefaultHistoryRoute{HistoryService: historyService}
}

func (h *DefaultHistoryRoute) GetHistories(c echo.Context) error {
	histories, apierr := h.HistoryService.GetHistories(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"histories": histories}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultHistoryRoute) CreateHistory(c echo.Context) error {
	var req service.CreateHistoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	history, apierr := h.HistoryService.CreateHistory(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, history)
}

func (h *DefaultHistoryRoute) GetMedicationsFromHistory(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	dosages, apierr := h.HistoryService.GetMedicationsFromHistory(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"dosages": dosages}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultHistoryRoute) DeleteHistory(c echo.Context) error {
	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := h.HistoryService.DeleteHistory(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
