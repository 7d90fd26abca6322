package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"go-taskflow/internal/domain/model"
	"go-taskflow/internal/domain/usecase/recurrence"
)

type RecurrenceController struct {
	api     *echo.Group
	useCase recurrence.UseCase
}

func NewRecurrenceController(api *echo.Group, useCase recurrence.UseCase) *RecurrenceController {
	return &RecurrenceController{api: api, useCase: useCase}
}

// InitRecurrenceRoutes initializes recurring series routes
func (controller *RecurrenceController) InitRecurrenceRoutes() {
	controller.api.POST("/recurrences", controller.CreateSeries)
	controller.api.POST("/recurrences/preview", controller.Preview)
	controller.api.POST("/recurrences/:recurringId/extend", controller.ExtendSeries)
	controller.api.DELETE("/recurrences/:recurringId", controller.StopSeries)
}

// CreateSeries godoc
// @Summary Create a recurring series
// @Description Creates one task per occurrence from the first deadline up to the horizon
// @Tags recurrences
// @Accept json
// @Produce json
// @Param series body model.CreateSeriesDTO true "Task template and pattern"
// @Success 201 {object} model.SeriesDTO
// @Failure 400 {object} map[string]string "Invalid pattern or task"
// @Router /recurrences [post]
func (controller *RecurrenceController) CreateSeries(c echo.Context) error {
	var dto model.CreateSeriesDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	series, err := controller.useCase.CreateSeries(c.Request().Context(), dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, series)
}

// Preview godoc
// @Summary Preview occurrence dates
// @Tags recurrences
// @Accept json
// @Produce json
// @Param preview body model.PreviewDTO true "Pattern, start and count"
// @Success 200 {array} string "Occurrence dates"
// @Failure 400 {object} map[string]string "Invalid pattern"
// @Router /recurrences/preview [post]
func (controller *RecurrenceController) Preview(c echo.Context) error {
	var dto model.PreviewDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	dates, err := controller.useCase.Preview(dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dates)
}

// ExtendSeries godoc
// @Summary Extend a recurring series up to the horizon
// @Tags recurrences
// @Produce json
// @Param recurringId path string true "Series id"
// @Success 200 {object} model.SeriesDTO "The created occurrences"
// @Failure 404 {object} map[string]string "Series not found"
// @Router /recurrences/{recurringId}/extend [post]
func (controller *RecurrenceController) ExtendSeries(c echo.Context) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	series, err := controller.useCase.ExtendSeries(c.Request().Context(), c.Param("recurringId"), requestID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, series)
}

// StopSeries godoc
// @Summary Stop a recurring series
// @Description Deletes the pending occurrences due after now
// @Tags recurrences
// @Produce json
// @Param recurringId path string true "Series id"
// @Success 200 {object} model.StopSeriesDTO
// @Failure 404 {object} map[string]string "Series not found"
// @Router /recurrences/{recurringId} [delete]
func (controller *RecurrenceController) StopSeries(c echo.Context) error {
	stopped, err := controller.useCase.StopSeries(c.Request().Context(), c.Param("recurringId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, stopped)
}
