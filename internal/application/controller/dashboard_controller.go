package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"go-taskflow/internal/domain/usecase/dashboard"
	"go-taskflow/pkg/util/numberutils"
)

type DashboardController struct {
	api     *echo.Group
	useCase dashboard.UseCase
}

func NewDashboardController(api *echo.Group, useCase dashboard.UseCase) *DashboardController {
	return &DashboardController{api: api, useCase: useCase}
}

// InitDashboardRoutes initializes dashboard and calendar routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/dashboard", controller.Overview)
	controller.api.GET("/dashboard/stats", controller.Stats)
	controller.api.GET("/calendar/:year/:month", controller.Calendar)
}

// Overview godoc
// @Summary Dashboard overview
// @Description Stats, project progress, today, overdue and the next 7 days
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.DashboardOverview
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (controller *DashboardController) Overview(c echo.Context) error {
	overview, err := controller.useCase.Overview(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}

// Stats godoc
// @Summary Task statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.TaskStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (controller *DashboardController) Stats(c echo.Context) error {
	stats, err := controller.useCase.Stats(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Calendar godoc
// @Summary Month calendar grid
// @Description Six weeks starting on the Sunday on or before the first of the month
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} model.CalendarMonth
// @Failure 400 {object} map[string]string "Invalid month"
// @Router /calendar/{year}/{month} [get]
func (controller *DashboardController) Calendar(c echo.Context) error {
	year, err := numberutils.ToIntWithError(c.Param("year"))
	if err != nil {
		return invalidID(c, "year")
	}
	month, err := numberutils.ToIntWithError(c.Param("month"))
	if err != nil {
		return invalidID(c, "month")
	}

	grid, err := controller.useCase.Calendar(c.Request().Context(), year, time.Month(month))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, grid)
}
