package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-taskflow/internal/domain/entity"
	"go-taskflow/internal/domain/model"
	"go-taskflow/internal/domain/usecase/subtask"
	"go-taskflow/pkg/util/numberutils"
)

type SubtaskController struct {
	api     *echo.Group
	useCase subtask.UseCase
}

func NewSubtaskController(api *echo.Group, useCase subtask.UseCase) *SubtaskController {
	return &SubtaskController{api: api, useCase: useCase}
}

// InitSubtaskRoutes initializes subtask routes
func (controller *SubtaskController) InitSubtaskRoutes() {
	controller.api.GET("/subtasks", controller.FindAll)
	controller.api.GET("/subtasks/:id", controller.FindByID)
	controller.api.POST("/subtasks", controller.Create)
	controller.api.PUT("/subtasks/:id", controller.Update)
	controller.api.DELETE("/subtasks/:id", controller.Delete)
	controller.api.POST("/subtasks/bulk/complete", controller.BulkComplete)
	controller.api.POST("/subtasks/bulk/delete", controller.BulkDelete)
}

// FindAll godoc
// @Summary List subtasks
// @Tags subtasks
// @Produce json
// @Param taskId query int false "Only the subtasks of this task"
// @Success 200 {array} entity.Subtask
// @Failure 400 {object} map[string]string "Invalid task id"
// @Router /subtasks [get]
func (controller *SubtaskController) FindAll(c echo.Context) error {
	var subtasks []entity.Subtask
	var err error

	if taskID := c.QueryParam("taskId"); taskID != "" {
		id, convErr := numberutils.ToInt64WithError(taskID)
		if convErr != nil {
			return badRequest(c, "Invalid query parameter taskId")
		}
		subtasks, err = controller.useCase.FindByTaskID(c.Request().Context(), id)
	} else {
		subtasks, err = controller.useCase.FindAll(c.Request().Context())
	}

	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, subtasks)
}

// FindByID godoc
// @Summary Get subtask by id
// @Tags subtasks
// @Produce json
// @Param id path int true "Subtask id"
// @Success 200 {object} entity.Subtask
// @Failure 404 {object} map[string]string "Subtask not found"
// @Router /subtasks/{id} [get]
func (controller *SubtaskController) FindByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// Create godoc
// @Summary Create a subtask
// @Tags subtasks
// @Accept json
// @Produce json
// @Param subtask body model.CreateSubtaskDTO true "Subtask data"
// @Success 201 {object} entity.Subtask
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /subtasks [post]
func (controller *SubtaskController) Create(c echo.Context) error {
	var dto model.CreateSubtaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a subtask
// @Tags subtasks
// @Accept json
// @Produce json
// @Param id path int true "Subtask id"
// @Param subtask body model.UpdateSubtaskDTO true "Fields to change"
// @Success 200 {object} entity.Subtask
// @Failure 404 {object} map[string]string "Subtask not found"
// @Router /subtasks/{id} [put]
func (controller *SubtaskController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var dto model.UpdateSubtaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	updated, err := controller.useCase.Update(c.Request().Context(), id, dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a subtask
// @Tags subtasks
// @Param id path int true "Subtask id"
// @Success 204 "Subtask deleted"
// @Failure 404 {object} map[string]string "Subtask not found"
// @Router /subtasks/{id} [delete]
func (controller *SubtaskController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	if err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// BulkComplete godoc
// @Summary Complete several subtasks
// @Tags subtasks
// @Accept json
// @Produce json
// @Param body body model.BulkSubtaskDTO true "Selected subtask ids"
// @Success 200 {array} entity.Subtask
// @Failure 400 {object} map[string]string "Empty or unknown selection"
// @Router /subtasks/bulk/complete [post]
func (controller *SubtaskController) BulkComplete(c echo.Context) error {
	var dto model.BulkSubtaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	completed, err := controller.useCase.BulkComplete(c.Request().Context(), dto.SubtaskIDs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, completed)
}

// BulkDelete godoc
// @Summary Delete several subtasks
// @Tags subtasks
// @Accept json
// @Produce json
// @Param body body model.BulkSubtaskDTO true "Selected subtask ids"
// @Success 200 {object} model.BulkResultDTO
// @Failure 400 {object} map[string]string "Empty or unknown selection"
// @Router /subtasks/bulk/delete [post]
func (controller *SubtaskController) BulkDelete(c echo.Context) error {
	var dto model.BulkSubtaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	deleted, err := controller.useCase.BulkDelete(c.Request().Context(), dto.SubtaskIDs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, model.BulkResultDTO{DeletedCount: deleted})
}
