package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-taskflow/internal/domain/model"
	"go-taskflow/internal/domain/usecase/task"
)

const defaultTaskPageSize = 20

type TaskController struct {
	api     *echo.Group
	useCase task.UseCase
	bulk    []echo.MiddlewareFunc
}

// NewTaskController builds the task routes. bulk middlewares, such as the rate limiter,
// only wrap the bulk endpoints.
func NewTaskController(api *echo.Group, useCase task.UseCase, bulk ...echo.MiddlewareFunc) *TaskController {
	return &TaskController{api: api, useCase: useCase, bulk: bulk}
}

// InitTaskRoutes initializes task routes
func (controller *TaskController) InitTaskRoutes() {
	controller.api.GET("/tasks", controller.FindAll)
	controller.api.GET("/tasks/:id", controller.FindByID)
	controller.api.GET("/tasks/:id/highlight", controller.Highlight)
	controller.api.POST("/tasks", controller.Create)
	controller.api.PUT("/tasks/:id", controller.Update)
	controller.api.PATCH("/tasks/:id/toggle", controller.ToggleComplete)
	controller.api.DELETE("/tasks/:id", controller.Delete)

	bulk := controller.api.Group("/tasks/bulk", controller.bulk...)
	bulk.POST("/complete", controller.BulkComplete)
	bulk.POST("/delete", controller.BulkDelete)
	bulk.POST("/move", controller.BulkMove)
}

// FindAll godoc
// @Summary List tasks
// @Description Filter, search, sort and paginate tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Param status query string false "all, pending, completed, overdue or today"
// @Param priority query string false "low, medium or high"
// @Param projectId query int false "Project id"
// @Param q query string false "Search term"
// @Param fields query []string false "Search fields: title, description, project"
// @Param fuzzy query bool false "Use fuzzy matching"
// @Param threshold query number false "Fuzzy similarity threshold (0.3 to 0.9)"
// @Param sort query string false "priority, deadline or created"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} model.Page[entity.Task] "Paginated list of tasks"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks [get]
func (controller *TaskController) FindAll(c echo.Context) error {
	query := model.TaskQuery{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		Search:   c.QueryParam("q"),
		Sort:     c.QueryParam("sort"),
		Fields:   c.QueryParams()["fields"],
		Size:     defaultTaskPageSize,
	}
	err := echo.QueryParamsBinder(c).
		Int64("projectId", &query.ProjectID).
		Bool("fuzzy", &query.Fuzzy).
		Float64("threshold", &query.Threshold).
		Int("page", &query.Page).
		Int("size", &query.Size).
		BindError()
	if err != nil {
		if bindErr, ok := err.(*echo.BindingError); ok {
			return badRequest(c, "Invalid query parameter "+bindErr.Field)
		}
		return badRequest(c, err.Error())
	}

	page, err := controller.useCase.FindAll(c.Request().Context(), query)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// FindByID godoc
// @Summary Get task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} entity.Task
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [get]
func (controller *TaskController) FindByID(c echo.Context) error {
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

// Highlight godoc
// @Summary Highlight search matches
// @Description Returns the [start, end) rune ranges of the title and description matching q
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Param q query string true "Search term"
// @Success 200 {object} model.TaskHighlight
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id}/highlight [get]
func (controller *TaskController) Highlight(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	highlight, err := controller.useCase.Highlight(c.Request().Context(), id, c.QueryParam("q"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, highlight)
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body model.CreateTaskDTO true "Task data"
// @Success 201 {object} entity.Task
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks [post]
func (controller *TaskController) Create(c echo.Context) error {
	var dto model.CreateTaskDTO
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
// @Summary Update a task
// @Description Only the fields present in the body are changed
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param task body model.UpdateTaskDTO true "Fields to change"
// @Success 200 {object} entity.Task
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [put]
func (controller *TaskController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var dto model.UpdateTaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	updated, err := controller.useCase.Update(c.Request().Context(), id, dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// ToggleComplete godoc
// @Summary Toggle task completion
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} entity.Task
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id}/toggle [patch]
func (controller *TaskController) ToggleComplete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	toggled, err := controller.useCase.ToggleComplete(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toggled)
}

// Delete godoc
// @Summary Delete a task and its subtasks
// @Tags tasks
// @Param id path int true "Task id"
// @Success 204 "Task deleted"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [delete]
func (controller *TaskController) Delete(c echo.Context) error {
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
// @Summary Complete several tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Param body body model.BulkTaskDTO true "Selected task ids"
// @Success 200 {object} model.BulkResultDTO
// @Failure 400 {object} map[string]string "Empty or unknown selection"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /tasks/bulk/complete [post]
func (controller *TaskController) BulkComplete(c echo.Context) error {
	var dto model.BulkTaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	result, err := controller.useCase.BulkComplete(c.Request().Context(), dto.TaskIDs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// BulkDelete godoc
// @Summary Delete several tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Param body body model.BulkTaskDTO true "Selected task ids"
// @Success 200 {object} model.BulkResultDTO
// @Failure 400 {object} map[string]string "Empty or unknown selection"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /tasks/bulk/delete [post]
func (controller *TaskController) BulkDelete(c echo.Context) error {
	var dto model.BulkTaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	result, err := controller.useCase.BulkDelete(c.Request().Context(), dto.TaskIDs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// BulkMove godoc
// @Summary Move several tasks to a project
// @Tags tasks
// @Accept json
// @Produce json
// @Param body body model.BulkMoveTaskDTO true "Selected task ids and target project"
// @Success 200 {object} model.BulkResultDTO
// @Failure 400 {object} map[string]string "Empty selection or missing target"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /tasks/bulk/move [post]
func (controller *TaskController) BulkMove(c echo.Context) error {
	var dto model.BulkMoveTaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}
	result, err := controller.useCase.BulkMove(c.Request().Context(), dto.TaskIDs, dto.ProjectID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
