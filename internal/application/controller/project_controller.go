package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-taskflow/internal/domain/model"
	"go-taskflow/internal/domain/usecase/project"
)

type ProjectController struct {
	api     *echo.Group
	useCase project.UseCase
}

func NewProjectController(api *echo.Group, useCase project.UseCase) *ProjectController {
	return &ProjectController{api: api, useCase: useCase}
}

// InitProjectRoutes initializes project routes
func (controller *ProjectController) InitProjectRoutes() {
	controller.api.GET("/projects", controller.FindAll)
	controller.api.GET("/projects/:id", controller.FindByID)
	controller.api.GET("/projects/:id/tasks", controller.FindTasks)
	controller.api.POST("/projects", controller.Create)
	controller.api.PUT("/projects/:id", controller.Update)
	controller.api.DELETE("/projects/:id", controller.Delete)
}

// FindAll godoc
// @Summary List projects
// @Description Every project carries its task count. With withTasks=true each project embeds its tasks.
// @Tags projects
// @Produce json
// @Param withTasks query bool false "Embed the tasks of each project"
// @Success 200 {array} entity.Project
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [get]
func (controller *ProjectController) FindAll(c echo.Context) error {
	if c.QueryParam("withTasks") == "true" {
		groups, err := controller.useCase.FindAllWithTasks(c.Request().Context())
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, groups)
	}

	projects, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

// FindByID godoc
// @Summary Get project by id
// @Tags projects
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {object} entity.Project
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id} [get]
func (controller *ProjectController) FindByID(c echo.Context) error {
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

// FindTasks godoc
// @Summary List the tasks of a project
// @Tags projects
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {array} entity.Task
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id}/tasks [get]
func (controller *ProjectController) FindTasks(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	tasks, err := controller.useCase.FindTasks(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body model.CreateProjectDTO true "Project data"
// @Success 201 {object} entity.Project
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /projects [post]
func (controller *ProjectController) Create(c echo.Context) error {
	var dto model.CreateProjectDTO
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
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param project body model.UpdateProjectDTO true "Fields to change"
// @Success 200 {object} entity.Project
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id} [put]
func (controller *ProjectController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var dto model.UpdateProjectDTO
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
// @Summary Delete a project
// @Description The tasks of the project are kept
// @Tags projects
// @Param id path int true "Project id"
// @Success 204 "Project deleted"
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id} [delete]
func (controller *ProjectController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	if err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
