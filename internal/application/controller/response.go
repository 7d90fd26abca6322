package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/msg"
	"go-taskflow/pkg/util/numberutils"
)

// errorJSON writes err as {"error": message} with the status matching its kind
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func invalidBody(c echo.Context) error {
	return badRequest(c, msg.GetMessage("app.invalid-body"))
}

// pathID reads a positive int64 path parameter
func pathID(c echo.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := numberutils.ToInt64WithError(value)
	if err != nil || !numberutils.IsInt64Positive(id) {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context, name string) error {
	return badRequest(c, msg.GetMessage("app.invalid-id", c.Param(name)))
}
