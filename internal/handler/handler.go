package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prophetofdie/shop-backoffice/internal/query"
)

// Handler serves the back-office read API on top of the query engine.
type Handler struct {
	engine *query.Engine
}

// New builds a Handler around a query engine.
func New(engine *query.Engine) *Handler {
	return &Handler{engine: engine}
}

// statusFor maps engine errors to HTTP status codes. Missing references are
// integrity faults and surface as 500, not as user errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, query.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, query.ErrMissingReference):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c echo.Context, err error, message string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return c.JSON(status, echo.Map{"error": message})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
