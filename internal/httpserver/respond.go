package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amribrahim/goshop/internal/service"
	"github.com/amribrahim/goshop/internal/transport"
)

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, transport.Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// respondError translates the service error taxonomy into the
// envelope. Unrecognized errors become opaque 500s.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	return c.JSON(status, transport.Response{
		Status:  status,
		Message: message,
	})
}
