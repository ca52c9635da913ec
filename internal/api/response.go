package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abhisek/kanado/internal/session"
	"github.com/abhisek/kanado/internal/store"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func okCount(c echo.Context, data any, count int) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Count: &count, Data: data})
}

func okMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Message: msg})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, envelope{Error: msg})
}

// fail translates service errors into the envelope, mapping the error
// taxonomy onto status codes. Unrecognized errors surface as opaque 500s.
func fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, session.ErrNoCards):
		status = http.StatusConflict
		msg = err.Error()
	}
	return c.JSON(status, envelope{Error: msg})
}
