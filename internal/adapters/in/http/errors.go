package http

import (
	"errors"
	"net/http"

	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response written by this package.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the body of responses that carry only a confirmation text,
// such as a successful delete.
type Message struct {
	Message string `json:"message"`
}

// statusOf maps an application error onto an HTTP status. Anything that is not
// one of the errs sentinels is an internal failure.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(status, Error{Code: status, Message: "Internal server error"})
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}
