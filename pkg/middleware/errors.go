package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"agbrain/pkg/apperr"
	"agbrain/pkg/logger"
)

// ErrorHandler renders every error as {statusCode, message, error}.
// Classified domain errors keep their status; anything else is a 500 and
// gets logged.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := http.StatusText(status)
		var ae *apperr.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			status = ae.Status
			msg = ae.Error()
		case errors.As(err, &he):
			status = he.Code
			msg = fmt.Sprint(he.Message)
		default:
			log.Error("unhandled error",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"err", err,
			)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, echo.Map{
				"statusCode": status,
				"message":    msg,
				"error":      http.StatusText(status),
			})
		}
		if werr != nil {
			log.Warn("write error response", "err", werr)
		}
	}
}
