package middleware

import (
	"errors"
	"net/http"

	"xmasGiftAI/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every unhandled error as {"message": "..."}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		logger.Error("Unhandled error", "path", c.Path(), "error", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, map[string]string{"message": message})
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", "error", writeErr)
	}
}
