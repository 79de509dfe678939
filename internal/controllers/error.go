package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/promptgate/promptgate/pkg/models"
)

// ErrorHandler renders coded errors as the stable {reason, message} JSON
// body. Cancelled requests get no body, the client is gone.
func ErrorHandler(err error, c echo.Context) {
	httpErr := &echo.HTTPError{}
	if errors.As(err, &httpErr) {
		c.Echo().DefaultHTTPErrorHandler(err, c)
		return
	}

	if c.Response().Committed {
		return
	}

	em := &models.ErrorMessage{}
	if errors.As(err, &em) {
		if em.Code() == models.StatusRequestCancelled {
			_ = c.NoContent(models.StatusRequestCancelled)
			return
		}
		_ = c.JSON(em.Code(), em)
		return
	}

	code := http.StatusInternalServerError
	if e, ok := unwrapErrorWithCode(err); ok {
		code = e.Code()
	}
	_ = c.JSON(code, models.NewErrorMessage(code, models.ReasonInternalError, err))
}

func unwrapErrorWithCode(err error) (models.ErrorWithCode, bool) {
	var e models.ErrorWithCode
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
