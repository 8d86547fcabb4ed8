package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dserranox/blschool-intranet/internal/common"
	"github.com/dserranox/blschool-intranet/internal/logging"
)

var (
	errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errForbidden    = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// newHTTPErrorHandler maps domain sentinel errors onto HTTP status codes.
// Anything unrecognized is a 500 and gets logged.
func newHTTPErrorHandler(logger logging.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		var httpErr *echo.HTTPError
		var fieldErrs validator.ValidationErrors

		switch {
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = httpErr.Message

		case errors.As(err, &fieldErrs):
			fields := make(map[string]string, len(fieldErrs))
			for _, fErr := range fieldErrs {
				fields[fErr.Field()] = fErr.Tag()
			}
			code = http.StatusBadRequest
			message = fields

		case errors.Is(err, common.ErrorValidation):
			code = http.StatusBadRequest
			message = err.Error()

		case errors.Is(err, common.ErrorNotFound):
			code = http.StatusNotFound
			message = "not found"

		case errors.Is(err, common.ErrorAlreadyExists):
			code = http.StatusConflict
			message = "already exists"

		case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
			code = http.StatusUnauthorized
			message = "unauthorized"

		case errors.Is(err, common.ErrAccountInactive), errors.Is(err, common.ErrorForbidden):
			code = http.StatusForbidden
			message = err.Error()

		default:
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)
			logger.Error(ctx.Request().Context(), "request failed", "err", err.Error(), "path", ctx.Path())
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
