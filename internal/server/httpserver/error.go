package httpserver

import (
	"errors"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/flog"
	"eag.dev/backend/internal/pkg/middlewares"
)

func handleCustomError(ctx *fiber.Ctx, e *apierr.APIError) error {
	flog.WarnFrom(ctx).
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var pe *apierr.APIError
	if errors.As(err, &pe) {
		return handleCustomError(ctx, pe)
	}

	// Default 500 statuscode
	re := *apierr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, &re)
		}
	}

	flog.ErrorFrom(ctx).
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if identity := middlewares.IdentityFromCtx(ctx); !identity.IsAnonymous() {
			hub.Scope().SetUser(sentry.User{
				ID: strconv.FormatInt(identity.AccountID, 10),
			})
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
