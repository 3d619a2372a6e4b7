package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// statusFor traduce un error de dominio a código HTTP y código de error de la API.
func statusFor(err error) (int, string) {
	var ferr *fiber.Error
	switch {
	case errors.As(err, &ferr):
		switch ferr.Code {
		case fiber.StatusNotFound:
			return ferr.Code, "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			return ferr.Code, "METHOD_NOT_ALLOWED"
		}
		return ferr.Code, "HTTP_ERROR"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrTranslationUnavailable):
		return fiber.StatusServiceUnavailable, "AI_UNAVAILABLE"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "TIMEOUT"
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, "UPSTREAM"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// errorResponse cuerpo JSON de error; incluye los campos inválidos de un formulario.
// Los errores 5xx llevan un mensaje genérico: el detalle solo va al log.
func errorResponse(err error, code string) dto.ErrorResponse {
	status, _ := statusFor(err)
	msg := err.Error()
	if status >= fiber.StatusInternalServerError {
		msg = genericMessage(status)
	}
	resp := dto.ErrorResponse{Code: code, Message: msg}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Fields
	}
	return resp
}

func genericMessage(status int) string {
	tr := i18n.NewTranslator(i18n.English)
	switch status {
	case fiber.StatusBadGateway, fiber.StatusGatewayTimeout, fiber.StatusServiceUnavailable:
		return tr.T("error.unavailable")
	}
	return tr.T("common.error")
}

// jsonError responde un error de la API /api/v1.
func jsonError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		GetLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error en API")
	}
	return c.Status(status).JSON(errorResponse(err, code))
}

// ErrorHandler manejador global de Fiber: JSON bajo /api y página HTML en el resto.
func ErrorHandler(siteName string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			GetLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(status).JSON(errorResponse(err, code))
		}
		if status == fiber.StatusUnauthorized {
			expireSession(c)
			if strings.HasPrefix(strippedPath(c.Path(), GetLang(c).String()), "/admin") {
				return redirectToLogin(c, c.OriginalURL())
			}
		}
		tr := GetTranslator(c)
		msg := tr.T("common.error")
		switch status {
		case fiber.StatusNotFound:
			msg = tr.T("common.notfound")
		case fiber.StatusBadGateway, fiber.StatusGatewayTimeout, fiber.StatusServiceUnavailable:
			msg = tr.T("error.unavailable")
		}
		c.Status(status)
		return render(c, views.ErrorPage(pageFor(c, siteName, tr.T("error.title")), status, msg))
	}
}
