package http

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agency-web/internal/domain"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fiber.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{fiber.ErrBadRequest, fiber.StatusBadRequest, "HTTP_ERROR"},
		{&domain.ValidationError{Fields: map[string]string{"titleEn": "required"}}, fiber.StatusBadRequest, "VALIDATION"},
		{fmt.Errorf("servicio: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{domain.ErrTranslationUnavailable, fiber.StatusServiceUnavailable, "AI_UNAVAILABLE"},
		{fmt.Errorf("backend: %w", context.DeadlineExceeded), fiber.StatusGatewayTimeout, "TIMEOUT"},
		{fmt.Errorf("backend GET /service: %w", domain.ErrUpstream), fiber.StatusBadGateway, "UPSTREAM"},
		{fmt.Errorf("otra cosa"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code := statusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestErrorResponse_IncluyeCampos(t *testing.T) {
	resp := errorResponse(&domain.ValidationError{Fields: map[string]string{"email": "email"}}, "VALIDATION")
	assert.Equal(t, "VALIDATION", resp.Code)
	assert.Equal(t, map[string]string{"email": "email"}, resp.Fields)
}

func TestErrorResponse_5xxNoExponeDetalle(t *testing.T) {
	err := fmt.Errorf("backend GET /advertisement: %w: dial tcp 10.0.0.5:27017", domain.ErrUpstream)
	resp := errorResponse(err, "UPSTREAM")
	assert.Equal(t, "UPSTREAM", resp.Code)
	assert.NotContains(t, resp.Message, "10.0.0.5")
	assert.NotEmpty(t, resp.Message)

	resp = errorResponse(errors.New("pánico interno"), "INTERNAL")
	assert.NotContains(t, resp.Message, "pánico")

	resp = errorResponse(fmt.Errorf("servicio: %w", domain.ErrNotFound), "NOT_FOUND")
	assert.Contains(t, resp.Message, "servicio", "los 4xx conservan el mensaje")
}

func TestStrippedPath(t *testing.T) {
	assert.Equal(t, "/", strippedPath("/en", "en"))
	assert.Equal(t, "/", strippedPath("/en/", "en"))
	assert.Equal(t, "/services/s1", strippedPath("/ar/services/s1", "ar"))
	assert.Equal(t, "/english", strippedPath("/english", "en"), "solo se quita el segmento completo")
	assert.Equal(t, "/health", strippedPath("/health", "en"))
}
