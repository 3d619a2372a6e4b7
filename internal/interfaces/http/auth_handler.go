package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/auth"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
)

// SessionCookie opciones de la cookie de sesión del panel.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler maneja login y logout (formulario HTML y API JSON).
type AuthHandler struct {
	uc       *auth.AuthUseCase
	cookie   SessionCookie
	siteName string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookie, siteName string) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, siteName: siteName}
}

func (h *AuthHandler) adminHome(c *fiber.Ctx) string {
	return "/" + GetLang(c).String() + "/admin"
}

// LoginPage muestra el formulario; con sesión de admin va directo al destino.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	next := auth.SafeNext(c.Query("next"), h.adminHome(c))
	if GetRole(c) == "admin" {
		return c.Redirect(next, fiber.StatusSeeOther)
	}
	p := pageFor(c, h.siteName, GetTranslator(c).T("login.title"))
	return render(c, views.LoginPage(p, "", next, ""))
}

// Login valida contra el backend, fija la cookie de sesión y redirige a ?next.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	next := auth.SafeNext(in.Next, h.adminHome(c))
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		errKey := "login.invalid"
		status := fiber.StatusUnauthorized
		switch {
		case errors.Is(err, domain.ErrForbidden):
			errKey, status = "login.forbidden", fiber.StatusForbidden
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotFound):
		default:
			return err
		}
		GetLogger(c).Info().Str("email", in.Email).Msg("login rechazado")
		c.Status(status)
		p := pageFor(c, h.siteName, GetTranslator(c).T("login.title"))
		return render(c, views.LoginPage(p, in.Email, next, errKey))
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(out.ExpiresIn) * time.Second),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	GetLogger(c).Info().Str("user_id", out.User.ID).Msg("sesión iniciada")
	return c.Redirect(next, fiber.StatusSeeOther)
}

// Logout borra la cookie y vuelve a la portada.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/"+GetLang(c).String()+"/", fiber.StatusSeeOther)
}

// APILogin godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) APILogin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrUnauthorized
		}
		return jsonError(c, err)
	}
	return c.JSON(out)
}
