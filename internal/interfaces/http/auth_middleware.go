package http

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/infrastructure/restapi"
	"github.com/jhoicas/agency-web/pkg/jwt"
)

// Locals keys para los datos de la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"

	localSessionCookie = "session_cookie"
)

// AuthMiddleware valida el Bearer Token de sesión (API JSON) y carga la sesión en c.Locals.
// El token del backend queda en el UserContext para que restapi lo reenvíe.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		session, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		setSession(c, session)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permisos para este recurso"})
	}
}

// SessionMiddleware lee la cookie de sesión si existe. No bloquea: las páginas públicas
// solo la usan para mostrar el enlace al panel. Una cookie inválida se borra.
func SessionMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localSessionCookie, cookieName)
		raw := c.Cookies(cookieName)
		if raw == "" {
			return c.Next()
		}
		session, err := jwt.Parse(jwtSecret, raw)
		if err != nil {
			expireSession(c)
			return c.Next()
		}
		setSession(c, session)
		return c.Next()
	}
}

// RequireAdminPage protege las páginas del panel: sin sesión de admin redirige al login
// conservando la ruta pedida en ?next=.
func RequireAdminPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == "admin" {
			return c.Next()
		}
		return redirectToLogin(c, c.OriginalURL())
	}
}

func redirectToLogin(c *fiber.Ctx, next string) error {
	target := "/" + GetLang(c).String() + "/login?next=" + url.QueryEscape(next)
	return c.Redirect(target, fiber.StatusSeeOther)
}

// expireSession borra la cookie de sesión y los datos cargados en la petición,
// p. ej. cuando el backend rechaza el token guardado.
func expireSession(c *fiber.Ctx) {
	name, _ := c.Locals(localSessionCookie).(string)
	if name == "" {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(LocalUserID, "")
	c.Locals(LocalUserName, "")
	c.Locals(LocalRole, "")
}

func setSession(c *fiber.Ctx, s *jwt.Session) {
	c.Locals(LocalUserID, s.UserID)
	c.Locals(LocalUserName, s.Name)
	c.Locals(LocalRole, s.Role)
	c.SetUserContext(restapi.WithToken(c.UserContext(), s.APIToken))
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUserName nombre del usuario en sesión.
func GetUserName(c *fiber.Ctx) string {
	return localString(c, LocalUserName)
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
