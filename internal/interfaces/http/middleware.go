package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/agency-web/internal/infrastructure/restapi"
	"github.com/jhoicas/agency-web/pkg/i18n"
	"github.com/jhoicas/agency-web/pkg/logger"
)

const (
	LocalRequestID  = "request_id"
	LocalLogger     = "logger"
	LocalLang       = "lang"
	LocalTranslator = "translator"
	LocalFlash      = "flash"

	headerRequestID = "X-Request-ID"
	flashCookie     = "flash"
)

// RequestLogger asigna un X-Request-ID (o respeta el entrante), lo propaga al backend
// y registra cada petición con su latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(headerRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Locals(LocalRequestID, id)
		reqLog := log.WithRequestID(id)
		c.Locals(LocalLogger, reqLog)
		c.SetUserContext(restapi.WithRequestID(c.UserContext(), id))

		err := c.Next()
		if err != nil {
			// El ErrorHandler escribe la respuesta; aquí solo se registra el código final.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}

// GetLogger logger de la petición; si no hay middleware devuelve uno que descarta.
func GetLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(LocalLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}

// RootRedirect envía "/" al idioma preferido del navegador.
func RootRedirect(fallback i18n.Lang) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := i18n.Negotiate(c.Get(fiber.HeaderAcceptLanguage), fallback)
		return c.Redirect("/"+lang.String()+"/", fiber.StatusFound)
	}
}

// LangMiddleware fija el idioma a partir del prefijo /:lang. Un prefijo desconocido es 404.
func LangMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, ok := i18n.Parse(c.Params("lang"))
		if !ok {
			return fiber.ErrNotFound
		}
		c.Locals(LocalLang, lang)
		c.Locals(LocalTranslator, i18n.NewTranslator(lang))
		c.Set(fiber.HeaderContentLanguage, lang.String())
		return c.Next()
	}
}

// GetLang idioma de la petición (inglés si aún no pasó por LangMiddleware).
func GetLang(c *fiber.Ctx) i18n.Lang {
	if l, ok := c.Locals(LocalLang).(i18n.Lang); ok {
		return l
	}
	return i18n.English
}

// GetTranslator traductor de mensajes de la interfaz para la petición.
func GetTranslator(c *fiber.Ctx) *i18n.Translator {
	if t, ok := c.Locals(LocalTranslator).(*i18n.Translator); ok {
		return t
	}
	return i18n.NewTranslator(GetLang(c))
}

// Flash mensaje de una sola lectura que sobrevive a un redirect (toast).
type Flash struct {
	Kind string // success | error
	Key  string // clave del catálogo i18n
}

// FlashMiddleware consume la cookie flash y la deja en c.Locals para la vista.
func FlashMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(flashCookie); raw != "" {
			if kind, key, ok := strings.Cut(raw, ":"); ok && (kind == "success" || kind == "error") {
				c.Locals(LocalFlash, &Flash{Kind: kind, Key: key})
			}
			c.ClearCookie(flashCookie)
		}
		return c.Next()
	}
}

// SetFlash programa un mensaje para la siguiente página.
func SetFlash(c *fiber.Ctx, kind, key string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    kind + ":" + key,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   60,
	})
}

// GetFlash mensaje pendiente de la petición actual, si lo hay.
func GetFlash(c *fiber.Ctx) *Flash {
	f, _ := c.Locals(LocalFlash).(*Flash)
	return f
}
