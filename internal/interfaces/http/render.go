package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
)

// render escribe un nodo gomponents como respuesta HTML.
func render(c *fiber.Ctx, n g.Node) error {
	c.Type("html", "utf-8")
	return n.Render(c)
}

// pageFor datos comunes de la vista a partir de la petición.
func pageFor(c *fiber.Ctx, siteName, title string) views.Page {
	lang := GetLang(c)
	tr := GetTranslator(c)
	p := views.Page{
		Lang:     lang,
		T:        tr,
		SiteName: siteName,
		Title:    title,
		Path:     strippedPath(c.Path(), lang.String()),
		Query:    string(c.Request().URI().QueryString()),
		UserName: GetUserName(c),
		IsAdmin:  GetRole(c) == "admin",
		Now:      time.Now(),
	}
	if f := GetFlash(c); f != nil {
		p.Flash = &views.Flash{Kind: f.Kind, Message: tr.T(f.Key)}
	}
	return p
}

// strippedPath quita el prefijo de idioma: /en/services -> /services, /en -> /.
func strippedPath(path, lang string) string {
	rest := strings.TrimPrefix(path, "/"+lang)
	switch {
	case rest == "":
		return "/"
	case rest == path || !strings.HasPrefix(rest, "/"):
		return path
	}
	return rest
}
