package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/brochure"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/infrastructure/sitemap"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// SiteHandler recursos del sitio que no son páginas: salud, sitemap, robots y PDF.
type SiteHandler struct {
	site        *usecase.SiteUseCase
	brochure    *brochure.PDFUseCase
	appName     string
	publicURL   string
	defaultLang i18n.Lang
}

// NewSiteHandler construye el handler.
func NewSiteHandler(deps RouterDeps) *SiteHandler {
	return &SiteHandler{
		site:        deps.SiteUC,
		brochure:    deps.BrochureUC,
		appName:     deps.AppName,
		publicURL:   deps.PublicURL,
		defaultLang: deps.DefaultLang,
	}
}

// Health godoc
// @Summary  Estado del servicio
// @Tags     infra
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *SiteHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.appName})
}

// Sitemap sitemap.xml generado en cada petición con el contenido vigente.
func (h *SiteHandler) Sitemap(c *fiber.Ctx) error {
	xml, err := sitemap.Build(h.publicURL, h.site.Pages(c.UserContext()), h.defaultLang)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(xml)
}

func (h *SiteHandler) Robots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(sitemap.Robots(h.publicURL))
}

// Brochure descarga el perfil de la empresa en PDF.
func (h *SiteHandler) Brochure(c *fiber.Ctx) error {
	pdf, filename, err := h.brochure.Download(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
