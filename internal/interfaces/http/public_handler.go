package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
)

// PublicHandler páginas del sitio público.
type PublicHandler struct {
	site         *usecase.SiteUseCase
	company      *usecase.CompanyUseCase
	services     *usecase.ServiceUseCase
	projects     *usecase.ProjectUseCase
	categories   *usecase.CategoryUseCase
	ads          *usecase.AdvertisementUseCase
	faqs         *usecase.FAQUseCase
	why          *usecase.WhyChooseUsUseCase
	testimonials *usecase.TestimonialUseCase
	siteName     string
}

// NewPublicHandler construye el handler.
func NewPublicHandler(deps RouterDeps) *PublicHandler {
	return &PublicHandler{
		site:         deps.SiteUC,
		company:      deps.CompanyUC,
		services:     deps.ServiceUC,
		projects:     deps.ProjectUC,
		categories:   deps.CategoryUC,
		ads:          deps.AdvertisementUC,
		faqs:         deps.FAQUC,
		why:          deps.WhyChooseUsUC,
		testimonials: deps.TestimonialUC,
		siteName:     deps.SiteName,
	}
}

func (h *PublicHandler) page(c *fiber.Ctx, titleKey string) views.Page {
	title := ""
	if titleKey != "" {
		title = GetTranslator(c).T(titleKey)
	}
	return pageFor(c, h.siteName, title)
}

// Home portada. Tolera secciones caídas: la página se muestra con lo disponible.
func (h *PublicHandler) Home(c *fiber.Ctx) error {
	data := h.site.Home(c.UserContext())
	if len(data.Failed) > 0 {
		GetLogger(c).Warn().Strs("sections", data.Failed).Msg("inicio renderizado parcialmente")
	}
	p := h.page(c, "")
	p.Contact = data.Contact
	return render(c, views.HomePage(p, data))
}

func (h *PublicHandler) About(c *fiber.Ctx) error {
	about, err := h.company.GetAbout(c.UserContext())
	if err != nil {
		return err
	}
	why, err := h.why.ListOrdered(c.UserContext())
	if err != nil {
		GetLogger(c).Warn().Err(err).Msg("quiénes somos: sin 'por qué elegirnos'")
		why = nil
	}
	return render(c, views.AboutPage(h.page(c, "nav.about"), about, why))
}

func (h *PublicHandler) Services(c *fiber.Ctx) error {
	list, err := h.services.ListOrdered(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, views.ServicesPage(h.page(c, "nav.services"), list))
}

func (h *PublicHandler) ServiceDetail(c *fiber.Ctx) error {
	s, err := h.services.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	p := h.page(c, "")
	p.Title = s.Title(p.Lang)
	return render(c, views.ServiceDetailPage(p, *s))
}

// Projects portafolio; ?category= filtra por categoría.
func (h *PublicHandler) Projects(c *fiber.Ctx) error {
	category := c.Query("category")
	list, err := h.projects.ListVisible(c.UserContext(), category)
	if err != nil {
		return err
	}
	categories := h.categoriesOf(c, entity.CategoryTypeProject)
	return render(c, views.ProjectsPage(h.page(c, "nav.projects"), list, categories, category))
}

func (h *PublicHandler) ProjectDetail(c *fiber.Ctx) error {
	pr, err := h.projects.GetVisible(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	p := h.page(c, "")
	p.Title = pr.Title(p.Lang)
	return render(c, views.ProjectDetailPage(p, *pr))
}

// Advertisements anuncios públicos con filtros por query (category, q, min, max, sort).
func (h *PublicHandler) Advertisements(c *fiber.Ctx) error {
	var q dto.AdFilterQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.ErrBadRequest
	}
	q.Status = ""
	ads, err := h.ads.SearchPublic(c.UserContext(), q, GetLang(c))
	if err != nil {
		return err
	}
	categories := h.categoriesOf(c, entity.CategoryTypeAdvertisement)
	return render(c, views.AdsPage(h.page(c, "nav.advertisements"), ads, categories, q))
}

func (h *PublicHandler) AdvertisementDetail(c *fiber.Ctx) error {
	a, err := h.ads.GetPublic(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	p := h.page(c, "")
	p.Title = a.Title(p.Lang)
	return render(c, views.AdDetailPage(p, *a))
}

func (h *PublicHandler) Contact(c *fiber.Ctx) error {
	contact, err := h.company.GetContact(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, views.ContactPage(h.page(c, "nav.contact"), contact))
}

func (h *PublicHandler) FAQ(c *fiber.Ctx) error {
	list, err := h.faqs.ListOrdered(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, views.FAQPage(h.page(c, "nav.faq"), list))
}

// Testimonials opiniones aprobadas; ?sent=1 muestra el agradecimiento tras enviar.
func (h *PublicHandler) Testimonials(c *fiber.Ctx) error {
	list, err := h.testimonials.ListApproved(c.UserContext())
	if err != nil {
		return err
	}
	sent := c.Query("sent") == "1"
	return render(c, views.TestimonialsPage(h.page(c, "nav.testimonials"), list, dto.TestimonialForm{}, nil, sent))
}

// SubmitTestimonial guarda la opinión sin aprobar y redirige (post/redirect/get).
func (h *PublicHandler) SubmitTestimonial(c *fiber.Ctx) error {
	var form dto.TestimonialForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Message = strings.TrimSpace(form.Message)
	_, err := h.testimonials.Submit(c.UserContext(), form, GetLang(c))
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		list, lerr := h.testimonials.ListApproved(c.UserContext())
		if lerr != nil {
			list = nil
		}
		c.Status(fiber.StatusUnprocessableEntity)
		return render(c, views.TestimonialsPage(h.page(c, "nav.testimonials"), list, form, ve.Fields, false))
	}
	if err != nil {
		return err
	}
	return c.Redirect("/"+GetLang(c).String()+"/testimonials?sent=1", fiber.StatusSeeOther)
}

// categoriesOf categorías para los filtros; si el backend falla la página sigue sin filtro.
func (h *PublicHandler) categoriesOf(c *fiber.Ctx, typ string) []entity.Category {
	list, err := h.categories.ListByType(c.UserContext(), typ)
	if err != nil {
		GetLogger(c).Warn().Err(err).Str("type", typ).Msg("categorías no disponibles")
		return nil
	}
	return list
}
