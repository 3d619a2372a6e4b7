package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
)

// CompanyHandler edición de los registros únicos: contacto y "quiénes somos".
type CompanyHandler struct {
	uc       *usecase.CompanyUseCase
	siteName string
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, siteName string) *CompanyHandler {
	return &CompanyHandler{uc: uc, siteName: siteName}
}

func (h *CompanyHandler) path(c *fiber.Ctx, section string) string {
	base := "/" + GetLang(c).String() + "/admin"
	if section == "" {
		return base
	}
	return base + "/" + section
}

func (h *CompanyHandler) EditContact(c *fiber.Ctx) error {
	contact, err := h.uc.GetContact(c.UserContext())
	if err != nil {
		return err
	}
	return h.contactForm(c, dto.ContactFormFrom(*contact), nil)
}

func (h *CompanyHandler) UpdateContact(c *fiber.Ctx) error {
	var form dto.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, err := h.uc.UpdateContact(c.UserContext(), form)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.Status(fiber.StatusUnprocessableEntity)
		return h.contactForm(c, form, ve.Fields)
	}
	return h.done(c, err, "contact")
}

func (h *CompanyHandler) EditAbout(c *fiber.Ctx) error {
	about, err := h.uc.GetAbout(c.UserContext())
	if err != nil {
		return err
	}
	return h.aboutForm(c, dto.AboutFormFrom(*about), nil)
}

func (h *CompanyHandler) UpdateAbout(c *fiber.Ctx) error {
	var form dto.AboutForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	_, err := h.uc.UpdateAbout(c.UserContext(), form)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.Status(fiber.StatusUnprocessableEntity)
		return h.aboutForm(c, form, ve.Fields)
	}
	return h.done(c, err, "about")
}

// done flash y vuelta al mismo formulario (los registros únicos no tienen listado).
func (h *CompanyHandler) done(c *fiber.Ctx, err error, section string) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		expireSession(c)
		return redirectToLogin(c, h.path(c, section))
	}
	if err != nil {
		GetLogger(c).Error().Err(err).Str("section", section).Msg("no se pudo guardar")
		SetFlash(c, "error", "flash.error")
	} else {
		SetFlash(c, "success", "flash.updated")
	}
	return c.Redirect(h.path(c, section), fiber.StatusSeeOther)
}

func (h *CompanyHandler) contactForm(c *fiber.Ctx, f dto.ContactForm, errs map[string]string) error {
	p := pageFor(c, h.siteName, GetTranslator(c).T("admin.contact"))
	return render(c, views.FormPage(p, views.FormView{
		Title:  p.Title,
		Action: h.path(c, "contact"),
		Cancel: h.path(c, ""),
		Errors: errs,
		Fields: []views.Field{
			{Name: "phone", Kind: views.KindTel, Value: f.Phone},
			{Name: "email", Kind: views.KindEmail, Value: f.Email},
			{Name: "whatsapp", Kind: views.KindTel, Value: f.WhatsApp},
			{Name: "addressEn", Kind: views.KindText, Value: f.AddressEn},
			{Name: "addressAr", Kind: views.KindText, Value: f.AddressAr},
			{Name: "mapUrl", Kind: views.KindURL, Value: f.MapURL},
			{Name: "facebook", Kind: views.KindURL, Value: f.Facebook},
			{Name: "instagram", Kind: views.KindURL, Value: f.Instagram},
			{Name: "linkedin", Kind: views.KindURL, Value: f.LinkedIn},
			{Name: "twitter", Kind: views.KindURL, Value: f.Twitter},
		},
	}))
}

func (h *CompanyHandler) aboutForm(c *fiber.Ctx, f dto.AboutForm, errs map[string]string) error {
	p := pageFor(c, h.siteName, GetTranslator(c).T("admin.about"))
	return render(c, views.FormPage(p, views.FormView{
		Title:         p.Title,
		Action:        h.path(c, "about"),
		Cancel:        h.path(c, ""),
		Errors:        errs,
		AutoTranslate: true,
		Fields: concat(
			bilingual("title", f.TitleEn, f.TitleAr, views.KindText, true),
			bilingual("content", f.ContentEn, f.ContentAr, views.KindTextarea, true),
			bilingual("mission", f.MissionEn, f.MissionAr, views.KindTextarea, false),
			bilingual("vision", f.VisionEn, f.VisionAr, views.KindTextarea, false),
			[]views.Field{{Name: "image", Kind: views.KindURL, Value: f.Image}},
		),
	}))
}
