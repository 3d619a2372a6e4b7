package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

func text(s string) g.Node { return g.Text(s) }

func yesNo(p views.Page, v bool) g.Node {
	if v {
		return text(p.T.T("common.yes"))
	}
	return text(p.T.T("common.no"))
}

// bilingual los campos En/Ar de un texto traducible.
func bilingual(name, en, ar, kind string, required bool) []views.Field {
	return []views.Field{
		{Name: name + "En", Kind: kind, Value: en, Required: required},
		{Name: name + "Ar", Kind: kind, Value: ar},
	}
}

func concat(groups ...[]views.Field) []views.Field {
	var out []views.Field
	for _, gr := range groups {
		out = append(out, gr...)
	}
	return out
}

// categoryChoices opciones de categoría para el select; si el backend falla solo
// queda la opción vacía y la actual.
func categoryChoices(c *fiber.Ctx, uc *usecase.CategoryUseCase, typ, current string) []views.Choice {
	choices := []views.Choice{{Value: "", Label: "—"}}
	list, err := uc.ListByType(c.UserContext(), typ)
	if err != nil {
		GetLogger(c).Warn().Err(err).Msg("categorías no disponibles para el formulario")
		if current != "" {
			choices = append(choices, views.Choice{Value: current, Label: current})
		}
		return choices
	}
	for _, cat := range list {
		choices = append(choices, views.Choice{Value: cat.ID, Label: cat.Name(GetLang(c))})
	}
	return choices
}

func serviceAdmin(deps RouterDeps) *ContentHandler[dto.ServiceForm, entity.Service] {
	return &ContentHandler[dto.ServiceForm, entity.Service]{
		slug: "services", titleKey: "admin.services", siteName: deps.SiteName,
		uc:            deps.ServiceUC,
		toForm:        dto.ServiceFormFrom,
		autoTranslate: true,
		columns:       []string{"field.order", "field.titleEn", "field.titleAr"},
		row: func(p views.Page, s entity.Service) views.Row {
			return views.Row{ID: s.ID, Cells: []g.Node{text(strconv.Itoa(s.Order)), text(s.TitleEn), text(s.TitleAr)}}
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.ServiceForm) []views.Field {
			return concat(
				bilingual("title", f.TitleEn, f.TitleAr, views.KindText, true),
				bilingual("description", f.DescriptionEn, f.DescriptionAr, views.KindTextarea, true),
				[]views.Field{
					{Name: "icon", Kind: views.KindText, Value: f.Icon},
					{Name: "image", Kind: views.KindURL, Value: f.Image},
					{Name: "order", Kind: views.KindNumber, Value: strconv.Itoa(f.Order)},
				},
			)
		},
	}
}

func projectAdmin(deps RouterDeps) *ContentHandler[dto.ProjectForm, entity.Project] {
	return &ContentHandler[dto.ProjectForm, entity.Project]{
		slug: "projects", titleKey: "admin.projects", siteName: deps.SiteName,
		uc:            deps.ProjectUC,
		toForm:        dto.ProjectFormFrom,
		autoTranslate: true,
		toggle:        deps.ProjectUC.ToggleVisibility,
		newForm:       func() dto.ProjectForm { return dto.ProjectForm{IsVisible: true} },
		columns:       []string{"field.titleEn", "field.titleAr", "field.category", "admin.status"},
		row: func(p views.Page, pr entity.Project) views.Row {
			return views.Row{
				ID:     pr.ID,
				Cells:  []g.Node{text(pr.TitleEn), text(pr.TitleAr), text(pr.CategoryID), yesNo(p, pr.IsVisible)},
				Toggle: &views.Toggle{On: pr.IsVisible, OnText: p.T.T("admin.visible"), OffText: p.T.T("admin.hidden")},
			}
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.ProjectForm) []views.Field {
			return concat(
				bilingual("title", f.TitleEn, f.TitleAr, views.KindText, true),
				bilingual("description", f.DescriptionEn, f.DescriptionAr, views.KindTextarea, true),
				[]views.Field{
					{Name: "image", Kind: views.KindURL, Value: f.Image},
					{Name: "link", Kind: views.KindURL, Value: f.Link},
					{Name: "category", Kind: views.KindSelect, Value: f.CategoryID, Choices: categoryChoices(c, deps.CategoryUC, entity.CategoryTypeProject, f.CategoryID)},
					{Name: "isVisible", Kind: views.KindCheckbox, Checked: f.IsVisible},
				},
			)
		},
	}
}

func categoryAdmin(deps RouterDeps) *ContentHandler[dto.CategoryForm, entity.Category] {
	return &ContentHandler[dto.CategoryForm, entity.Category]{
		slug: "categories", titleKey: "admin.categories", siteName: deps.SiteName,
		uc:            deps.CategoryUC,
		toForm:        dto.CategoryFormFrom,
		autoTranslate: true,
		newForm:       func() dto.CategoryForm { return dto.CategoryForm{Type: entity.CategoryTypeProject} },
		columns:       []string{"field.nameEn", "field.nameAr", "field.type"},
		row: func(p views.Page, cat entity.Category) views.Row {
			return views.Row{ID: cat.ID, Cells: []g.Node{text(cat.NameEn), text(cat.NameAr), text(cat.Type)}}
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.CategoryForm) []views.Field {
			return concat(
				bilingual("name", f.NameEn, f.NameAr, views.KindText, true),
				[]views.Field{{Name: "type", Kind: views.KindSelect, Value: f.Type, Choices: []views.Choice{
					{Value: entity.CategoryTypeProject, Label: p.T.T("admin.projects")},
					{Value: entity.CategoryTypeAdvertisement, Label: p.T.T("admin.advertisements")},
				}}},
			)
		},
	}
}

func advertisementAdmin(deps RouterDeps) *ContentHandler[dto.AdvertisementForm, entity.Advertisement] {
	return &ContentHandler[dto.AdvertisementForm, entity.Advertisement]{
		slug: "advertisements", titleKey: "admin.advertisements", siteName: deps.SiteName,
		uc:            deps.AdvertisementUC,
		toForm:        dto.AdvertisementFormFrom,
		autoTranslate: true,
		toggle:        deps.AdvertisementUC.TogglePublish,
		newForm:       func() dto.AdvertisementForm { return dto.AdvertisementForm{Currency: deps.DefaultCurrency} },
		columns:       []string{"field.titleEn", "field.price", "field.expiresAt", "admin.status"},
		row: func(p views.Page, a entity.Advertisement) views.Row {
			expires := ""
			if a.ExpiresAt != nil {
				expires = a.ExpiresAt.Format(dto.DateLayout)
			}
			return views.Row{
				ID:     a.ID,
				Cells:  []g.Node{text(a.Title(p.Lang)), text(a.PriceLabel()), text(expires), yesNo(p, a.IsPublished)},
				Toggle: &views.Toggle{On: a.IsPublished, OnText: p.T.T("admin.published"), OffText: p.T.T("admin.draft")},
			}
		},
		search: func(c *fiber.Ctx, p views.Page) ([]entity.Advertisement, g.Node, error) {
			var q dto.AdFilterQuery
			if err := c.QueryParser(&q); err != nil {
				return nil, nil, fiber.ErrBadRequest
			}
			list, err := deps.AdvertisementUC.SearchAdmin(c.UserContext(), q, p.Lang)
			if err != nil {
				return nil, nil, err
			}
			cats, cerr := deps.CategoryUC.ListByType(c.UserContext(), entity.CategoryTypeAdvertisement)
			if cerr != nil {
				cats = nil
			}
			return list, views.AdFilters(p, p.Href("/admin/advertisements"), cats, q), nil
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.AdvertisementForm) []views.Field {
			return concat(
				bilingual("title", f.TitleEn, f.TitleAr, views.KindText, true),
				bilingual("description", f.DescriptionEn, f.DescriptionAr, views.KindTextarea, true),
				[]views.Field{
					{Name: "image", Kind: views.KindURL, Value: f.Image},
					{Name: "price", Kind: views.KindText, Value: f.Price, Required: true},
					{Name: "currency", Kind: views.KindText, Value: f.Currency},
					{Name: "category", Kind: views.KindSelect, Value: f.CategoryID, Choices: categoryChoices(c, deps.CategoryUC, entity.CategoryTypeAdvertisement, f.CategoryID)},
					{Name: "phone", Kind: views.KindTel, Value: f.Phone},
					{Name: "expiresAt", Kind: views.KindDate, Value: f.ExpiresAt},
					{Name: "isPublished", Kind: views.KindCheckbox, Checked: f.IsPublished},
				},
			)
		},
	}
}

func faqAdmin(deps RouterDeps) *ContentHandler[dto.FAQForm, entity.FAQ] {
	return &ContentHandler[dto.FAQForm, entity.FAQ]{
		slug: "faqs", titleKey: "admin.faqs", siteName: deps.SiteName,
		uc:            deps.FAQUC,
		toForm:        dto.FAQFormFrom,
		autoTranslate: true,
		columns:       []string{"field.order", "field.questionEn", "field.questionAr"},
		row: func(p views.Page, f entity.FAQ) views.Row {
			return views.Row{ID: f.ID, Cells: []g.Node{text(strconv.Itoa(f.Order)), text(f.QuestionEn), text(f.QuestionAr)}}
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.FAQForm) []views.Field {
			return concat(
				bilingual("question", f.QuestionEn, f.QuestionAr, views.KindText, true),
				bilingual("answer", f.AnswerEn, f.AnswerAr, views.KindTextarea, true),
				[]views.Field{{Name: "order", Kind: views.KindNumber, Value: strconv.Itoa(f.Order)}},
			)
		},
	}
}

func testimonialAdmin(deps RouterDeps) *ContentHandler[dto.TestimonialForm, entity.Testimonial] {
	return &ContentHandler[dto.TestimonialForm, entity.Testimonial]{
		slug: "testimonials", titleKey: "admin.testimonials", siteName: deps.SiteName,
		uc:      deps.TestimonialUC,
		toForm:  dto.TestimonialFormFrom,
		toggle:  deps.TestimonialUC.ToggleApproval,
		newForm: func() dto.TestimonialForm { return dto.TestimonialForm{Rating: 5, Lang: i18n.English.String()} },
		columns: []string{"field.name", "field.rating", "field.message", "admin.status"},
		row: func(p views.Page, t entity.Testimonial) views.Row {
			return views.Row{
				ID:     t.ID,
				Cells:  []g.Node{text(t.Name), text(strconv.Itoa(t.Rating)), text(t.Message), yesNo(p, t.IsApproved)},
				Toggle: &views.Toggle{On: t.IsApproved, OnText: p.T.T("admin.approved"), OffText: p.T.T("admin.pending")},
			}
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.TestimonialForm) []views.Field {
			ratings := make([]views.Choice, 0, 5)
			for i := 1; i <= 5; i++ {
				ratings = append(ratings, views.Choice{Value: strconv.Itoa(i), Label: strconv.Itoa(i)})
			}
			return []views.Field{
				{Name: "name", Kind: views.KindText, Value: f.Name, Required: true},
				{Name: "position", Kind: views.KindText, Value: f.Position},
				{Name: "message", Kind: views.KindTextarea, Value: f.Message, Required: true},
				{Name: "rating", Kind: views.KindSelect, Value: strconv.Itoa(f.Rating), Choices: ratings},
				{Name: "lang", Kind: views.KindSelect, Value: f.Lang, Choices: []views.Choice{{Value: "en", Label: "English"}, {Value: "ar", Label: "العربية"}}},
				{Name: "isApproved", Kind: views.KindCheckbox, Checked: f.IsApproved},
			}
		},
	}
}

func whyChooseUsAdmin(deps RouterDeps) *ContentHandler[dto.WhyChooseUsForm, entity.WhyChooseUs] {
	return &ContentHandler[dto.WhyChooseUsForm, entity.WhyChooseUs]{
		slug: "why-choose-us", titleKey: "admin.why", siteName: deps.SiteName,
		uc:            deps.WhyChooseUsUC,
		toForm:        dto.WhyChooseUsFormFrom,
		autoTranslate: true,
		columns:       []string{"field.order", "field.titleEn", "field.titleAr"},
		row: func(p views.Page, w entity.WhyChooseUs) views.Row {
			return views.Row{ID: w.ID, Cells: []g.Node{text(strconv.Itoa(w.Order)), text(w.TitleEn), text(w.TitleAr)}}
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.WhyChooseUsForm) []views.Field {
			return concat(
				bilingual("title", f.TitleEn, f.TitleAr, views.KindText, true),
				bilingual("description", f.DescriptionEn, f.DescriptionAr, views.KindTextarea, true),
				[]views.Field{
					{Name: "icon", Kind: views.KindText, Value: f.Icon},
					{Name: "order", Kind: views.KindNumber, Value: strconv.Itoa(f.Order)},
				},
			)
		},
	}
}

// userCRUD adapta UserUseCase: el borrado necesita al usuario en sesión y se hace vía remove.
type userCRUD struct {
	*usecase.UserUseCase
}

func (u userCRUD) Delete(ctx context.Context, id string) error {
	return u.UserUseCase.Delete(ctx, id, "")
}

func userAdmin(deps RouterDeps) *ContentHandler[dto.UserForm, entity.User] {
	return &ContentHandler[dto.UserForm, entity.User]{
		slug: "users", titleKey: "admin.users", siteName: deps.SiteName,
		uc:      userCRUD{deps.UserUC},
		toForm:  dto.UserFormFrom,
		newForm: func() dto.UserForm { return dto.UserForm{Role: entity.RoleUser} },
		columns: []string{"field.name", "field.email", "field.role"},
		row: func(p views.Page, u entity.User) views.Row {
			return views.Row{ID: u.ID, Cells: []g.Node{text(u.Name), text(u.Email), text(u.Role)}}
		},
		remove: func(c *fiber.Ctx, id string) error {
			return deps.UserUC.Delete(c.UserContext(), id, GetUserID(c))
		},
		fields: func(c *fiber.Ctx, p views.Page, f dto.UserForm) []views.Field {
			return []views.Field{
				{Name: "name", Kind: views.KindText, Value: f.Name, Required: true},
				{Name: "email", Kind: views.KindEmail, Value: f.Email, Required: true},
				{Name: "role", Kind: views.KindSelect, Value: f.Role, Choices: []views.Choice{
					{Value: entity.RoleAdmin, Label: "admin"},
					{Value: entity.RoleUser, Label: "user"},
				}},
				{Name: "password", Kind: views.KindPassword},
			}
		},
	}
}
