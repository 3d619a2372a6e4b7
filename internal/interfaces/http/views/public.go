package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
)

// HomePage portada: hero, servicios, proyectos, por qué elegirnos y testimonios.
// Las secciones vacías (o que fallaron en el backend) no se muestran.
func HomePage(p Page, d *usecase.HomeData) g.Node {
	return Layout(p,
		Section(Class("hero"),
			H1(g.Text(p.T.T("home.hero.title"))),
			P(g.Text(p.T.T("home.hero.subtitle"))),
			A(Class("button"), Href(p.Href("/contact")), g.Text(p.T.T("home.cta"))),
		),
		g.If(len(d.Services) > 0, Section(Class("home-services"),
			H2(g.Text(p.T.T("home.services"))),
			serviceGrid(p, d.Services),
		)),
		g.If(len(d.Projects) > 0, Section(Class("home-projects"),
			H2(g.Text(p.T.T("home.projects"))),
			projectGrid(p, d.Projects),
		)),
		g.If(len(d.Why) > 0, Section(Class("home-why"),
			H2(g.Text(p.T.T("home.why"))),
			whyList(p, d.Why),
		)),
		g.If(len(d.Testimonials) > 0, Section(Class("home-testimonials"),
			H2(g.Text(p.T.T("home.testimonials"))),
			testimonialList(d.Testimonials),
		)),
	)
}

// AboutPage "Quiénes somos" con misión, visión y argumentos de venta.
func AboutPage(p Page, about *entity.AboutSection, why []entity.WhyChooseUs) g.Node {
	return Layout(p,
		Article(Class("about"),
			H1(g.Text(nonEmpty(about.Title(p.Lang), p.T.T("nav.about")))),
			image(about.Image, about.Title(p.Lang)),
			paragraphs(about.Content(p.Lang)),
			g.If(about.Mission(p.Lang) != "", Section(H2(g.Text(p.T.T("about.mission"))), paragraphs(about.Mission(p.Lang)))),
			g.If(about.Vision(p.Lang) != "", Section(H2(g.Text(p.T.T("about.vision"))), paragraphs(about.Vision(p.Lang)))),
		),
		g.If(len(why) > 0, Section(H2(g.Text(p.T.T("home.why"))), whyList(p, why))),
	)
}

// ServicesPage listado de servicios ordenados.
func ServicesPage(p Page, services []entity.Service) g.Node {
	return Layout(p,
		H1(g.Text(p.T.T("nav.services"))),
		g.If(len(services) == 0, empty(p, "services.empty")),
		serviceGrid(p, services),
	)
}

// ServiceDetailPage detalle de un servicio.
func ServiceDetailPage(p Page, s entity.Service) g.Node {
	return Layout(p,
		Article(Class("detail"),
			H1(g.Text(s.Title(p.Lang))),
			image(s.Image, s.Title(p.Lang)),
			paragraphs(s.Description(p.Lang)),
			A(Href(p.Href("/services")), g.Text(p.T.T("common.back"))),
		),
	)
}

// ProjectsPage portafolio con filtro por categoría.
func ProjectsPage(p Page, projects []entity.Project, categories []entity.Category, current string) g.Node {
	return Layout(p,
		H1(g.Text(p.T.T("nav.projects"))),
		g.If(len(categories) > 0, Nav(Class("filters"),
			A(Href(p.Href("/projects")), g.If(current == "", Class("active")), g.Text(p.T.T("projects.all"))),
			g.Map(categories, func(c entity.Category) g.Node {
				return A(Href(p.Href("/projects?category="+c.ID)), g.If(current == c.ID, Class("active")), g.Text(c.Name(p.Lang)))
			}),
		)),
		g.If(len(projects) == 0, empty(p, "projects.empty")),
		projectGrid(p, projects),
	)
}

// ProjectDetailPage detalle de un proyecto visible.
func ProjectDetailPage(p Page, pr entity.Project) g.Node {
	return Layout(p,
		Article(Class("detail"),
			H1(g.Text(pr.Title(p.Lang))),
			image(pr.Image, pr.Title(p.Lang)),
			paragraphs(pr.Description(p.Lang)),
			g.If(pr.Link != "", A(Class("button"), Href(pr.Link), Target("_blank"), Rel("noopener noreferrer"), g.Text(p.T.T("projects.visit")))),
			A(Href(p.Href("/projects")), g.Text(p.T.T("common.back"))),
		),
	)
}

// AdsPage anuncios públicos con búsqueda, rango de precio, categoría y orden.
func AdsPage(p Page, ads []entity.Advertisement, categories []entity.Category, q dto.AdFilterQuery) g.Node {
	return Layout(p,
		H1(g.Text(p.T.T("nav.advertisements"))),
		adFilterForm(p, p.Href("/advertisements"), categories, q, false),
		P(Class("count"), g.Text(p.T.T("ads.count", len(ads)))),
		g.If(len(ads) == 0, empty(p, "ads.empty")),
		Div(Class("grid"),
			g.Map(ads, func(a entity.Advertisement) g.Node { return adCard(p, a) }),
		),
	)
}

func adFilterForm(p Page, action string, categories []entity.Category, q dto.AdFilterQuery, withStatus bool) g.Node {
	sorts := []string{listing.SortNewest, listing.SortOldest, listing.SortPriceAsc, listing.SortPriceDesc, listing.SortTitle}
	current := listing.NormalizeSort(q.Sort)
	return Form(Class("filters"), Method("get"), Action(action),
		Label(g.Text(p.T.T("ads.filter.q")), Input(Type("search"), Name("q"), Value(q.Q))),
		Label(g.Text(p.T.T("ads.filter.category")),
			Select(Name("category"),
				Option(Value(""), g.Text(p.T.T("ads.filter.all"))),
				g.Map(categories, func(c entity.Category) g.Node {
					return Option(Value(c.ID), g.If(c.ID == q.Category, Selected()), g.Text(c.Name(p.Lang)))
				}),
			),
		),
		Label(g.Text(p.T.T("ads.filter.min")), Input(Type("number"), Name("min"), g.Attr("min", "0"), g.Attr("step", "0.01"), Value(q.Min))),
		Label(g.Text(p.T.T("ads.filter.max")), Input(Type("number"), Name("max"), g.Attr("min", "0"), g.Attr("step", "0.01"), Value(q.Max))),
		Label(g.Text(p.T.T("ads.filter.sort")),
			Select(Name("sort"),
				g.Map(sorts, func(s string) g.Node {
					return Option(Value(s), g.If(s == current, Selected()), g.Text(p.T.T("ads.sort."+s)))
				}),
			),
		),
		g.If(withStatus, Label(g.Text(p.T.T("admin.status")),
			Select(Name("status"),
				Option(Value(listing.StatusAll), g.If(q.Status == "" || q.Status == listing.StatusAll, Selected()), g.Text(p.T.T("ads.filter.all"))),
				Option(Value(listing.StatusPublished), g.If(q.Status == listing.StatusPublished, Selected()), g.Text(p.T.T("admin.published"))),
				Option(Value(listing.StatusDraft), g.If(q.Status == listing.StatusDraft, Selected()), g.Text(p.T.T("admin.draft"))),
			),
		)),
		Button(Type("submit"), g.Text(p.T.T("ads.filter.apply"))),
	)
}

func adCard(p Page, a entity.Advertisement) g.Node {
	return Article(Class("card ad"),
		image(a.Image, a.Title(p.Lang)),
		H3(A(Href(p.Href("/advertisements/"+a.ID)), g.Text(a.Title(p.Lang)))),
		P(Class("price"), g.Text(a.PriceLabel())),
		g.Iff(a.ExpiresAt != nil, func() g.Node {
			return Small(g.Text(p.T.T("ads.expires", a.ExpiresAt.Format("2006-01-02"))))
		}),
	)
}

// AdDetailPage detalle de un anuncio con enlace de llamada.
func AdDetailPage(p Page, a entity.Advertisement) g.Node {
	return Layout(p,
		Article(Class("detail ad"),
			H1(g.Text(a.Title(p.Lang))),
			image(a.Image, a.Title(p.Lang)),
			P(Class("price"), g.Text(a.PriceLabel())),
			paragraphs(a.Description(p.Lang)),
			g.If(a.Phone != "", A(Class("button"), Href("tel:"+a.Phone), g.Text(p.T.T("ads.call")+" "+a.Phone))),
			A(Href(p.Href("/advertisements")), g.Text(p.T.T("common.back"))),
		),
	)
}

// ContactPage datos de contacto, WhatsApp, mapa y redes.
func ContactPage(p Page, c *entity.CompanyContact) g.Node {
	return Layout(p,
		H1(g.Text(p.T.T("nav.contact"))),
		Dl(Class("contact"),
			g.If(c.Phone != "", g.Group{Dt(g.Text(p.T.T("contact.phone"))), Dd(A(Href("tel:"+c.Phone), g.Text(c.Phone)))}),
			g.If(c.Email != "", g.Group{Dt(g.Text(p.T.T("contact.email"))), Dd(A(Href("mailto:"+c.Email), g.Text(c.Email)))}),
			g.If(c.WhatsApp != "", g.Group{Dt(g.Text(p.T.T("contact.whatsapp"))), Dd(A(Href(whatsAppURL(c.WhatsApp)), Target("_blank"), Rel("noopener noreferrer"), g.Text(c.WhatsApp)))}),
			g.If(c.Address(p.Lang) != "", g.Group{Dt(g.Text(p.T.T("contact.address"))), Dd(g.Text(c.Address(p.Lang)))}),
		),
		g.If(c.MapURL != "", A(Class("button"), Href(c.MapURL), Target("_blank"), Rel("noopener noreferrer"), g.Text(p.T.T("contact.map")))),
		g.If(len(c.Socials()) > 0, Section(
			H2(g.Text(p.T.T("contact.follow"))),
			Ul(Class("socials"), g.Map(c.Socials(), func(s entity.SocialLink) g.Node {
				return Li(A(Href(s.URL), Target("_blank"), Rel("noopener noreferrer"), g.Text(s.Network)))
			})),
		)),
	)
}

// whatsAppURL enlace wa.me con solo los dígitos del número.
func whatsAppURL(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return "https://wa.me/" + b.String()
}

// TestimonialsPage opiniones aprobadas y formulario de envío.
func TestimonialsPage(p Page, list []entity.Testimonial, form dto.TestimonialForm, errs map[string]string, sent bool) g.Node {
	if form.Rating == 0 {
		form.Rating = 5
	}
	return Layout(p,
		H1(g.Text(p.T.T("nav.testimonials"))),
		g.If(len(list) == 0, empty(p, "testimonials.empty")),
		testimonialList(list),
		Section(Class("testimonial-form"),
			H2(g.Text(p.T.T("testimonials.submit.title"))),
			g.If(sent, P(Class("notice"), g.Text(p.T.T("testimonials.thanks")))),
			Form(Method("post"), Action(p.Href("/testimonials")),
				field(p, Field{Name: "name", Kind: KindText, Value: form.Name, Required: true}, errs),
				field(p, Field{Name: "position", Kind: KindText, Value: form.Position}, errs),
				field(p, Field{Name: "message", Kind: KindTextarea, Value: form.Message, Required: true}, errs),
				field(p, Field{Name: "rating", Kind: KindSelect, Value: strconv.Itoa(form.Rating), Choices: ratingChoices()}, errs),
				Input(Type("hidden"), Name("lang"), Value(p.Lang.String())),
				Button(Type("submit"), g.Text(p.T.T("testimonials.send"))),
			),
		),
	)
}

func ratingChoices() []Choice {
	out := make([]Choice, 0, 5)
	for i := 5; i >= 1; i-- {
		out = append(out, Choice{Value: strconv.Itoa(i), Label: strings.Repeat("★", i)})
	}
	return out
}

// FAQPage preguntas frecuentes como acordeón nativo.
func FAQPage(p Page, faqs []entity.FAQ) g.Node {
	return Layout(p,
		H1(g.Text(p.T.T("nav.faq"))),
		g.If(len(faqs) == 0, empty(p, "faq.empty")),
		g.Map(faqs, func(f entity.FAQ) g.Node {
			return Details(Class("faq"),
				Summary(g.Text(f.Question(p.Lang))),
				paragraphs(f.Answer(p.Lang)),
			)
		}),
	)
}

func serviceGrid(p Page, services []entity.Service) g.Node {
	return Div(Class("grid"),
		g.Map(services, func(s entity.Service) g.Node {
			return Article(Class("card service"),
				g.If(s.Icon != "", Span(Class("icon "+s.Icon))),
				image(s.Image, s.Title(p.Lang)),
				H3(A(Href(p.Href("/services/"+s.ID)), g.Text(s.Title(p.Lang)))),
				P(g.Text(excerpt(s.Description(p.Lang), 160))),
			)
		}),
	)
}

func projectGrid(p Page, projects []entity.Project) g.Node {
	return Div(Class("grid"),
		g.Map(projects, func(pr entity.Project) g.Node {
			return Article(Class("card project"),
				image(pr.Image, pr.Title(p.Lang)),
				H3(A(Href(p.Href("/projects/"+pr.ID)), g.Text(pr.Title(p.Lang)))),
				P(g.Text(excerpt(pr.Description(p.Lang), 160))),
			)
		}),
	)
}

func whyList(p Page, items []entity.WhyChooseUs) g.Node {
	return Ul(Class("why"),
		g.Map(items, func(w entity.WhyChooseUs) g.Node {
			return Li(
				g.If(w.Icon != "", Span(Class("icon "+w.Icon))),
				Strong(g.Text(w.Title(p.Lang))),
				P(g.Text(w.Description(p.Lang))),
			)
		}),
	)
}

func testimonialList(list []entity.Testimonial) g.Node {
	return Div(Class("testimonials"),
		g.Map(list, func(t entity.Testimonial) g.Node {
			return BlockQuote(Class("testimonial"), g.If(t.Lang == "ar", g.Attr("dir", "rtl")),
				P(g.Text(t.Message)),
				Footer(
					Strong(g.Text(t.Name)),
					g.If(t.Position != "", Span(g.Text(" · "+t.Position))),
					Span(Class("rating"), g.Attr("aria-label", strconv.Itoa(t.Rating)+"/5"), g.Text(strings.Repeat("★", clampRating(t.Rating)))),
				),
			)
		}),
	)
}

func clampRating(r int) int {
	switch {
	case r < 0:
		return 0
	case r > 5:
		return 5
	}
	return r
}

// paragraphs convierte saltos de línea dobles en párrafos; el texto se escapa.
func paragraphs(s string) g.Node {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}
	var out g.Group
	for _, part := range strings.Split(s, "\n\n") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, P(g.Text(part)))
		}
	}
	return out
}

func excerpt(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
