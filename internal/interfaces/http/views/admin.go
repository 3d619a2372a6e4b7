package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// AdminSection entrada del menú lateral del panel.
type AdminSection struct {
	Slug string // segmento de URL bajo /:lang/admin
	Key  string // clave i18n del título
}

// AdminSections orden del menú lateral.
var AdminSections = []AdminSection{
	{"services", "admin.services"},
	{"projects", "admin.projects"},
	{"categories", "admin.categories"},
	{"advertisements", "admin.advertisements"},
	{"faqs", "admin.faqs"},
	{"testimonials", "admin.testimonials"},
	{"why-choose-us", "admin.why"},
	{"users", "admin.users"},
	{"contact", "admin.contact"},
	{"about", "admin.about"},
}

// AdminLayout documento del panel con menú lateral y botón de salida.
func AdminLayout(p Page, body ...g.Node) g.Node {
	return document(p,
		Header(Class("admin-header"),
			A(Class("brand"), Href(p.Href("/admin")), g.Text(p.SiteName+" · "+p.T.T("nav.admin"))),
			Span(Class("user"), g.Text(p.UserName)),
			A(Href(p.Href("/")), g.Text(p.T.T("nav.home"))),
			A(Class("lang-switch"), Href(p.switchHref()), g.Text(p.T.T("lang.switch"))),
			Form(Method("post"), Action(p.Href("/logout")),
				Button(Type("submit"), g.Text(p.T.T("nav.logout"))),
			),
		),
		Div(Class("admin"),
			Aside(Nav(Ul(
				Li(A(Href(p.Href("/admin")), g.If(p.Path == "/admin", Class("active")), g.Text(p.T.T("admin.dashboard")))),
				g.Map(AdminSections, func(s AdminSection) g.Node {
					path := "/admin/" + s.Slug
					return Li(A(Href(p.Href(path)), g.If(p.Path == path, Class("active")), g.Text(p.T.T(s.Key))))
				}),
			))),
			Main(flashNode(p.Flash), g.Group(body)),
		),
	)
}

// DashboardPage tarjetas con los totales del contenido.
func DashboardPage(p Page, s *dto.DashboardSummaryDTO) g.Node {
	stats := []struct {
		key   string
		value int
		link  string
	}{
		{"admin.stats.services", s.Services, "/admin/services"},
		{"admin.stats.projects", s.Projects, "/admin/projects"},
		{"admin.stats.categories", s.Categories, "/admin/categories"},
		{"admin.stats.ads", s.Advertisements, "/admin/advertisements"},
		{"admin.stats.ads_published", s.PublishedAds, "/admin/advertisements?status=published"},
		{"admin.stats.faqs", s.FAQs, "/admin/faqs"},
		{"admin.stats.testimonials", s.Testimonials, "/admin/testimonials"},
		{"admin.stats.testimonials_pending", s.PendingTestimonials, "/admin/testimonials"},
		{"admin.stats.users", s.Users, "/admin/users"},
	}
	cards := make(g.Group, 0, len(stats))
	for _, st := range stats {
		cards = append(cards, A(Class("stat"), Href(p.Href(st.link)),
			Strong(g.Text(strconv.Itoa(st.value))),
			Span(g.Text(p.T.T(st.key))),
		))
	}
	return AdminLayout(p,
		H1(g.Text(p.T.T("admin.dashboard"))),
		Div(Class("stats"), cards),
	)
}

// Row fila de una tabla del panel.
type Row struct {
	ID     string
	Cells  []g.Node
	Toggle *Toggle
}

// Toggle botón de publicar/ocultar/aprobar de una fila.
type Toggle struct {
	On      bool
	OnText  string
	OffText string
}

// ListView tabla genérica del panel con acciones por fila.
type ListView struct {
	Title   string
	Base    string // ruta de la sección, ej. /en/admin/services
	Columns []string
	Rows    []Row
	Filters g.Node
	NoNew   bool
}

// ListPage listado con enlaces de edición, borrado y conmutador de estado.
func ListPage(p Page, v ListView) g.Node {
	return AdminLayout(p,
		Div(Class("list-header"),
			H1(g.Text(v.Title)),
			g.If(!v.NoNew, A(Class("button"), Href(v.Base+"/new"), g.Text(p.T.T("common.new")))),
		),
		v.Filters,
		g.If(len(v.Rows) == 0, empty(p, "common.empty")),
		g.If(len(v.Rows) > 0, Table(Class("admin-table"),
			THead(Tr(
				g.Map(v.Columns, func(c string) g.Node { return Th(g.Text(c)) }),
				Th(g.Text(p.T.T("common.actions"))),
			)),
			TBody(g.Map(v.Rows, func(r Row) g.Node {
				return Tr(
					g.Map(r.Cells, func(c g.Node) g.Node { return Td(c) }),
					Td(Class("row-actions"),
						g.Iff(r.Toggle != nil, func() g.Node { return toggleButton(p, v.Base+"/"+r.ID+"/toggle", *r.Toggle) }),
						A(Href(v.Base+"/"+r.ID+"/edit"), g.Text(p.T.T("common.edit"))),
						Form(Method("post"), Action(v.Base+"/"+r.ID+"/delete"), Class("inline"),
							Button(Type("submit"), Class("danger"), g.Text(p.T.T("common.delete"))),
						),
					),
				)
			})),
		)),
	)
}

func toggleButton(p Page, action string, t Toggle) g.Node {
	label := t.OffText
	class := "badge off"
	if t.On {
		label = t.OnText
		class = "badge on"
	}
	return Form(Method("post"), Action(action), Class("inline"),
		Button(Type("submit"), Class(class), g.Attr("title", p.T.T("admin.toggle")), g.Text(label)),
	)
}

// AdFilters filtros del listado de anuncios del panel (incluye estado).
func AdFilters(p Page, action string, categories []entity.Category, q dto.AdFilterQuery) g.Node {
	return adFilterForm(p, action, categories, q, true)
}

// LoginPage formulario de acceso al panel.
func LoginPage(p Page, email, next, errKey string) g.Node {
	return Layout(p,
		Section(Class("login"),
			H1(g.Text(p.T.T("login.title"))),
			g.If(errKey != "", P(Class("notice error"), g.Text(p.T.T(errKey)))),
			Form(Method("post"), Action(p.Href("/login")),
				field(p, Field{Name: "email", Kind: KindEmail, Value: email, Required: true}, nil),
				field(p, Field{Name: "password", Kind: KindPassword, Required: true}, nil),
				Input(Type("hidden"), Name("next"), Value(next)),
				Button(Type("submit"), g.Text(p.T.T("login.submit"))),
			),
		),
	)
}
