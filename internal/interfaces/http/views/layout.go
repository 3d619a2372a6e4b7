// Package views genera el HTML del sitio con gomponents. Cada página se escribe una vez
// y se traduce con i18n.Translator; el layout fija lang y dir según el idioma.
package views

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// Page datos comunes a todas las páginas.
type Page struct {
	Lang     i18n.Lang
	T        *i18n.Translator
	SiteName string
	Title    string
	Path     string // ruta sin prefijo de idioma, ej. "/services"
	Query    string // query string original (selector de idioma)
	UserName string
	IsAdmin  bool
	Flash    *Flash
	Contact  *entity.CompanyContact
	Now      time.Time
}

// Flash mensaje tipo toast ya traducido.
type Flash struct {
	Kind    string // success | error
	Message string
}

// Href ruta absoluta en el idioma de la página.
func (p Page) Href(path string) string {
	return "/" + p.Lang.String() + path
}

// switchHref misma página en el otro idioma.
func (p Page) switchHref() string {
	h := "/" + p.Lang.Other().String() + p.Path
	if p.Query != "" {
		h += "?" + p.Query
	}
	return h
}

func (p Page) fullTitle() string {
	if p.Title == "" || p.Title == p.SiteName {
		return p.SiteName
	}
	return p.Title + " | " + p.SiteName
}

// Layout documento completo del sitio público.
func Layout(p Page, body ...g.Node) g.Node {
	return document(p,
		siteHeader(p),
		flashNode(p.Flash),
		Main(Class("container"), g.Group(body)),
		siteFooter(p),
	)
}

func document(p Page, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang(p.Lang.String()),
			g.Attr("dir", p.Lang.Dir()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(p.fullTitle())),
				Link(Rel("stylesheet"), Href("/assets/site.css")),
				Link(Rel("alternate"), g.Attr("hreflang", p.Lang.Other().String()), Href(p.switchHref())),
			),
			Body(Class("lang-"+p.Lang.String()), g.Group(body)),
		),
	)
}

type navLink struct{ path, key string }

func siteHeader(p Page) g.Node {
	links := []navLink{
		{"/", "nav.home"},
		{"/about", "nav.about"},
		{"/services", "nav.services"},
		{"/projects", "nav.projects"},
		{"/advertisements", "nav.advertisements"},
		{"/testimonials", "nav.testimonials"},
		{"/faq", "nav.faq"},
		{"/contact", "nav.contact"},
	}
	return Header(Class("site-header"),
		A(Class("brand"), Href(p.Href("/")), g.Text(p.SiteName)),
		Nav(Ul(
			g.Map(links, func(l navLink) g.Node {
				return Li(A(Href(p.Href(l.path)), g.If(p.Path == l.path, Class("active")), g.Text(p.T.T(l.key))))
			}),
			g.If(p.IsAdmin, Li(A(Href(p.Href("/admin")), g.Text(p.T.T("nav.admin"))))),
			Li(A(Class("lang-switch"), Href(p.switchHref()), g.Attr("hreflang", p.Lang.Other().String()), g.Text(p.T.T("lang.switch")))),
		)),
	)
}

func siteFooter(p Page) g.Node {
	year := p.Now.Year()
	if p.Now.IsZero() {
		year = time.Now().Year()
	}
	return Footer(Class("site-footer"),
		g.Iff(p.Contact != nil, func() g.Node { return contactSummary(p, *p.Contact) }),
		P(A(Href(p.Href("/brochure.pdf")), g.Text(p.T.T("common.brochure")))),
		P(Class("rights"), g.Text(p.T.T("footer.rights", strconv.Itoa(year), p.SiteName))),
	)
}

func contactSummary(p Page, c entity.CompanyContact) g.Node {
	return Div(Class("footer-contact"),
		g.If(c.Phone != "", P(g.Text(p.T.T("contact.phone")+": "), A(Href("tel:"+c.Phone), g.Text(c.Phone)))),
		g.If(c.Email != "", P(g.Text(p.T.T("contact.email")+": "), A(Href("mailto:"+c.Email), g.Text(c.Email)))),
		g.If(len(c.Socials()) > 0, Ul(Class("socials"),
			g.Map(c.Socials(), func(s entity.SocialLink) g.Node {
				return Li(A(Href(s.URL), Target("_blank"), Rel("noopener noreferrer"), g.Text(s.Network)))
			}),
		)),
	)
}

func flashNode(f *Flash) g.Node {
	if f == nil {
		return nil
	}
	return Div(Class("toast toast-"+f.Kind), g.Attr("role", "status"), g.Text(f.Message))
}

// ErrorPage página de error (404, backend caído, etc.).
func ErrorPage(p Page, status int, message string) g.Node {
	return Layout(p,
		Section(Class("error-page"),
			H1(g.Textf("%d", status)),
			P(g.Text(message)),
			A(Class("button"), Href(p.Href("/")), g.Text(p.T.T("nav.home"))),
		),
	)
}

func empty(p Page, key string) g.Node {
	return P(Class("empty"), g.Text(p.T.T(key)))
}

func image(src, alt string) g.Node {
	if src == "" {
		return nil
	}
	return Img(Src(src), Alt(alt), g.Attr("loading", "lazy"))
}
