// Package sitemap genera sitemap.xml con alternativas hreflang por idioma.
package sitemap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

const (
	nsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	nsXHTML   = "http://www.w3.org/1999/xhtml"
)

// Build devuelve el documento XML. Cada página aparece una vez por idioma y cada
// <url> enlaza a sus alternativas (en, ar y x-default).
func Build(baseURL string, pages []ports.PageRef, defaultLang i18n.Lang) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("sitemap: URL pública vacía")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", nsSitemap)
	urlset.CreateAttr("xmlns:xhtml", nsXHTML)

	for _, p := range pages {
		for _, l := range i18n.Supported {
			u := urlset.CreateElement("url")
			u.CreateElement("loc").SetText(PageURL(base, l, p.Path))
			if p.LastMod != nil {
				u.CreateElement("lastmod").SetText(p.LastMod.UTC().Format("2006-01-02"))
			}
			if p.Priority > 0 {
				u.CreateElement("priority").SetText(strconv.FormatFloat(p.Priority, 'f', 1, 64))
			}
			for _, alt := range i18n.Supported {
				addAlternate(u, alt.String(), PageURL(base, alt, p.Path))
			}
			addAlternate(u, "x-default", PageURL(base, defaultLang, p.Path))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sitemap: serializar: %w", err)
	}
	return out, nil
}

func addAlternate(u *etree.Element, hreflang, href string) {
	link := u.CreateElement("xhtml:link")
	link.CreateAttr("rel", "alternate")
	link.CreateAttr("hreflang", hreflang)
	link.CreateAttr("href", href)
}

// PageURL URL absoluta de path en el idioma l, ej. https://site/ar/services.
func PageURL(base string, l i18n.Lang, path string) string {
	if path == "/" || path == "" {
		return base + "/" + l.String()
	}
	return base + "/" + l.String() + path
}

// Robots contenido de robots.txt: la zona de administración y la API quedan fuera.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, l := range i18n.Supported {
		fmt.Fprintf(&b, "Disallow: /%s/admin\n", l)
		fmt.Fprintf(&b, "Disallow: /%s/login\n", l)
	}
	b.WriteString("Disallow: /api/\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))
	return b.String()
}
