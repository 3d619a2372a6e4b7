// Package pdf genera el perfil de la empresa (brochure) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del sitio      │  Tel / Email / Web          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QUIÉNES SOMOS: título + contenido + misión / visión        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Servicio | Descripción                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROYECTOS: título + enlace                                  │
//	│  POR QUÉ ELEGIRNOS                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: dirección + redes + QR al sitio público             │
//	└─────────────────────────────────────────────────────────────┘
//
// El contenido va en inglés: la fuente helvetica no dibuja glifos árabes.
package pdf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain/entity"
)

var _ ports.ProfilePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 14, Green: 74, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Longitud máxima de las descripciones en la tabla de servicios.
const maxDescription = 220

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ProfilePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(data ports.ProfileData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(latin1(data.SiteName)+" - Company profile", true).
		WithAuthor(latin1(data.SiteName), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if data.About != nil && data.About.ContentEn != "" {
		m.AddRows(aboutRows(data.About)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	if len(data.Services) > 0 {
		m.AddRows(sectionTitle("OUR SERVICES"))
		m.AddRows(tableHeaderRow())
		m.AddRows(serviceRows(data.Services)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	if len(data.Projects) > 0 {
		m.AddRows(sectionTitle("SELECTED PROJECTS"))
		m.AddRows(projectRows(data.Projects)...)
	}

	if len(data.Why) > 0 {
		m.AddRows(sectionTitle("WHY CHOOSE US"))
		m.AddRows(whyRows(data.Why)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del sitio (izq) y contacto (der).
func headerRow(data ports.ProfileData) core.Row {
	c := data.Contact
	if c == nil {
		c = &entity.CompanyContact{}
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(latin1(data.SiteName), props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New("Company profile", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Tel: "+nonEmpty(c.Phone, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New("Email: "+nonEmpty(c.Email, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New(nonEmpty(data.PublicURL, ""), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

// aboutRows: título, contenido y misión/visión si existen.
func aboutRows(a *entity.AboutSection) []core.Row {
	rows := []core.Row{
		sectionTitle(strings.ToUpper(latin1(nonEmpty(a.TitleEn, "About us")))),
		row.New(textHeight(a.ContentEn)).Add(col.New(12).Add(
			text.New(latin1(a.ContentEn), props.Text{Size: 9, Top: 1}),
		)),
	}
	if a.MissionEn != "" || a.VisionEn != "" {
		rows = append(rows, row.New(20).Add(
			col.New(6).Add(
				text.New("Mission", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
				text.New(latin1(a.MissionEn), props.Text{Size: 8, Top: 6, Right: 3, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("Vision", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
				text.New(latin1(a.VisionEn), props.Text{Size: 8, Top: 6, Color: colorGray}),
			),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de servicios.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(h("Service", 4), h("Description", 8)).
		WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// serviceRows: una fila por servicio.
func serviceRows(services []entity.Service) []core.Row {
	result := make([]core.Row, 0, len(services))
	for _, s := range services {
		result = append(result, row.New(12).Add(
			col.New(4).Add(text.New(latin1(s.TitleEn), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(8).Add(text.New(truncate(latin1(s.DescriptionEn), maxDescription), props.Text{
				Size: 8, Top: 1, Right: 1, Color: colorGray,
			})),
		))
	}
	return result
}

func projectRows(projects []entity.Project) []core.Row {
	result := make([]core.Row, 0, len(projects))
	for _, p := range projects {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New("- "+latin1(p.TitleEn), props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(p.Link, props.Text{Size: 8, Top: 1, Align: align.Right, Color: colorGray})),
		))
	}
	return result
}

func whyRows(items []entity.WhyChooseUs) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, w := range items {
		result = append(result, row.New(10).Add(col.New(12).Add(
			text.New(latin1(w.TitleEn), props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New(truncate(latin1(w.DescriptionEn), maxDescription), props.Text{Size: 8, Top: 5, Color: colorGray}),
		)))
	}
	return result
}

// footerRows: dirección, redes y QR hacia el sitio público.
func footerRows(data ports.ProfileData) []core.Row {
	c := data.Contact
	if c == nil {
		c = &entity.CompanyContact{}
	}
	socials := make([]string, 0, 4)
	for _, s := range c.Socials() {
		socials = append(socials, s.Network+": "+s.URL)
	}

	info := col.New(8).Add(
		text.New("Address: "+nonEmpty(latin1(c.AddressEn), "-"), props.Text{Size: 8, Top: 2, Color: colorGray}),
		text.New(strings.Join(socials, "   |   "), props.Text{Size: 7, Top: 8, Color: colorGray}),
	)
	if data.PublicURL == "" {
		return []core.Row{row.New(16).Add(info)}
	}
	return []core.Row{row.New(36).Add(
		info,
		col.New(4).Add(code.NewQr(data.PublicURL, props.Rect{Percent: 90, Center: true})),
	)}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// textHeight alto aproximado (mm) de un párrafo a cuerpo 9 en el ancho completo.
func textHeight(s string) float64 {
	lines := utf8.RuneCountInString(s)/105 + 1 + strings.Count(s, "\n")
	return float64(lines)*4.5 + 3
}

// truncate corta s a n runas añadiendo "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "..."
}

// latin1 descarta runas fuera de Latin-1: helvetica no puede dibujarlas.
func latin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= 0xFF {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
