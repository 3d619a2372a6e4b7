// Package brochure genera el perfil de la empresa en PDF.
package brochure

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

// PDFUseCase arma los datos del perfil y delega el dibujo al generador.
type PDFUseCase struct {
	company   repository.CompanyRepository
	services  repository.ServiceRepository
	projects  repository.ProjectRepository
	why       repository.WhyChooseUsRepository
	generator ports.ProfilePDFGenerator
	siteName  string
	publicURL string
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	company repository.CompanyRepository,
	services repository.ServiceRepository,
	projects repository.ProjectRepository,
	why repository.WhyChooseUsRepository,
	generator ports.ProfilePDFGenerator,
	siteName, publicURL string,
) *PDFUseCase {
	return &PDFUseCase{
		company:   company,
		services:  services,
		projects:  projects,
		why:       why,
		generator: generator,
		siteName:  siteName,
		publicURL: publicURL,
	}
}

// Download recupera contacto, "quiénes somos", servicios y proyectos visibles y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - el error del backend       si alguna consulta falla.
func (uc *PDFUseCase) Download(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	data := ports.ProfileData{SiteName: uc.siteName, PublicURL: uc.publicURL}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Contact, err = uc.company.GetContact(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.About, err = uc.company.GetAbout(gctx)
		return err
	})
	g.Go(func() error {
		list, err := uc.services.List(gctx)
		data.Services = listing.ByOrder(list, func(s entity.Service) int { return s.Order })
		return err
	})
	g.Go(func() error {
		list, err := uc.projects.List(gctx)
		data.Projects = listing.VisibleProjects(list, "")
		return err
	})
	g.Go(func() error {
		list, err := uc.why.List(gctx)
		data.Why = listing.ByOrder(list, func(w entity.WhyChooseUs) int { return w.Order })
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, "", fmt.Errorf("brochure: %w", err)
	}

	pdfBytes, err = uc.generator.Generate(data)
	if err != nil {
		return nil, "", fmt.Errorf("brochure: generar PDF: %w", err)
	}
	return pdfBytes, Filename(uc.siteName), nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Filename nombre de descarga a partir del nombre del sitio, ej. "acme-agency-profile.pdf".
func Filename(siteName string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(siteName), "-"), "-")
	if slug == "" {
		slug = "company"
	}
	return slug + "-profile.pdf"
}
