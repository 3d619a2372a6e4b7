package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// Cantidad de elementos por sección de la página de inicio.
const homeSectionSize = 6

// HomeData contenido de la página de inicio. Una sección que falló queda vacía.
type HomeData struct {
	About        *entity.AboutSection
	Contact      *entity.CompanyContact
	Services     []entity.Service
	Projects     []entity.Project
	Why          []entity.WhyChooseUs
	Testimonials []entity.Testimonial
	Failed       []string // secciones que no se pudieron cargar
}

// SiteUseCase agrega el contenido público de varias fuentes.
type SiteUseCase struct {
	company      *CompanyUseCase
	services     *ServiceUseCase
	projects     *ProjectUseCase
	why          *WhyChooseUsUseCase
	testimonials *TestimonialUseCase
	ads          *AdvertisementUseCase
}

func NewSiteUseCase(company *CompanyUseCase, services *ServiceUseCase, projects *ProjectUseCase, why *WhyChooseUsUseCase, testimonials *TestimonialUseCase, ads *AdvertisementUseCase) *SiteUseCase {
	return &SiteUseCase{company: company, services: services, projects: projects, why: why, testimonials: testimonials, ads: ads}
}

// Home consulta todas las secciones en paralelo. Los errores se registran y la
// sección correspondiente se omite; la página se renderiza igual.
func (uc *SiteUseCase) Home(ctx context.Context) *HomeData {
	var (
		data HomeData
		mu   sync.Mutex
		wg   sync.WaitGroup
	)
	run := func(section string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Warn().Err(err).Str("section", section).Msg("inicio: sección omitida")
				mu.Lock()
				data.Failed = append(data.Failed, section)
				mu.Unlock()
			}
		}()
	}

	run("about", func() (err error) {
		data.About, err = uc.company.GetAbout(ctx)
		return err
	})
	run("contact", func() (err error) {
		data.Contact, err = uc.company.GetContact(ctx)
		return err
	})
	run("services", func() error {
		list, err := uc.services.ListOrdered(ctx)
		data.Services = listing.Take(list, homeSectionSize)
		return err
	})
	run("projects", func() error {
		list, err := uc.projects.ListVisible(ctx, "")
		data.Projects = listing.Take(list, homeSectionSize)
		return err
	})
	run("why", func() (err error) {
		data.Why, err = uc.why.ListOrdered(ctx)
		return err
	})
	run("testimonials", func() error {
		list, err := uc.testimonials.ListApproved(ctx)
		data.Testimonials = listing.Take(list, homeSectionSize)
		return err
	})

	wg.Wait()
	return &data
}

// StaticPages páginas públicas fijas, en el orden del menú.
var StaticPages = []string{"/", "/about", "/services", "/projects", "/advertisements", "/contact", "/testimonials", "/faq"}

// Pages páginas públicas para el sitemap: estáticas, servicios, proyectos visibles y
// anuncios públicos. Una colección que falla se registra y se omite.
func (uc *SiteUseCase) Pages(ctx context.Context) []ports.PageRef {
	pages := make([]ports.PageRef, 0, len(StaticPages)+32)
	for _, p := range StaticPages {
		prio := 0.8
		if p == "/" {
			prio = 1.0
		}
		pages = append(pages, ports.PageRef{Path: p, Priority: prio})
	}

	if list, err := uc.services.List(ctx); err != nil {
		log.Warn().Err(err).Msg("sitemap: servicios omitidos")
	} else {
		for _, s := range list {
			pages = append(pages, ports.PageRef{Path: "/services/" + s.ID, LastMod: lastMod(s.UpdatedAt, s.CreatedAt)})
		}
	}
	if list, err := uc.projects.ListVisible(ctx, ""); err != nil {
		log.Warn().Err(err).Msg("sitemap: proyectos omitidos")
	} else {
		for _, p := range list {
			pages = append(pages, ports.PageRef{Path: "/projects/" + p.ID, LastMod: lastMod(p.UpdatedAt, p.CreatedAt)})
		}
	}
	if list, err := uc.ads.SearchPublic(ctx, dto.AdFilterQuery{}, i18n.English); err != nil {
		log.Warn().Err(err).Msg("sitemap: anuncios omitidos")
	} else {
		for _, a := range list {
			pages = append(pages, ports.PageRef{Path: "/advertisements/" + a.ID, LastMod: lastMod(a.UpdatedAt, a.CreatedAt), Priority: 0.6})
		}
	}
	return pages
}

func lastMod(updated, created *time.Time) *time.Time {
	if updated != nil {
		return updated
	}
	return created
}
