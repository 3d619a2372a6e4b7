// Package analytics contiene el caso de uso del resumen del panel de administración.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

// Sources repositorios que alimentan el panel.
type Sources struct {
	Services     repository.ServiceRepository
	Projects     repository.ProjectRepository
	Categories   repository.CategoryRepository
	Ads          repository.AdvertisementRepository
	FAQs         repository.FAQRepository
	Testimonials repository.TestimonialRepository
	Users        repository.UserRepository
}

// DashboardUseCase cuenta el contenido de cada colección del backend.
type DashboardUseCase struct {
	src Sources
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Sources) *DashboardUseCase {
	return &DashboardUseCase{src: src}
}

// GetSummary consulta todas las colecciones en paralelo y espera a todas antes de responder.
// Si una falla, el resumen completo falla (el panel no muestra cifras parciales).
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var out dto.DashboardSummaryDTO
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := uc.src.Services.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: servicios: %w", err)
		}
		out.Services = len(list)
		return nil
	})
	g.Go(func() error {
		list, err := uc.src.Projects.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: proyectos: %w", err)
		}
		out.Projects = len(list)
		out.VisibleProjects = count(list, func(p entity.Project) bool { return p.IsVisible })
		return nil
	})
	g.Go(func() error {
		list, err := uc.src.Categories.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: categorías: %w", err)
		}
		out.Categories = len(list)
		return nil
	})
	g.Go(func() error {
		list, err := uc.src.Ads.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: anuncios: %w", err)
		}
		out.Advertisements = len(list)
		out.PublishedAds = count(list, func(a entity.Advertisement) bool { return a.IsPublished })
		return nil
	})
	g.Go(func() error {
		list, err := uc.src.FAQs.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: preguntas: %w", err)
		}
		out.FAQs = len(list)
		return nil
	})
	g.Go(func() error {
		list, err := uc.src.Testimonials.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: testimonios: %w", err)
		}
		out.Testimonials = len(list)
		out.PendingTestimonials = count(list, func(t entity.Testimonial) bool { return !t.IsApproved })
		return nil
	})
	g.Go(func() error {
		list, err := uc.src.Users.List(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: usuarios: %w", err)
		}
		out.Users = len(list)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}
