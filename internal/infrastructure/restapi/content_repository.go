package restapi

import (
	"context"

	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

// Rutas de las colecciones en el backend.
const (
	pathServices       = "/service"
	pathProjects       = "/project"
	pathCategories     = "/category"
	pathAdvertisements = "/advertisement"
	pathFAQs           = "/FAQ"
	pathTestimonials   = "/testimonial"
	pathWhyChooseUs    = "/WhyChooseUs"
)

var (
	_ repository.ServiceRepository       = (*ServiceRepo)(nil)
	_ repository.ProjectRepository       = (*ProjectRepo)(nil)
	_ repository.CategoryRepository      = (*CategoryRepo)(nil)
	_ repository.AdvertisementRepository = (*AdvertisementRepo)(nil)
	_ repository.FAQRepository           = (*FAQRepo)(nil)
	_ repository.TestimonialRepository   = (*TestimonialRepo)(nil)
	_ repository.WhyChooseUsRepository   = (*WhyChooseUsRepo)(nil)
)

type ServiceRepo struct{ *Resource[entity.Service] }

func NewServiceRepository(c *Client) *ServiceRepo {
	return &ServiceRepo{NewResource[entity.Service](c, pathServices)}
}

type CategoryRepo struct{ *Resource[entity.Category] }

func NewCategoryRepository(c *Client) *CategoryRepo {
	return &CategoryRepo{NewResource[entity.Category](c, pathCategories)}
}

type FAQRepo struct{ *Resource[entity.FAQ] }

func NewFAQRepository(c *Client) *FAQRepo {
	return &FAQRepo{NewResource[entity.FAQ](c, pathFAQs)}
}

type WhyChooseUsRepo struct{ *Resource[entity.WhyChooseUs] }

func NewWhyChooseUsRepository(c *Client) *WhyChooseUsRepo {
	return &WhyChooseUsRepo{NewResource[entity.WhyChooseUs](c, pathWhyChooseUs)}
}

// ProjectRepo proyectos; SetVisible hace PATCH {isVisible}.
type ProjectRepo struct{ *Resource[entity.Project] }

func NewProjectRepository(c *Client) *ProjectRepo {
	return &ProjectRepo{NewResource[entity.Project](c, pathProjects)}
}

func (r *ProjectRepo) SetVisible(ctx context.Context, id string, visible bool) error {
	return r.Patch(ctx, id, map[string]any{"isVisible": visible})
}

// AdvertisementRepo anuncios; SetPublished hace PATCH {isPublished}.
type AdvertisementRepo struct{ *Resource[entity.Advertisement] }

func NewAdvertisementRepository(c *Client) *AdvertisementRepo {
	return &AdvertisementRepo{NewResource[entity.Advertisement](c, pathAdvertisements)}
}

func (r *AdvertisementRepo) SetPublished(ctx context.Context, id string, published bool) error {
	return r.Patch(ctx, id, map[string]any{"isPublished": published})
}

// TestimonialRepo opiniones; SetApproved hace PATCH {isApproved}.
type TestimonialRepo struct{ *Resource[entity.Testimonial] }

func NewTestimonialRepository(c *Client) *TestimonialRepo {
	return &TestimonialRepo{NewResource[entity.Testimonial](c, pathTestimonials)}
}

func (r *TestimonialRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.Patch(ctx, id, map[string]any{"isApproved": approved})
}
