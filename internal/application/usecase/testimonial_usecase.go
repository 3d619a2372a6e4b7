package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/internal/domain/repository"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// TestimonialUseCase opiniones de clientes: envío público y moderación.
type TestimonialUseCase struct {
	*ContentUseCase[dto.TestimonialForm, entity.Testimonial]
	testimonials repository.TestimonialRepository
}

func NewTestimonialUseCase(repo repository.TestimonialRepository) *TestimonialUseCase {
	return &TestimonialUseCase{
		ContentUseCase: NewContentUseCase[dto.TestimonialForm, entity.Testimonial](repo, nil, testimonialFromForm),
		testimonials:   repo,
	}
}

func testimonialFromForm(f dto.TestimonialForm) (entity.Testimonial, error) {
	return entity.Testimonial{
		Name:       strings.TrimSpace(f.Name),
		Position:   strings.TrimSpace(f.Position),
		Message:    strings.TrimSpace(f.Message),
		Rating:     f.Rating,
		Lang:       f.Lang,
		IsApproved: f.IsApproved,
	}, nil
}

// ListApproved opiniones aprobadas, las más recientes primero.
func (uc *TestimonialUseCase) ListApproved(ctx context.Context) ([]entity.Testimonial, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := listing.ApprovedTestimonials(list)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	return out, nil
}

// Submit envío desde el sitio público: siempre queda pendiente de aprobación.
func (uc *TestimonialUseCase) Submit(ctx context.Context, form dto.TestimonialForm, lang i18n.Lang) (*entity.Testimonial, error) {
	form.IsApproved = false
	if form.Lang == "" {
		form.Lang = lang.String()
	}
	return uc.Create(ctx, form)
}

// ToggleApproval invierte isApproved y devuelve el nuevo valor.
func (uc *TestimonialUseCase) ToggleApproval(ctx context.Context, id string) (bool, error) {
	return toggle[entity.Testimonial](ctx, uc.testimonials, id, func(t entity.Testimonial) bool { return t.IsApproved }, uc.testimonials.SetApproved)
}
