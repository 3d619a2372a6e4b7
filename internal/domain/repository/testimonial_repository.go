package repository

import (
	"context"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// TestimonialRepository puerto para Testimonial con aprobación parcial.
type TestimonialRepository interface {
	ContentRepository[entity.Testimonial]
	SetApproved(ctx context.Context, id string, approved bool) error
}
