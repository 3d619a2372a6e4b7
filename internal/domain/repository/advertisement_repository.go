package repository

import (
	"context"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// AdvertisementRepository puerto para Advertisement con cambio parcial de publicación.
type AdvertisementRepository interface {
	ContentRepository[entity.Advertisement]
	SetPublished(ctx context.Context, id string, published bool) error
}
