package repository

import (
	"context"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// ProjectRepository puerto para Project con cambio parcial de visibilidad.
type ProjectRepository interface {
	ContentRepository[entity.Project]
	SetVisible(ctx context.Context, id string, visible bool) error
}
