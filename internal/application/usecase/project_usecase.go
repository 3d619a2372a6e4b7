package usecase

import (
	"context"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

// ProjectUseCase portafolio. El sitio público solo ve proyectos visibles.
type ProjectUseCase struct {
	*ContentUseCase[dto.ProjectForm, entity.Project]
	projects repository.ProjectRepository
}

func NewProjectUseCase(repo repository.ProjectRepository, translator ports.Translator) *ProjectUseCase {
	return &ProjectUseCase{
		ContentUseCase: NewContentUseCase[dto.ProjectForm, entity.Project](repo, translator, func(f dto.ProjectForm) (entity.Project, error) {
			return entity.Project{
				TitleEn: f.TitleEn, TitleAr: f.TitleAr,
				DescriptionEn: f.DescriptionEn, DescriptionAr: f.DescriptionAr,
				Image: f.Image, Link: f.Link, CategoryID: f.CategoryID, IsVisible: f.IsVisible,
			}, nil
		}),
		projects: repo,
	}
}

// ListVisible proyectos visibles, opcionalmente de una categoría.
func (uc *ProjectUseCase) ListVisible(ctx context.Context, categoryID string) ([]entity.Project, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.VisibleProjects(list, categoryID), nil
}

// GetVisible un proyecto oculto se trata como inexistente.
func (uc *ProjectUseCase) GetVisible(ctx context.Context, id string) (*entity.Project, error) {
	p, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsVisible {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ToggleVisibility invierte isVisible y devuelve el nuevo valor.
func (uc *ProjectUseCase) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	return toggle[entity.Project](ctx, uc.projects, id, func(p entity.Project) bool { return p.IsVisible }, uc.projects.SetVisible)
}
