package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
)

func TestServiceUseCase_CreateValidaFormulario(t *testing.T) {
	repo := newMemRepo(serviceID)
	uc := usecase.NewServiceUseCase(repo, nil)

	_, err := uc.Create(context.Background(), dto.ServiceForm{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, repo.created, "no se llama al backend con datos inválidos")
}

func TestServiceUseCase_CreateSinTraduccion(t *testing.T) {
	repo := newMemRepo(serviceID)
	tr := &fakeTranslator{}
	uc := usecase.NewServiceUseCase(repo, tr)

	s, err := uc.Create(context.Background(), dto.ServiceForm{TitleEn: "SEO", DescriptionEn: "Ranking", Order: 2})
	require.NoError(t, err)
	assert.Equal(t, "id-1", s.ID)
	assert.Equal(t, "", s.TitleAr)
	assert.Zero(t, tr.calls, "sin autoTranslate no se usa la IA")
}

func TestServiceUseCase_AutoTraduceSoloCamposVacios(t *testing.T) {
	repo := newMemRepo(serviceID)
	tr := &fakeTranslator{}
	uc := usecase.NewServiceUseCase(repo, tr)

	s, err := uc.Create(context.Background(), dto.ServiceForm{
		TitleEn: "SEO", TitleAr: "تحسين", DescriptionEn: "Ranking", AutoTranslate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "تحسين", s.TitleAr, "el árabe existente no se pisa")
	assert.Equal(t, "AR:Ranking", s.DescriptionAr)
	assert.Equal(t, 1, tr.calls)
}

func TestServiceUseCase_FalloDeIANoBloqueaGuardado(t *testing.T) {
	repo := newMemRepo(serviceID)
	uc := usecase.NewServiceUseCase(repo, &fakeTranslator{err: errors.New("quota")})

	s, err := uc.Create(context.Background(), dto.ServiceForm{TitleEn: "SEO", DescriptionEn: "Ranking", AutoTranslate: true})
	require.NoError(t, err)
	assert.Empty(t, s.TitleAr)
	assert.Len(t, repo.created, 1)
}

func TestServiceUseCase_ListOrdered(t *testing.T) {
	repo := newMemRepo(serviceID,
		entity.Service{ID: "a", Order: 3},
		entity.Service{ID: "b", Order: 1},
	)
	list, err := usecase.NewServiceUseCase(repo, nil).ListOrdered(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", list[0].ID)
}

func TestContentUseCase_GetInexistente(t *testing.T) {
	uc := usecase.NewFAQUseCase(newMemRepo(faqID), nil)
	_, err := uc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentUseCase_UpdateYDelete(t *testing.T) {
	repo := newMemRepo(faqID, entity.FAQ{ID: "f1", QuestionEn: "Old?", AnswerEn: "Old"})
	uc := usecase.NewFAQUseCase(repo, nil)
	ctx := context.Background()

	f, err := uc.Update(ctx, "f1", dto.FAQForm{QuestionEn: "New?", AnswerEn: "New", Order: 1})
	require.NoError(t, err)
	assert.Equal(t, "f1", f.ID)

	got, err := uc.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "New?", got.QuestionEn)

	assert.ErrorIs(t, uc.Delete(ctx, ""), domain.ErrInvalidInput)
	require.NoError(t, uc.Delete(ctx, "f1"))
	list, _ := uc.List(ctx)
	assert.Empty(t, list)
}

func TestCategoryUseCase_ListByType(t *testing.T) {
	repo := newMemRepo(func(c *entity.Category) *string { return &c.ID },
		entity.Category{ID: "1", Type: entity.CategoryTypeProject},
		entity.Category{ID: "2", Type: entity.CategoryTypeAdvertisement},
		entity.Category{ID: "3"},
	)
	list, err := usecase.NewCategoryUseCase(repo, nil).ListByType(context.Background(), entity.CategoryTypeAdvertisement)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProjectUseCase_VisiblesYToggle(t *testing.T) {
	mem := newMemRepo(projectID,
		entity.Project{ID: "p1", IsVisible: true},
		entity.Project{ID: "p2", IsVisible: false},
	)
	repo := projectRepo{mem}
	uc := usecase.NewProjectUseCase(repo, nil)
	ctx := context.Background()

	list, err := uc.ListVisible(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.GetVisible(ctx, "p2")
	assert.ErrorIs(t, err, domain.ErrNotFound, "un proyecto oculto no es público")

	v, err := uc.ToggleVisibility(ctx, "p2")
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, true, mem.patched["p2"])

	_, err = uc.ToggleVisibility(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
