package usecase

import (
	"context"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/internal/domain/repository"
)

// ServiceUseCase servicios de la agencia.
type ServiceUseCase struct {
	*ContentUseCase[dto.ServiceForm, entity.Service]
}

func NewServiceUseCase(repo repository.ServiceRepository, translator ports.Translator) *ServiceUseCase {
	return &ServiceUseCase{NewContentUseCase[dto.ServiceForm, entity.Service](repo, translator, func(f dto.ServiceForm) (entity.Service, error) {
		return entity.Service{
			TitleEn: f.TitleEn, TitleAr: f.TitleAr,
			DescriptionEn: f.DescriptionEn, DescriptionAr: f.DescriptionAr,
			Icon: f.Icon, Image: f.Image, Order: f.Order,
		}, nil
	})}
}

// ListOrdered servicios por el campo order (ascendente).
func (uc *ServiceUseCase) ListOrdered(ctx context.Context) ([]entity.Service, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.ByOrder(list, func(s entity.Service) int { return s.Order }), nil
}

// CategoryUseCase categorías de proyectos y anuncios.
type CategoryUseCase struct {
	*ContentUseCase[dto.CategoryForm, entity.Category]
}

func NewCategoryUseCase(repo repository.CategoryRepository, translator ports.Translator) *CategoryUseCase {
	return &CategoryUseCase{NewContentUseCase[dto.CategoryForm, entity.Category](repo, translator, func(f dto.CategoryForm) (entity.Category, error) {
		return entity.Category{NameEn: f.NameEn, NameAr: f.NameAr, Type: f.Type}, nil
	})}
}

// ListByType categorías de un tipo (project | advertisement).
func (uc *CategoryUseCase) ListByType(ctx context.Context, typ string) ([]entity.Category, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return entity.CategoriesOfType(list, typ), nil
}

// FAQUseCase preguntas frecuentes.
type FAQUseCase struct {
	*ContentUseCase[dto.FAQForm, entity.FAQ]
}

func NewFAQUseCase(repo repository.FAQRepository, translator ports.Translator) *FAQUseCase {
	return &FAQUseCase{NewContentUseCase[dto.FAQForm, entity.FAQ](repo, translator, func(f dto.FAQForm) (entity.FAQ, error) {
		return entity.FAQ{
			QuestionEn: f.QuestionEn, QuestionAr: f.QuestionAr,
			AnswerEn: f.AnswerEn, AnswerAr: f.AnswerAr, Order: f.Order,
		}, nil
	})}
}

func (uc *FAQUseCase) ListOrdered(ctx context.Context) ([]entity.FAQ, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.ByOrder(list, func(f entity.FAQ) int { return f.Order }), nil
}

// WhyChooseUsUseCase argumentos de "por qué elegirnos".
type WhyChooseUsUseCase struct {
	*ContentUseCase[dto.WhyChooseUsForm, entity.WhyChooseUs]
}

func NewWhyChooseUsUseCase(repo repository.WhyChooseUsRepository, translator ports.Translator) *WhyChooseUsUseCase {
	return &WhyChooseUsUseCase{NewContentUseCase[dto.WhyChooseUsForm, entity.WhyChooseUs](repo, translator, func(f dto.WhyChooseUsForm) (entity.WhyChooseUs, error) {
		return entity.WhyChooseUs{
			TitleEn: f.TitleEn, TitleAr: f.TitleAr,
			DescriptionEn: f.DescriptionEn, DescriptionAr: f.DescriptionAr,
			Icon: f.Icon, Order: f.Order,
		}, nil
	})}
}

func (uc *WhyChooseUsUseCase) ListOrdered(ctx context.Context) ([]entity.WhyChooseUs, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.ByOrder(list, func(w entity.WhyChooseUs) int { return w.Order }), nil
}
