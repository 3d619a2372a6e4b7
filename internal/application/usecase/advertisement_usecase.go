package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/internal/domain/repository"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// AdvertisementUseCase anuncios: CRUD de administración, búsqueda pública y publicación.
type AdvertisementUseCase struct {
	*ContentUseCase[dto.AdvertisementForm, entity.Advertisement]
	ads repository.AdvertisementRepository
	now func() time.Time
}

func NewAdvertisementUseCase(repo repository.AdvertisementRepository, translator ports.Translator) *AdvertisementUseCase {
	return &AdvertisementUseCase{
		ContentUseCase: NewContentUseCase[dto.AdvertisementForm, entity.Advertisement](repo, translator, advertisementFromForm),
		ads:            repo,
		now:            time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *AdvertisementUseCase) WithClock(now func() time.Time) *AdvertisementUseCase {
	uc.now = now
	return uc
}

func advertisementFromForm(f dto.AdvertisementForm) (entity.Advertisement, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return entity.Advertisement{}, &domain.ValidationError{Fields: map[string]string{"price": "numeric"}}
	}
	if price.IsNegative() {
		return entity.Advertisement{}, &domain.ValidationError{Fields: map[string]string{"price": "min"}}
	}
	ad := entity.Advertisement{
		TitleEn: f.TitleEn, TitleAr: f.TitleAr,
		DescriptionEn: f.DescriptionEn, DescriptionAr: f.DescriptionAr,
		Image: f.Image, Price: price, Currency: strings.ToUpper(f.Currency),
		CategoryID: f.CategoryID, Phone: f.Phone, IsPublished: f.IsPublished,
	}
	if f.ExpiresAt != "" {
		exp, err := time.Parse(dto.DateLayout, f.ExpiresAt)
		if err != nil {
			return entity.Advertisement{}, &domain.ValidationError{Fields: map[string]string{"expiresAt": "datetime"}}
		}
		// Vigente durante todo el día indicado.
		exp = exp.Add(24*time.Hour - time.Second)
		ad.ExpiresAt = &exp
	}
	return ad, nil
}

// FilterFromQuery traduce los parámetros de la URL a un listing.AdFilter.
// Precios no numéricos se ignoran en lugar de fallar.
func FilterFromQuery(q dto.AdFilterQuery, lang i18n.Lang) listing.AdFilter {
	f := listing.AdFilter{
		CategoryID: strings.TrimSpace(q.Category),
		Query:      q.Q,
		Status:     q.Status,
		Sort:       listing.NormalizeSort(q.Sort),
		Lang:       lang,
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(q.Min)); err == nil {
		f.MinPrice = &d
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(q.Max)); err == nil {
		f.MaxPrice = &d
	}
	return f
}

// SearchPublic anuncios publicados y vigentes que cumplen el filtro.
func (uc *AdvertisementUseCase) SearchPublic(ctx context.Context, q dto.AdFilterQuery, lang i18n.Lang) ([]entity.Advertisement, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.PublicAds(list, FilterFromQuery(q, lang), uc.now()), nil
}

// SearchAdmin todos los anuncios (incluye borradores y vencidos) filtrados por estado.
func (uc *AdvertisementUseCase) SearchAdmin(ctx context.Context, q dto.AdFilterQuery, lang i18n.Lang) ([]entity.Advertisement, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.FilterAds(list, FilterFromQuery(q, lang), uc.now()), nil
}

// GetPublic un anuncio en borrador o vencido se trata como inexistente.
func (uc *AdvertisementUseCase) GetPublic(ctx context.Context, id string) (*entity.Advertisement, error) {
	ad, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ad.Public(uc.now()) {
		return nil, domain.ErrNotFound
	}
	return ad, nil
}

// TogglePublish invierte isPublished y devuelve el nuevo valor.
func (uc *AdvertisementUseCase) TogglePublish(ctx context.Context, id string) (bool, error) {
	return toggle[entity.Advertisement](ctx, uc.ads, id, func(a entity.Advertisement) bool { return a.IsPublished }, uc.ads.SetPublished)
}

// ToAdvertisementResponse anuncio localizado para la API JSON.
func ToAdvertisementResponse(a entity.Advertisement, lang i18n.Lang) dto.AdvertisementResponse {
	return dto.AdvertisementResponse{
		ID:          a.ID,
		Title:       a.Title(lang),
		Description: a.Description(lang),
		Image:       a.Image,
		Price:       a.Price.StringFixed(2),
		Currency:    a.Currency,
		CategoryID:  a.CategoryID,
		Phone:       a.Phone,
		ExpiresAt:   a.ExpiresAt,
		CreatedAt:   a.CreatedAt,
	}
}
