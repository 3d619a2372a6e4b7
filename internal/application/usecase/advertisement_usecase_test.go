package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

var clock = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func adFixtures() (*memRepo[entity.Advertisement], *usecase.AdvertisementUseCase) {
	yesterday := clock.AddDate(0, 0, -1)
	mem := newMemRepo(adID,
		entity.Advertisement{ID: "live", TitleEn: "Live", Price: decimal.NewFromInt(100), IsPublished: true},
		entity.Advertisement{ID: "draft", TitleEn: "Draft", Price: decimal.NewFromInt(50)},
		entity.Advertisement{ID: "old", TitleEn: "Old", Price: decimal.NewFromInt(10), IsPublished: true, ExpiresAt: &yesterday},
	)
	uc := usecase.NewAdvertisementUseCase(adRepo{mem}, nil).WithClock(func() time.Time { return clock })
	return mem, uc
}

func TestAdvertisementUseCase_SearchPublic(t *testing.T) {
	_, uc := adFixtures()
	list, err := uc.SearchPublic(context.Background(), dto.AdFilterQuery{}, i18n.English)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "live", list[0].ID)
}

func TestAdvertisementUseCase_SearchAdminPorEstado(t *testing.T) {
	_, uc := adFixtures()
	list, err := uc.SearchAdmin(context.Background(), dto.AdFilterQuery{Status: listing.StatusDraft}, i18n.English)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "draft", list[0].ID)

	list, err = uc.SearchAdmin(context.Background(), dto.AdFilterQuery{Sort: listing.SortPriceAsc}, i18n.English)
	require.NoError(t, err)
	assert.Len(t, list, 3, "admin ve vencidos y borradores")
	assert.Equal(t, "old", list[0].ID)
}

func TestFilterFromQuery_PreciosInvalidosSeIgnoran(t *testing.T) {
	f := usecase.FilterFromQuery(dto.AdFilterQuery{Min: "abc", Max: "200", Sort: "???"}, i18n.Arabic)
	assert.Nil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.True(t, f.MaxPrice.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, listing.SortNewest, f.Sort)
	assert.Equal(t, i18n.Arabic, f.Lang)
}

func TestAdvertisementUseCase_GetPublic(t *testing.T) {
	_, uc := adFixtures()
	ctx := context.Background()

	ad, err := uc.GetPublic(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "Live", ad.TitleEn)

	_, err = uc.GetPublic(ctx, "draft")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetPublic(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdvertisementUseCase_CreateConvierteCampos(t *testing.T) {
	mem, uc := adFixtures()
	ad, err := uc.Create(context.Background(), dto.AdvertisementForm{
		TitleEn: "Promo", DescriptionEn: "Desc", Price: "1500.50", Currency: "sar", ExpiresAt: "2026-04-01",
	})
	require.NoError(t, err)
	assert.True(t, ad.Price.Equal(decimal.RequireFromString("1500.5")))
	assert.Equal(t, "SAR", ad.Currency)
	require.NotNil(t, ad.ExpiresAt)
	assert.Equal(t, "2026-04-01", ad.ExpiresAt.Format(dto.DateLayout))
	assert.Len(t, mem.created, 1)
}

func TestAdvertisementUseCase_PrecioNegativo(t *testing.T) {
	_, uc := adFixtures()
	_, err := uc.Create(context.Background(), dto.AdvertisementForm{TitleEn: "x", DescriptionEn: "y", Price: "-5"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "min", ve.Fields["price"])
}

func TestAdvertisementUseCase_TogglePublish(t *testing.T) {
	mem, uc := adFixtures()
	v, err := uc.TogglePublish(context.Background(), "live")
	require.NoError(t, err)
	assert.False(t, v)
	assert.Equal(t, false, mem.patched["live"])
}

func TestToAdvertisementResponse(t *testing.T) {
	ad := entity.Advertisement{ID: "1", TitleEn: "Promo", Price: decimal.NewFromInt(3), Currency: "USD"}
	r := usecase.ToAdvertisementResponse(ad, i18n.Arabic)
	assert.Equal(t, "Promo", r.Title, "sin árabe se usa el inglés")
	assert.Equal(t, "3.00", r.Price)
}
