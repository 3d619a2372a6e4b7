package listing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func at(d int) *time.Time {
	t := now.AddDate(0, 0, d)
	return &t
}

func sampleAds() []entity.Advertisement {
	return []entity.Advertisement{
		{ID: "a", TitleEn: "Website package", TitleAr: "باقة موقع", Price: decimal.RequireFromString("1500"), CategoryID: "web", IsPublished: true, CreatedAt: at(-3)},
		{ID: "b", TitleEn: "Logo design", TitleAr: "تصميم شعار", DescriptionEn: "Brand identity", Price: decimal.RequireFromString("300.50"), CategoryID: "design", IsPublished: true, CreatedAt: at(-1)},
		{ID: "c", TitleEn: "SEO audit", Price: decimal.RequireFromString("800"), CategoryID: "web", IsPublished: false, CreatedAt: at(-2)},
		{ID: "d", TitleEn: "App promo", Price: decimal.RequireFromString("50"), CategoryID: "web", IsPublished: true, CreatedAt: at(-5), ExpiresAt: at(-1)},
	}
}

func ids(ads []entity.Advertisement) []string {
	out := make([]string, 0, len(ads))
	for _, a := range ads {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterAds_DefaultNewestFirst(t *testing.T) {
	got := listing.FilterAds(sampleAds(), listing.AdFilter{}, now)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(got))
}

func TestFilterAds_NoMutaEntrada(t *testing.T) {
	in := sampleAds()
	_ = listing.FilterAds(in, listing.AdFilter{Sort: listing.SortPriceAsc}, now)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(in))
}

func TestFilterAds_Categoria(t *testing.T) {
	got := listing.FilterAds(sampleAds(), listing.AdFilter{CategoryID: "design"}, now)
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestFilterAds_BusquedaBilingueSinMayusculas(t *testing.T) {
	got := listing.FilterAds(sampleAds(), listing.AdFilter{Query: "  BRAND "}, now)
	assert.Equal(t, []string{"b"}, ids(got), "busca también en la descripción")

	got = listing.FilterAds(sampleAds(), listing.AdFilter{Query: "شعار"}, now)
	assert.Equal(t, []string{"b"}, ids(got), "busca en campos árabes")
}

func TestFilterAds_RangoDePrecio(t *testing.T) {
	min := decimal.RequireFromString("300.50")
	max := decimal.RequireFromString("1000")
	got := listing.FilterAds(sampleAds(), listing.AdFilter{MinPrice: &min, MaxPrice: &max, Sort: listing.SortPriceAsc}, now)
	assert.Equal(t, []string{"b", "c"}, ids(got), "los límites son inclusivos")
}

func TestFilterAds_Estado(t *testing.T) {
	got := listing.FilterAds(sampleAds(), listing.AdFilter{Status: listing.StatusDraft}, now)
	assert.Equal(t, []string{"c"}, ids(got))

	got = listing.FilterAds(sampleAds(), listing.AdFilter{Status: listing.StatusPublished, Sort: listing.SortOldest}, now)
	assert.Equal(t, []string{"d", "a", "b"}, ids(got))
}

func TestPublicAds_OcultaBorradoresYVencidos(t *testing.T) {
	got := listing.PublicAds(sampleAds(), listing.AdFilter{Status: listing.StatusAll}, now)
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestSortAds_Precio(t *testing.T) {
	got := listing.FilterAds(sampleAds(), listing.AdFilter{Sort: listing.SortPriceDesc}, now)
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(got))
}

func TestSortAds_TituloSegunIdioma(t *testing.T) {
	got := listing.FilterAds(sampleAds(), listing.AdFilter{Sort: listing.SortTitle, Lang: i18n.English}, now)
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids(got))
}

func TestNormalizeSort(t *testing.T) {
	assert.Equal(t, listing.SortNewest, listing.NormalizeSort(""))
	assert.Equal(t, listing.SortNewest, listing.NormalizeSort("random"))
	assert.Equal(t, listing.SortTitle, listing.NormalizeSort("title"))
}

func TestVisibleProjects(t *testing.T) {
	projects := []entity.Project{
		{ID: "1", IsVisible: true, CategoryID: "web"},
		{ID: "2", IsVisible: false, CategoryID: "web"},
		{ID: "3", IsVisible: true, CategoryID: "mobile"},
	}
	assert.Len(t, listing.VisibleProjects(projects, ""), 2)
	got := listing.VisibleProjects(projects, "mobile")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "3", got[0].ID)
	}
}

func TestByOrderYTake(t *testing.T) {
	faqs := []entity.FAQ{{ID: "x", Order: 3}, {ID: "y", Order: 1}, {ID: "z", Order: 2}}
	sorted := listing.ByOrder(faqs, func(f entity.FAQ) int { return f.Order })
	assert.Equal(t, "y", sorted[0].ID)
	assert.Equal(t, "x", faqs[0].ID, "la entrada no se modifica")
	assert.Len(t, listing.Take(sorted, 2), 2)
	assert.Len(t, listing.Take(sorted, 10), 3)
}
