// Package listing contiene las reglas de filtrado y orden de los listados públicos
// y de administración (servicio de dominio, sin E/S).
package listing

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agency-web/internal/domain/entity"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// Criterios de orden de anuncios.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortTitle     = "title"
)

// SortOptions en el orden en que se muestran en el selector.
var SortOptions = []string{SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortTitle}

// Estados para el filtro de administración.
const (
	StatusAll       = "all"
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// AdFilter criterios de búsqueda de anuncios. Los campos vacíos no filtran.
type AdFilter struct {
	CategoryID  string
	Query       string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Status      string // all | published | draft (vacío = all)
	HideExpired bool
	Sort        string
	Lang        i18n.Lang // idioma para ordenar por título
}

// NormalizeSort devuelve un criterio válido; desconocido o vacío = newest.
func NormalizeSort(s string) string {
	for _, o := range SortOptions {
		if s == o {
			return s
		}
	}
	return SortNewest
}

// FilterAds aplica f a ads y devuelve una copia ordenada. ads no se modifica.
func FilterAds(ads []entity.Advertisement, f AdFilter, now time.Time) []entity.Advertisement {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]entity.Advertisement, 0, len(ads))
	for _, a := range ads {
		if f.CategoryID != "" && a.CategoryID != f.CategoryID {
			continue
		}
		switch f.Status {
		case StatusPublished:
			if !a.IsPublished {
				continue
			}
		case StatusDraft:
			if a.IsPublished {
				continue
			}
		}
		if f.HideExpired && a.Expired(now) {
			continue
		}
		if f.MinPrice != nil && a.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && a.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if q != "" && !matchesAd(a, q) {
			continue
		}
		out = append(out, a)
	}
	SortAds(out, f.Sort, f.Lang)
	return out
}

// PublicAds anuncios visibles para visitantes: publicados y vigentes.
func PublicAds(ads []entity.Advertisement, f AdFilter, now time.Time) []entity.Advertisement {
	f.Status = StatusPublished
	f.HideExpired = true
	return FilterAds(ads, f, now)
}

func matchesAd(a entity.Advertisement, q string) bool {
	for _, s := range []string{a.TitleEn, a.TitleAr, a.DescriptionEn, a.DescriptionAr} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// SortAds ordena in-place de forma estable según criterio e idioma.
func SortAds(ads []entity.Advertisement, criterion string, lang i18n.Lang) {
	switch NormalizeSort(criterion) {
	case SortOldest:
		sort.SliceStable(ads, func(i, j int) bool { return createdAt(ads[i]).Before(createdAt(ads[j])) })
	case SortPriceAsc:
		sort.SliceStable(ads, func(i, j int) bool { return ads[i].Price.LessThan(ads[j].Price) })
	case SortPriceDesc:
		sort.SliceStable(ads, func(i, j int) bool { return ads[i].Price.GreaterThan(ads[j].Price) })
	case SortTitle:
		c := lang.Collator()
		sort.SliceStable(ads, func(i, j int) bool {
			return c.CompareString(ads[i].Title(lang), ads[j].Title(lang)) < 0
		})
	default:
		sort.SliceStable(ads, func(i, j int) bool { return createdAt(ads[i]).After(createdAt(ads[j])) })
	}
}

func createdAt(a entity.Advertisement) time.Time {
	if a.CreatedAt == nil {
		return time.Time{}
	}
	return *a.CreatedAt
}
