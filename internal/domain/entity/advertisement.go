package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agency-web/pkg/i18n"
)

// Advertisement anuncio publicado por la agencia. Price usa decimal para no perder centavos.
type Advertisement struct {
	ID            string          `json:"_id,omitempty"`
	TitleEn       string          `json:"titleEn"`
	TitleAr       string          `json:"titleAr"`
	DescriptionEn string          `json:"descriptionEn"`
	DescriptionAr string          `json:"descriptionAr"`
	Image         string          `json:"image,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency,omitempty"`
	CategoryID    string          `json:"category,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	IsPublished   bool            `json:"isPublished"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

func (a Advertisement) Title(l i18n.Lang) string       { return i18n.Pick(l, a.TitleEn, a.TitleAr) }
func (a Advertisement) Description(l i18n.Lang) string { return i18n.Pick(l, a.DescriptionEn, a.DescriptionAr) }

// Expired indica si el anuncio venció respecto a now. Sin fecha nunca vence.
func (a Advertisement) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}

// Public un anuncio es público si está publicado y no ha vencido.
func (a Advertisement) Public(now time.Time) bool {
	return a.IsPublished && !a.Expired(now)
}

// PriceLabel precio con dos decimales y moneda, ej. "1500.00 SAR".
func (a Advertisement) PriceLabel() string {
	s := a.Price.StringFixed(2)
	if a.Currency != "" {
		s += " " + a.Currency
	}
	return s
}
