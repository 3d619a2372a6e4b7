package dto

import (
	"time"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// DateLayout formato de fecha de los formularios (input type=date).
const DateLayout = "2006-01-02"

// AdvertisementForm alta/edición de un anuncio. Price llega como texto para no perder precisión.
type AdvertisementForm struct {
	TitleEn       string `form:"titleEn" json:"titleEn" validate:"required,max=200"`
	TitleAr       string `form:"titleAr" json:"titleAr" validate:"max=200"`
	DescriptionEn string `form:"descriptionEn" json:"descriptionEn" validate:"required,max=5000"`
	DescriptionAr string `form:"descriptionAr" json:"descriptionAr" validate:"max=5000"`
	Image         string `form:"image" json:"image" validate:"omitempty,http_url"`
	Price         string `form:"price" json:"price" validate:"required,numeric"`
	Currency      string `form:"currency" json:"currency" validate:"omitempty,alpha,max=10"`
	CategoryID    string `form:"category" json:"category" validate:"max=64"`
	Phone         string `form:"phone" json:"phone" validate:"max=30"`
	IsPublished   bool   `form:"isPublished" json:"isPublished"`
	ExpiresAt     string `form:"expiresAt" json:"expiresAt" validate:"omitempty,datetime=2006-01-02"`
	AutoTranslate bool   `form:"autoTranslate" json:"autoTranslate"`
}

func (f *AdvertisementForm) LocalizedFields() []LocalizedField {
	return []LocalizedField{{&f.TitleEn, &f.TitleAr}, {&f.DescriptionEn, &f.DescriptionAr}}
}
func (f *AdvertisementForm) WantsAutoTranslate() bool { return f.AutoTranslate }

func AdvertisementFormFrom(a entity.Advertisement) AdvertisementForm {
	f := AdvertisementForm{
		TitleEn: a.TitleEn, TitleAr: a.TitleAr,
		DescriptionEn: a.DescriptionEn, DescriptionAr: a.DescriptionAr,
		Image: a.Image, Price: a.Price.String(), Currency: a.Currency,
		CategoryID: a.CategoryID, Phone: a.Phone, IsPublished: a.IsPublished,
	}
	if a.ExpiresAt != nil {
		f.ExpiresAt = a.ExpiresAt.Format(DateLayout)
	}
	return f
}

// AdFilterQuery parámetros de búsqueda de anuncios (?category=&q=&min=&max=&sort=&status=).
type AdFilterQuery struct {
	Category string `query:"category" json:"category"`
	Q        string `query:"q" json:"q"`
	Min      string `query:"min" json:"min"`
	Max      string `query:"max" json:"max"`
	Sort     string `query:"sort" json:"sort"`
	Status   string `query:"status" json:"status"`
}

// AdvertisementResponse anuncio localizado para la API JSON.
type AdvertisementResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	Price       string     `json:"price"`
	Currency    string     `json:"currency,omitempty"`
	CategoryID  string     `json:"category_id,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// AdvertisementListResponse listado filtrado.
type AdvertisementListResponse struct {
	Items []AdvertisementResponse `json:"items"`
	Total int                     `json:"total"`
	Sort  string                  `json:"sort"`
	Lang  string                  `json:"lang"`
}
