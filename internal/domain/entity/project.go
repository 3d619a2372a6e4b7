package entity

import (
	"time"

	"github.com/jhoicas/agency-web/pkg/i18n"
)

// Project trabajo del portafolio. Solo los visibles se muestran en el sitio público.
type Project struct {
	ID            string     `json:"_id,omitempty"`
	TitleEn       string     `json:"titleEn"`
	TitleAr       string     `json:"titleAr"`
	DescriptionEn string     `json:"descriptionEn"`
	DescriptionAr string     `json:"descriptionAr"`
	Image         string     `json:"image,omitempty"`
	Link          string     `json:"link,omitempty"`
	CategoryID    string     `json:"category,omitempty"`
	IsVisible     bool       `json:"isVisible"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func (p Project) Title(l i18n.Lang) string       { return i18n.Pick(l, p.TitleEn, p.TitleAr) }
func (p Project) Description(l i18n.Lang) string { return i18n.Pick(l, p.DescriptionEn, p.DescriptionAr) }
