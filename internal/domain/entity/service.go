package entity

import (
	"time"

	"github.com/jhoicas/agency-web/pkg/i18n"
)

// Service servicio ofrecido por la agencia (diseño, desarrollo, marketing...).
type Service struct {
	ID            string     `json:"_id,omitempty"`
	TitleEn       string     `json:"titleEn"`
	TitleAr       string     `json:"titleAr"`
	DescriptionEn string     `json:"descriptionEn"`
	DescriptionAr string     `json:"descriptionAr"`
	Icon          string     `json:"icon,omitempty"`
	Image         string     `json:"image,omitempty"`
	Order         int        `json:"order"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func (s Service) Title(l i18n.Lang) string       { return i18n.Pick(l, s.TitleEn, s.TitleAr) }
func (s Service) Description(l i18n.Lang) string { return i18n.Pick(l, s.DescriptionEn, s.DescriptionAr) }
