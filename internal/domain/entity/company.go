package entity

import "github.com/jhoicas/agency-web/pkg/i18n"

// CompanyContact datos de contacto de la agencia (registro único en el backend).
type CompanyContact struct {
	ID        string `json:"_id,omitempty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	AddressEn string `json:"addressEn"`
	AddressAr string `json:"addressAr"`
	MapURL    string `json:"mapUrl,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

func (c CompanyContact) Address(l i18n.Lang) string { return i18n.Pick(l, c.AddressEn, c.AddressAr) }

// SocialLink red social con URL.
type SocialLink struct {
	Network string
	URL     string
}

// Socials devuelve solo las redes configuradas, en orden fijo.
func (c CompanyContact) Socials() []SocialLink {
	all := []SocialLink{
		{"Facebook", c.Facebook},
		{"Instagram", c.Instagram},
		{"LinkedIn", c.LinkedIn},
		{"X", c.Twitter},
	}
	out := make([]SocialLink, 0, len(all))
	for _, s := range all {
		if s.URL != "" {
			out = append(out, s)
		}
	}
	return out
}

// AboutSection contenido de "Quiénes somos" (registro único).
type AboutSection struct {
	ID        string `json:"_id,omitempty"`
	TitleEn   string `json:"titleEn"`
	TitleAr   string `json:"titleAr"`
	ContentEn string `json:"contentEn"`
	ContentAr string `json:"contentAr"`
	MissionEn string `json:"missionEn,omitempty"`
	MissionAr string `json:"missionAr,omitempty"`
	VisionEn  string `json:"visionEn,omitempty"`
	VisionAr  string `json:"visionAr,omitempty"`
	Image     string `json:"image,omitempty"`
}

func (a AboutSection) Title(l i18n.Lang) string   { return i18n.Pick(l, a.TitleEn, a.TitleAr) }
func (a AboutSection) Content(l i18n.Lang) string { return i18n.Pick(l, a.ContentEn, a.ContentAr) }
func (a AboutSection) Mission(l i18n.Lang) string { return i18n.Pick(l, a.MissionEn, a.MissionAr) }
func (a AboutSection) Vision(l i18n.Lang) string  { return i18n.Pick(l, a.VisionEn, a.VisionAr) }

// WhyChooseUs argumento de venta mostrado en inicio y "Quiénes somos".
type WhyChooseUs struct {
	ID            string `json:"_id,omitempty"`
	TitleEn       string `json:"titleEn"`
	TitleAr       string `json:"titleAr"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionAr string `json:"descriptionAr"`
	Icon          string `json:"icon,omitempty"`
	Order         int    `json:"order"`
}

func (w WhyChooseUs) Title(l i18n.Lang) string       { return i18n.Pick(l, w.TitleEn, w.TitleAr) }
func (w WhyChooseUs) Description(l i18n.Lang) string { return i18n.Pick(l, w.DescriptionEn, w.DescriptionAr) }
