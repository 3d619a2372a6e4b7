package dto

import "github.com/jhoicas/agency-web/internal/domain/entity"

// ContactForm edición de los datos de contacto de la empresa.
type ContactForm struct {
	Phone     string `form:"phone" json:"phone" validate:"max=30"`
	Email     string `form:"email" json:"email" validate:"omitempty,email"`
	WhatsApp  string `form:"whatsapp" json:"whatsapp" validate:"max=30"`
	AddressEn string `form:"addressEn" json:"addressEn" validate:"max=300"`
	AddressAr string `form:"addressAr" json:"addressAr" validate:"max=300"`
	MapURL    string `form:"mapUrl" json:"mapUrl" validate:"omitempty,http_url"`
	Facebook  string `form:"facebook" json:"facebook" validate:"omitempty,http_url"`
	Instagram string `form:"instagram" json:"instagram" validate:"omitempty,http_url"`
	LinkedIn  string `form:"linkedin" json:"linkedin" validate:"omitempty,http_url"`
	Twitter   string `form:"twitter" json:"twitter" validate:"omitempty,http_url"`
}

func ContactFormFrom(c entity.CompanyContact) ContactForm {
	return ContactForm{
		Phone: c.Phone, Email: c.Email, WhatsApp: c.WhatsApp,
		AddressEn: c.AddressEn, AddressAr: c.AddressAr, MapURL: c.MapURL,
		Facebook: c.Facebook, Instagram: c.Instagram, LinkedIn: c.LinkedIn, Twitter: c.Twitter,
	}
}

// AboutForm edición de la sección "Quiénes somos".
type AboutForm struct {
	TitleEn       string `form:"titleEn" json:"titleEn" validate:"required,max=200"`
	TitleAr       string `form:"titleAr" json:"titleAr" validate:"max=200"`
	ContentEn     string `form:"contentEn" json:"contentEn" validate:"required,max=10000"`
	ContentAr     string `form:"contentAr" json:"contentAr" validate:"max=10000"`
	MissionEn     string `form:"missionEn" json:"missionEn" validate:"max=2000"`
	MissionAr     string `form:"missionAr" json:"missionAr" validate:"max=2000"`
	VisionEn      string `form:"visionEn" json:"visionEn" validate:"max=2000"`
	VisionAr      string `form:"visionAr" json:"visionAr" validate:"max=2000"`
	Image         string `form:"image" json:"image" validate:"omitempty,http_url"`
	AutoTranslate bool   `form:"autoTranslate" json:"autoTranslate"`
}

func (f *AboutForm) LocalizedFields() []LocalizedField {
	return []LocalizedField{
		{&f.TitleEn, &f.TitleAr}, {&f.ContentEn, &f.ContentAr},
		{&f.MissionEn, &f.MissionAr}, {&f.VisionEn, &f.VisionAr},
	}
}
func (f *AboutForm) WantsAutoTranslate() bool { return f.AutoTranslate }

func AboutFormFrom(a entity.AboutSection) AboutForm {
	return AboutForm{
		TitleEn: a.TitleEn, TitleAr: a.TitleAr, ContentEn: a.ContentEn, ContentAr: a.ContentAr,
		MissionEn: a.MissionEn, MissionAr: a.MissionAr, VisionEn: a.VisionEn, VisionAr: a.VisionAr,
		Image: a.Image,
	}
}
