package dto

import "github.com/jhoicas/agency-web/internal/domain/entity"

// ServiceForm alta/edición de un servicio (form HTML y JSON).
type ServiceForm struct {
	TitleEn       string `form:"titleEn" json:"titleEn" validate:"required,max=200"`
	TitleAr       string `form:"titleAr" json:"titleAr" validate:"max=200"`
	DescriptionEn string `form:"descriptionEn" json:"descriptionEn" validate:"required,max=5000"`
	DescriptionAr string `form:"descriptionAr" json:"descriptionAr" validate:"max=5000"`
	Icon          string `form:"icon" json:"icon" validate:"max=100"`
	Image         string `form:"image" json:"image" validate:"omitempty,http_url"`
	Order         int    `form:"order" json:"order" validate:"min=0"`
	AutoTranslate bool   `form:"autoTranslate" json:"autoTranslate"`
}

func (f *ServiceForm) LocalizedFields() []LocalizedField {
	return []LocalizedField{{&f.TitleEn, &f.TitleAr}, {&f.DescriptionEn, &f.DescriptionAr}}
}
func (f *ServiceForm) WantsAutoTranslate() bool { return f.AutoTranslate }

// ServiceFormFrom precarga el formulario de edición.
func ServiceFormFrom(s entity.Service) ServiceForm {
	return ServiceForm{
		TitleEn: s.TitleEn, TitleAr: s.TitleAr,
		DescriptionEn: s.DescriptionEn, DescriptionAr: s.DescriptionAr,
		Icon: s.Icon, Image: s.Image, Order: s.Order,
	}
}

// ProjectForm alta/edición de un proyecto del portafolio.
type ProjectForm struct {
	TitleEn       string `form:"titleEn" json:"titleEn" validate:"required,max=200"`
	TitleAr       string `form:"titleAr" json:"titleAr" validate:"max=200"`
	DescriptionEn string `form:"descriptionEn" json:"descriptionEn" validate:"required,max=5000"`
	DescriptionAr string `form:"descriptionAr" json:"descriptionAr" validate:"max=5000"`
	Image         string `form:"image" json:"image" validate:"omitempty,http_url"`
	Link          string `form:"link" json:"link" validate:"omitempty,http_url"`
	CategoryID    string `form:"category" json:"category" validate:"max=64"`
	IsVisible     bool   `form:"isVisible" json:"isVisible"`
	AutoTranslate bool   `form:"autoTranslate" json:"autoTranslate"`
}

func (f *ProjectForm) LocalizedFields() []LocalizedField {
	return []LocalizedField{{&f.TitleEn, &f.TitleAr}, {&f.DescriptionEn, &f.DescriptionAr}}
}
func (f *ProjectForm) WantsAutoTranslate() bool { return f.AutoTranslate }

func ProjectFormFrom(p entity.Project) ProjectForm {
	return ProjectForm{
		TitleEn: p.TitleEn, TitleAr: p.TitleAr,
		DescriptionEn: p.DescriptionEn, DescriptionAr: p.DescriptionAr,
		Image: p.Image, Link: p.Link, CategoryID: p.CategoryID, IsVisible: p.IsVisible,
	}
}

// CategoryForm alta/edición de una categoría.
type CategoryForm struct {
	NameEn        string `form:"nameEn" json:"nameEn" validate:"required,max=100"`
	NameAr        string `form:"nameAr" json:"nameAr" validate:"max=100"`
	Type          string `form:"type" json:"type" validate:"required,oneof=project advertisement"`
	AutoTranslate bool   `form:"autoTranslate" json:"autoTranslate"`
}

func (f *CategoryForm) LocalizedFields() []LocalizedField {
	return []LocalizedField{{&f.NameEn, &f.NameAr}}
}
func (f *CategoryForm) WantsAutoTranslate() bool { return f.AutoTranslate }

func CategoryFormFrom(c entity.Category) CategoryForm {
	return CategoryForm{NameEn: c.NameEn, NameAr: c.NameAr, Type: c.Type}
}

// FAQForm alta/edición de una pregunta frecuente.
type FAQForm struct {
	QuestionEn    string `form:"questionEn" json:"questionEn" validate:"required,max=500"`
	QuestionAr    string `form:"questionAr" json:"questionAr" validate:"max=500"`
	AnswerEn      string `form:"answerEn" json:"answerEn" validate:"required,max=5000"`
	AnswerAr      string `form:"answerAr" json:"answerAr" validate:"max=5000"`
	Order         int    `form:"order" json:"order" validate:"min=0"`
	AutoTranslate bool   `form:"autoTranslate" json:"autoTranslate"`
}

func (f *FAQForm) LocalizedFields() []LocalizedField {
	return []LocalizedField{{&f.QuestionEn, &f.QuestionAr}, {&f.AnswerEn, &f.AnswerAr}}
}
func (f *FAQForm) WantsAutoTranslate() bool { return f.AutoTranslate }

func FAQFormFrom(q entity.FAQ) FAQForm {
	return FAQForm{QuestionEn: q.QuestionEn, QuestionAr: q.QuestionAr, AnswerEn: q.AnswerEn, AnswerAr: q.AnswerAr, Order: q.Order}
}

// WhyChooseUsForm alta/edición de un argumento de "por qué elegirnos".
type WhyChooseUsForm struct {
	TitleEn       string `form:"titleEn" json:"titleEn" validate:"required,max=200"`
	TitleAr       string `form:"titleAr" json:"titleAr" validate:"max=200"`
	DescriptionEn string `form:"descriptionEn" json:"descriptionEn" validate:"required,max=2000"`
	DescriptionAr string `form:"descriptionAr" json:"descriptionAr" validate:"max=2000"`
	Icon          string `form:"icon" json:"icon" validate:"max=100"`
	Order         int    `form:"order" json:"order" validate:"min=0"`
	AutoTranslate bool   `form:"autoTranslate" json:"autoTranslate"`
}

func (f *WhyChooseUsForm) LocalizedFields() []LocalizedField {
	return []LocalizedField{{&f.TitleEn, &f.TitleAr}, {&f.DescriptionEn, &f.DescriptionAr}}
}
func (f *WhyChooseUsForm) WantsAutoTranslate() bool { return f.AutoTranslate }

func WhyChooseUsFormFrom(w entity.WhyChooseUs) WhyChooseUsForm {
	return WhyChooseUsForm{
		TitleEn: w.TitleEn, TitleAr: w.TitleAr,
		DescriptionEn: w.DescriptionEn, DescriptionAr: w.DescriptionAr,
		Icon: w.Icon, Order: w.Order,
	}
}

// TestimonialForm opinión de cliente. Desde el sitio público IsApproved se ignora.
type TestimonialForm struct {
	Name       string `form:"name" json:"name" validate:"required,max=100"`
	Position   string `form:"position" json:"position" validate:"max=150"`
	Message    string `form:"message" json:"message" validate:"required,min=10,max=2000"`
	Rating     int    `form:"rating" json:"rating" validate:"min=1,max=5"`
	Lang       string `form:"lang" json:"lang" validate:"omitempty,oneof=en ar"`
	IsApproved bool   `form:"isApproved" json:"isApproved"`
}

func TestimonialFormFrom(t entity.Testimonial) TestimonialForm {
	return TestimonialForm{Name: t.Name, Position: t.Position, Message: t.Message, Rating: t.Rating, Lang: t.Lang, IsApproved: t.IsApproved}
}
