package repository

import "github.com/jhoicas/agency-web/internal/domain/entity"

// ServiceRepository puerto para Service.
type ServiceRepository interface {
	ContentRepository[entity.Service]
}

// CategoryRepository puerto para Category.
type CategoryRepository interface {
	ContentRepository[entity.Category]
}

// FAQRepository puerto para FAQ.
type FAQRepository interface {
	ContentRepository[entity.FAQ]
}

// WhyChooseUsRepository puerto para los ítems de "por qué elegirnos".
type WhyChooseUsRepository interface {
	ContentRepository[entity.WhyChooseUs]
}
