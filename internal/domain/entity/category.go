package entity

import "github.com/jhoicas/agency-web/pkg/i18n"

// Tipos de categoría: agrupan proyectos o anuncios.
const (
	CategoryTypeProject       = "project"
	CategoryTypeAdvertisement = "advertisement"
)

// Category categoría de proyectos o anuncios.
type Category struct {
	ID     string `json:"_id,omitempty"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
	Type   string `json:"type"` // project, advertisement
}

func (c Category) Name(l i18n.Lang) string { return i18n.Pick(l, c.NameEn, c.NameAr) }

// CategoriesOfType filtra por tipo; type vacío en el backend cuenta para ambos.
func CategoriesOfType(list []Category, typ string) []Category {
	out := make([]Category, 0, len(list))
	for _, c := range list {
		if c.Type == "" || c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}
