package listing

import (
	"sort"

	"github.com/jhoicas/agency-web/internal/domain/entity"
)

// VisibleProjects proyectos visibles, opcionalmente de una categoría. Conserva el orden del backend.
func VisibleProjects(projects []entity.Project, categoryID string) []entity.Project {
	out := make([]entity.Project, 0, len(projects))
	for _, p := range projects {
		if !p.IsVisible {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ApprovedTestimonials solo las opiniones aprobadas por un administrador.
func ApprovedTestimonials(list []entity.Testimonial) []entity.Testimonial {
	out := make([]entity.Testimonial, 0, len(list))
	for _, t := range list {
		if t.IsApproved {
			out = append(out, t)
		}
	}
	return out
}

// ByOrder ordena de forma estable por el campo order (ascendente).
func ByOrder[T any](items []T, order func(T) int) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return order(out[i]) < order(out[j]) })
	return out
}

// Take devuelve como máximo n elementos.
func Take[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
