package ports

import "time"

// PageRef página pública sin prefijo de idioma, ej. "/services/abc".
// El sitemap la publica en cada idioma con sus alternativas hreflang.
type PageRef struct {
	Path     string
	LastMod  *time.Time
	Priority float64 // 0 = valor por defecto del sitemap
}
