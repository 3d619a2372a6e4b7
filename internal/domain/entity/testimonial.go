package entity

import "time"

// Testimonial opinión de un cliente. Las enviadas desde el sitio llegan sin aprobar.
type Testimonial struct {
	ID         string     `json:"_id,omitempty"`
	Name       string     `json:"name"`
	Position   string     `json:"position,omitempty"`
	Message    string     `json:"message"`
	Rating     int        `json:"rating"` // 1..5
	Lang       string     `json:"lang,omitempty"`
	IsApproved bool       `json:"isApproved"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}
