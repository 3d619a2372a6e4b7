package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// LocalizedField par inglés/árabe de un formulario; permite rellenar el árabe automáticamente.
type LocalizedField struct {
	En *string
	Ar *string
}

// Translatable formularios con pares bilingües.
type Translatable interface {
	LocalizedFields() []LocalizedField
	WantsAutoTranslate() bool
}
