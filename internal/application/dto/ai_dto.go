package dto

// TranslateRequest traducción asistida de contenido (POST /api/v1/ai/translate).
type TranslateRequest struct {
	Text string `json:"text" form:"text" validate:"required,max=5000"`
	From string `json:"from" form:"from" validate:"required,oneof=en ar"`
	To   string `json:"to" form:"to" validate:"required,oneof=en ar,nefield=From"`
}

// TranslateResponse texto traducido.
type TranslateResponse struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}
