package ports

import (
	"context"

	"github.com/jhoicas/agency-web/pkg/i18n"
)

// Translator define el puerto de salida hacia el servicio de IA que traduce contenido.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout: las llamadas externas pueden tardar varios segundos.
type Translator interface {
	// Translate traduce text del idioma from al idioma to y devuelve solo el texto traducido.
	Translate(ctx context.Context, text string, from, to i18n.Lang) (string, error)
}
