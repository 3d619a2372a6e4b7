package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/agency-web/pkg/i18n"
)

// translationPrompt instruye al modelo para devolver solo JSON con la traducción.
const translationPrompt = `You translate marketing copy for a digital services agency website.
Translate the user's text from %s to %s. Keep brand names, URLs, numbers and line breaks unchanged.
Use a professional, friendly tone suitable for a company website.
Return ONLY a valid JSON object (no markdown, no code fences) with this exact structure:
{"translation": "<translated text>"}`

var languageNames = map[i18n.Lang]string{
	i18n.English: "English",
	i18n.Arabic:  "Modern Standard Arabic",
}

func systemPrompt(from, to i18n.Lang) string {
	return fmt.Sprintf(translationPrompt, languageNames[from], languageNames[to])
}

// translationPayload es el JSON que esperamos recibir del modelo.
type translationPayload struct {
	Translation string `json:"translation"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// parseTranslation acepta {"translation": ...}, el mismo JSON dentro de un bloque markdown
// o, como último recurso, el texto plano devuelto por el modelo.
func parseTranslation(raw string) (string, error) {
	if clean := extractJSON(raw); clean != "" {
		var p translationPayload
		if err := json.Unmarshal([]byte(clean), &p); err == nil && strings.TrimSpace(p.Translation) != "" {
			return strings.TrimSpace(p.Translation), nil
		}
	}
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "{") {
		return "", fmt.Errorf("AI: no se encontró traducción en la respuesta del modelo (respuesta: %s)", raw)
	}
	return text, nil
}

// extractJSON extrae el primer objeto JSON de un texto libre.
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
