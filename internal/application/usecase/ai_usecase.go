package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/ports"
	"github.com/jhoicas/agency-web/internal/domain"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// AIUseCase orquesta la traducción asistida por IA.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type AIUseCase struct {
	translator ports.Translator
}

// NewAIUseCase construye el caso de uso. Sin traductor configurado responde ErrTranslationUnavailable.
func NewAIUseCase(translator ports.Translator) *AIUseCase {
	return &AIUseCase{translator: translator}
}

// Available indica si hay un proveedor de IA configurado.
func (uc *AIUseCase) Available() bool { return uc.translator != nil }

// Translate valida la entrada y delega al traductor.
func (uc *AIUseCase) Translate(ctx context.Context, req dto.TranslateRequest) (*dto.TranslateResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if uc.translator == nil {
		return nil, domain.ErrTranslationUnavailable
	}
	from, _ := i18n.Parse(req.From)
	to, _ := i18n.Parse(req.To)

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	out, err := uc.translator.Translate(ctx, req.Text, from, to)
	if err != nil {
		return nil, fmt.Errorf("traducción IA: %w: %v", domain.ErrTranslationUnavailable, err)
	}
	return &dto.TranslateResponse{Text: strings.TrimSpace(out), From: req.From, To: req.To}, nil
}
