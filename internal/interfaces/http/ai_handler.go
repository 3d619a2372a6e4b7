package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
)

// AIHandler traducción asistida en↔ar para los formularios del panel.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Translate godoc
// @Summary      Traducir un texto entre inglés y árabe
// @Description  Usa el proveedor de IA configurado (AI_PROVIDER). Timeout interno de 10 s.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TranslateRequest  true  "text, from, to"
// @Success      200   {object}  dto.TranslateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/v1/ai/translate [post]
func (h *AIHandler) Translate(c *fiber.Ctx) error {
	var req dto.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	out, err := h.uc.Translate(c.UserContext(), req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(out)
}
