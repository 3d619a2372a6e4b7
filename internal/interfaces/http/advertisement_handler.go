package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agency-web/internal/application/dto"
	"github.com/jhoicas/agency-web/internal/application/usecase"
	"github.com/jhoicas/agency-web/internal/domain/listing"
	"github.com/jhoicas/agency-web/pkg/i18n"
)

// AdvertisementHandler API JSON pública de anuncios.
type AdvertisementHandler struct {
	uc *usecase.AdvertisementUseCase
}

// NewAdvertisementHandler construye el handler.
func NewAdvertisementHandler(uc *usecase.AdvertisementUseCase) *AdvertisementHandler {
	return &AdvertisementHandler{uc: uc}
}

// List godoc
// @Summary      Anuncios públicos filtrados
// @Tags         advertisements
// @Produce      json
// @Param        lang      query  string  false  "en | ar (por defecto según Accept-Language)"
// @Param        category  query  string  false  "ID de categoría"
// @Param        q         query  string  false  "texto a buscar en título y descripción"
// @Param        min       query  string  false  "precio mínimo"
// @Param        max       query  string  false  "precio máximo"
// @Param        sort      query  string  false  "newest | oldest | price_asc | price_desc | title"
// @Success      200  {object}  dto.AdvertisementListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/v1/advertisements [get]
func (h *AdvertisementHandler) List(c *fiber.Ctx) error {
	var q dto.AdFilterQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	q.Status = ""
	lang, ok := i18n.Parse(c.Query("lang"))
	if !ok {
		lang = i18n.Negotiate(c.Get(fiber.HeaderAcceptLanguage), i18n.English)
	}
	ads, err := h.uc.SearchPublic(c.UserContext(), q, lang)
	if err != nil {
		return jsonError(c, err)
	}
	items := make([]dto.AdvertisementResponse, 0, len(ads))
	for _, a := range ads {
		items = append(items, usecase.ToAdvertisementResponse(a, lang))
	}
	return c.JSON(dto.AdvertisementListResponse{
		Items: items,
		Total: len(items),
		Sort:  listing.NormalizeSort(q.Sort),
		Lang:  lang.String(),
	})
}
