package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/agency-web/internal/application/analytics"
	"github.com/jhoicas/agency-web/internal/interfaces/http/views"
)

// DashboardHandler panel principal y su versión JSON.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	siteName string
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, siteName string) *DashboardHandler {
	return &DashboardHandler{uc: uc, siteName: siteName}
}

// Page tarjetas con los totales. Si una colección falla, falla la página completa.
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return err
	}
	p := pageFor(c, h.siteName, GetTranslator(c).T("admin.dashboard"))
	return render(c, views.DashboardPage(p, summary))
}

// GetSummary godoc
// @Summary      Totales del contenido para el panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(summary)
}
