package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/analytics"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
)

// DashboardHandler maneja el resumen del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve conteos y totales para las tarjetas del dashboard.
// GET /dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
