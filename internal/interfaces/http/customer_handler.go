package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
)

// CustomerHandler maneja las lecturas de clientes.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /dashboard/customers — alimenta el selector del formulario de facturas.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(customers)
}
