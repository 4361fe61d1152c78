package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
)

// InvoiceHandler maneja los formularios y el listado de facturas.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create procesa el formulario de nueva factura.
// POST /dashboard/invoices
//
// Campos del form: customerId, amount (unidades mayores), status.
// Tras la mutación el redirect al listado es la última acción del handler:
// el control se transfiere a la vista, no hay cuerpo de éxito.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var form dto.InvoiceForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Create(c.Context(), form); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "faltan campos; no se pudo crear la factura", Fields: verr.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Redirect(billing.ListingPath, fiber.StatusSeeOther)
}

// Update procesa el formulario de edición de una factura existente.
// POST /dashboard/invoices/:id
//
// El id viene de la ruta, nunca del formulario; date no es editable.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var form dto.InvoiceForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), id, form); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "faltan campos; no se pudo editar la factura", Fields: verr.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Redirect(billing.ListingPath, fiber.StatusSeeOther)
}

// Delete elimina una factura desde la acción inline del listado.
// POST /dashboard/invoices/:id/delete
//
// Sin redirect: el caller ya está en el listado. Un fallo de persistencia no
// se recupera acá; sube al error handler genérico de fiber.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List devuelve el listado filtrado y paginado.
// GET /dashboard/invoices?query=&page=1
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page := c.QueryInt("page", 1)
	list, err := h.uc.List(c.Context(), query, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID devuelve una factura (alimenta el formulario de edición).
// GET /dashboard/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	invoice, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}
