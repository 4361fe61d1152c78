package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// InvoiceForm forma canónica del formulario de factura. La misma forma sirve
// para crear y para editar: id y date nunca se leen del formulario (el id llega
// como parámetro de ruta y la fecha la estampa el servidor al crear).
// Los valores llegan crudos como strings; Validate coerciona y valida.
type InvoiceForm struct {
	CustomerID string `form:"customerId"`
	Amount     string `form:"amount"` // unidades mayores, ej. "12.50"
	Status     string `form:"status"` // pending | paid
}

// ValidatedInvoice resultado de validar un InvoiceForm: tipado y con el monto
// ya convertido a centavos (round(amount * 100)).
type ValidatedInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// Validate coerciona el formulario crudo a ValidatedInvoice.
// Devuelve *domain.ValidationError con los mensajes por campo si algo falla;
// ningún campo válido se pierde: se reportan todos los errores de una vez.
func (f InvoiceForm) Validate() (*ValidatedInvoice, error) {
	fields := make(map[string]string)

	customerID := strings.TrimSpace(f.CustomerID)
	if customerID == "" {
		fields["customerId"] = "seleccione un cliente"
	}

	var cents int64
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		fields["amount"] = "ingrese un monto válido"
	} else {
		cents = amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	if !entity.ValidStatus(f.Status) {
		fields["status"] = "seleccione un estado de factura"
	}

	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}
	return &ValidatedInvoice{
		CustomerID:  customerID,
		AmountCents: cents,
		Status:      f.Status,
	}, nil
}

// InvoiceResponse factura individual (alimenta el formulario de edición).
// Amount va en unidades mayores, como lo espera el formulario.
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"` // decimal en unidades mayores, ej. "12.50"
	Status     string `json:"status"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// ToInvoiceResponse convierte la entidad a respuesta (centavos -> unidades mayores).
func ToInvoiceResponse(inv *entity.Invoice) *InvoiceResponse {
	major := decimal.NewFromInt(inv.AmountCents).Div(decimal.NewFromInt(100))
	return &InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     major.StringFixed(2),
		Status:     inv.Status,
		Date:       inv.Date,
	}
}

// InvoiceListItem fila del listado de facturas.
type InvoiceListItem struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerImage string `json:"customer_image,omitempty"`
	AmountCents   int64  `json:"amount_cents"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

// InvoiceListResponse listado paginado.
type InvoiceListResponse struct {
	Invoices []InvoiceListItem `json:"invoices"`
	Page     PageResponse      `json:"page"`
}

// ToInvoiceListResponse arma el listado a partir de las filas del join.
func ToInvoiceListResponse(rows []entity.InvoiceWithCustomer, page, perPage, total int) *InvoiceListResponse {
	items := make([]InvoiceListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, InvoiceListItem{
			ID:            r.ID,
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			CustomerImage: r.CustomerImage,
			AmountCents:   r.AmountCents,
			Status:        r.Status,
			Date:          r.Date,
		})
	}
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &InvoiceListResponse{
		Invoices: items,
		Page: PageResponse{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
