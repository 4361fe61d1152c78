package entity

// Estados de una factura en el dashboard.
const (
	StatusPending = "pending" // emitida, pago pendiente
	StatusPaid    = "paid"    // pagada
)

// ValidStatus indica si s es uno de los estados permitidos.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice representa una factura del dashboard.
// AmountCents guarda el monto en centavos (unidades menores) para almacenamiento
// entero sin pérdida; la conversión desde unidades mayores vive en el DTO.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string
	Date        string // YYYY-MM-DD, se estampa al crear y no se modifica después
}

// InvoiceWithCustomer fila del listado: factura + datos del cliente (join).
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string
	CustomerEmail string
	CustomerImage string
}

// DashboardSummary agregados para las tarjetas del dashboard.
type DashboardSummary struct {
	InvoiceCount  int
	CustomerCount int
	PaidCents     int64
	PendingCents  int64
}
