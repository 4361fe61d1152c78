package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia de facturas.
// Cada mutación es una única sentencia parametrizada; la atomicidad por fila
// la garantiza PostgreSQL, no este puerto.
type InvoiceRepository interface {
	// Create inserta la factura. Si ID está vacío, el adaptador lo genera.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update modifica customer_id, amount y status de la fila con ese ID.
	// Date nunca se toca. Cero filas afectadas no es error (no-op silencioso).
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete elimina la fila. Cero filas afectadas no es error.
	Delete(ctx context.Context, id string) error
	// GetByID devuelve la factura o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// ListFiltered lista facturas con datos del cliente, filtradas por texto
	// libre (nombre, email, monto, estado) y paginadas.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error)
	// CountFiltered cuenta las filas que matchean el mismo filtro de ListFiltered.
	CountFiltered(ctx context.Context, query string) (int, error)
}
