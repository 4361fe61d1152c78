package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta la factura. El id lo genera el servidor; amount va en centavos.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.Date,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("customer does not exist: %w", err)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice id already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update modifica customer_id, amount y status. La columna date no se toca.
// Cero filas afectadas no es error.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`
	_, err := r.q.Exec(ctx, query,
		invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("customer does not exist: %w", err)
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina la fila. Cero filas afectadas no es error.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID devuelve la factura o nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.AmountCents, &inv.Status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select invoice: %w", err)
	}
	return &inv, nil
}

// filtro de texto libre del listado: nombre, email, monto, fecha o estado.
const invoiceFilter = `
	($1 = '' OR
	 c.name ILIKE '%' || $1 || '%' OR
	 c.email ILIKE '%' || $1 || '%' OR
	 i.amount::text ILIKE '%' || $1 || '%' OR
	 i.date ILIKE '%' || $1 || '%' OR
	 i.status ILIKE '%' || $1 || '%')`

// ListFiltered lista facturas con el cliente (join), más recientes primero.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error) {
	sql := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date,
		       c.name, c.email, COALESCE(c.image_url, '')
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE ` + invoiceFilter + `
		ORDER BY i.date DESC, i.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []entity.InvoiceWithCustomer
	for rows.Next() {
		var row entity.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.AmountCents, &row.Status, &row.Date,
			&row.CustomerName, &row.CustomerEmail, &row.CustomerImage,
		); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return out, nil
}

// CountFiltered cuenta las filas del mismo filtro de ListFiltered.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `
		SELECT count(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE ` + invoiceFilter
	var total int
	if err := r.q.QueryRow(ctx, sql, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return total, nil
}
