package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List devuelve todos los clientes ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	query := `
		SELECT id, name, email, COALESCE(image_url, '')
		FROM customers
		ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return out, nil
}
