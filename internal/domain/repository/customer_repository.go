package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// CustomerRepository puerto de lectura de clientes.
type CustomerRepository interface {
	// List devuelve todos los clientes ordenados por nombre (para el selector del formulario).
	List(ctx context.Context) ([]entity.Customer, error)
}
