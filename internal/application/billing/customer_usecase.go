package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// CustomerUseCase lecturas de clientes para el formulario de facturas.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	return dto.ToCustomerList(customers), nil
}
