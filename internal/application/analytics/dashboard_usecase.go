package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// DashboardSummaryDTO agregados para las tarjetas del dashboard.
// Los montos van en centavos; el frontend los formatea.
type DashboardSummaryDTO struct {
	InvoiceCount  int   `json:"invoice_count"`
	CustomerCount int   `json:"customer_count"`
	PaidCents     int64 `json:"paid_cents"`
	PendingCents  int64 `json:"pending_cents"`
}

// DashboardUseCase caso de uso del resumen del dashboard.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve conteos y totales por estado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*DashboardSummaryDTO, error) {
	s, err := uc.repo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen dashboard: %w", err)
	}
	return &DashboardSummaryDTO{
		InvoiceCount:  s.InvoiceCount,
		CustomerCount: s.CustomerCount,
		PaidCents:     s.PaidCents,
		PendingCents:  s.PendingCents,
	}, nil
}
