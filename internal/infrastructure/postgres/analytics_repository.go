package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// Summary conteos y totales por estado en una sola consulta.
func (r *AnalyticsRepo) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT count(*) FROM invoices),
			(SELECT count(*) FROM customers),
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
		FROM invoices`
	var s entity.DashboardSummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.InvoiceCount, &s.CustomerCount, &s.PaidCents, &s.PendingCents,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}
