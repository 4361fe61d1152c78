package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// AnalyticsRepository puerto de agregados para el dashboard.
type AnalyticsRepository interface {
	Summary(ctx context.Context) (*entity.DashboardSummary, error)
}
