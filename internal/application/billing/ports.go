package billing

import (
	"context"
	"time"
)

// ViewCache cache de vistas renderizadas (listado de facturas).
// Best-effort: las implementaciones no devuelven error; un fallo del cache
// nunca debe fallar la petición (se loguea dentro del adaptador).
type ViewCache interface {
	// Get devuelve el payload cacheado de la vista, si existe.
	Get(ctx context.Context, path string) ([]byte, bool)
	// Set guarda el payload de la vista con un TTL de respaldo.
	Set(ctx context.Context, path string, payload []byte, ttl time.Duration)
	// Invalidate marca la vista como obsoleta. Idempotente.
	Invalidate(ctx context.Context, path string)
}
