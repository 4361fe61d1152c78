package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

// ListingPath ruta canónica del listado de facturas. Es la vista que se cachea
// y la que se invalida tras cada mutación; también el destino del redirect.
const ListingPath = "/dashboard/invoices"

// PerPage facturas por página en el listado.
const PerPage = 6

// listingTTL TTL de respaldo de la vista cacheada; la invalidación explícita
// es el mecanismo principal.
const listingTTL = 5 * time.Minute

// InvoiceUseCase casos de uso de facturas: crear, editar, eliminar y lecturas.
type InvoiceUseCase struct {
	repo  repository.InvoiceRepository
	cache ViewCache
	log   *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, cache ViewCache, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, cache: cache, log: log}
}

// Create valida el formulario, estampa la fecha del día (UTC) y persiste.
// Un fallo de persistencia no aborta el flujo: se loguea, la vista se invalida
// igual y el caller continúa con el redirect. El error de validación sí corta
// antes de tocar la base.
func (uc *InvoiceUseCase) Create(ctx context.Context, form dto.InvoiceForm) error {
	in, err := form.Validate()
	if err != nil {
		return err
	}
	invoice := &entity.Invoice{
		CustomerID:  in.CustomerID,
		AmountCents: in.AmountCents,
		Status:      in.Status,
		Date:        time.Now().UTC().Format("2006-01-02"),
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		uc.log.Error().Err(err).
			Str("customer_id", invoice.CustomerID).
			Int64("amount_cents", invoice.AmountCents).
			Msg("insertar factura")
	}
	uc.cache.Invalidate(ctx, ListingPath)
	return nil
}

// Update valida el formulario y modifica customer_id, amount y status de la
// factura indicada. La fecha no se toca y el id nunca sale del formulario.
// Cero filas afectadas es un no-op silencioso. La política de fallos es la
// misma de Create: loguear, invalidar y seguir.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, form dto.InvoiceForm) error {
	in, err := form.Validate()
	if err != nil {
		return err
	}
	invoice := &entity.Invoice{
		ID:          id,
		CustomerID:  in.CustomerID,
		AmountCents: in.AmountCents,
		Status:      in.Status,
	}
	if err := uc.repo.Update(ctx, invoice); err != nil {
		uc.log.Error().Err(err).
			Str("invoice_id", id).
			Msg("actualizar factura")
	}
	uc.cache.Invalidate(ctx, ListingPath)
	return nil
}

// Delete elimina la factura. A diferencia de Create/Update aquí no hay
// recuperación local: el error de persistencia sube al caller y la vista solo
// se invalida si la sentencia se ejecutó. Eliminar un id inexistente no es
// error (cero filas afectadas).
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar factura %s: %w", id, err)
	}
	uc.cache.Invalidate(ctx, ListingPath)
	return nil
}

// GetByID devuelve la factura para el formulario de edición.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToInvoiceResponse(invoice), nil
}

// List devuelve el listado filtrado y paginado. La vista canónica (sin filtro,
// página 1) pasa por el cache: se sirve desde ahí si existe y se guarda tras
// consultar la base. Las variantes filtradas o paginadas van siempre a la base.
func (uc *InvoiceUseCase) List(ctx context.Context, query string, page int) (*dto.InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	canonical := query == "" && page == 1

	if canonical {
		if payload, ok := uc.cache.Get(ctx, ListingPath); ok {
			var cached dto.InvoiceListResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
			// Payload corrupto: invalidar y recalcular desde la base
			uc.cache.Invalidate(ctx, ListingPath)
		}
	}

	offset := (page - 1) * PerPage
	rows, err := uc.repo.ListFiltered(ctx, query, PerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	total, err := uc.repo.CountFiltered(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("contar facturas: %w", err)
	}
	resp := dto.ToInvoiceListResponse(rows, page, PerPage, total)

	if canonical {
		if payload, err := json.Marshal(resp); err == nil {
			uc.cache.Set(ctx, ListingPath, payload, listingTTL)
		}
	}
	return resp, nil
}
