package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

var errConexion = errors.New("conexión perdida")

// fakeInvoiceRepo repositorio en memoria con fallo forzable.
type fakeInvoiceRepo struct {
	invoices  map[string]*entity.Invoice
	failWith  error // si no es nil, toda operación de escritura falla
	listCalls int
	listRows  []entity.InvoiceWithCustomer
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if f.failWith != nil {
		return f.failWith
	}
	if invoice.ID == "" {
		invoice.ID = "generated-id"
	}
	cp := *invoice
	f.invoices[invoice.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	if f.failWith != nil {
		return f.failWith
	}
	existing, ok := f.invoices[invoice.ID]
	if !ok {
		return nil // cero filas afectadas: no-op silencioso
	}
	existing.CustomerID = invoice.CustomerID
	existing.AmountCents = invoice.AmountCents
	existing.Status = invoice.Status
	// Date no se toca
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.invoices, id) // id inexistente: cero filas, sin error
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.listCalls++
	return f.listRows, nil
}

func (f *fakeInvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return len(f.listRows), nil
}

// fakeViewCache cache en memoria que registra las invalidaciones.
type fakeViewCache struct {
	store       map[string][]byte
	invalidated []string
	setCalls    int
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{store: make(map[string][]byte)}
}

func (f *fakeViewCache) Get(ctx context.Context, path string) ([]byte, bool) {
	payload, ok := f.store[path]
	return payload, ok
}

func (f *fakeViewCache) Set(ctx context.Context, path string, payload []byte, ttl time.Duration) {
	f.setCalls++
	f.store[path] = payload
}

func (f *fakeViewCache) Invalidate(ctx context.Context, path string) {
	f.invalidated = append(f.invalidated, path)
	delete(f.store, path)
}

func buildUseCase() (*billing.InvoiceUseCase, *fakeInvoiceRepo, *fakeViewCache) {
	repo := newFakeInvoiceRepo()
	cache := newFakeViewCache()
	return billing.NewInvoiceUseCase(repo, cache, logger.Nop()), repo, cache
}

func validForm() dto.InvoiceForm {
	return dto.InvoiceForm{CustomerID: "c1", Amount: "50", Status: entity.StatusPending}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PersisteCentavosYEstampaFecha(t *testing.T) {
	uc, repo, cache := buildUseCase()

	err := uc.Create(context.Background(), validForm())
	require.NoError(t, err)

	require.Len(t, repo.invoices, 1)
	var inv *entity.Invoice
	for _, v := range repo.invoices {
		inv = v
	}
	assert.Equal(t, "c1", inv.CustomerID)
	assert.Equal(t, int64(5000), inv.AmountCents, "50 unidades mayores son 5000 centavos")
	assert.Equal(t, entity.StatusPending, inv.Status)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), inv.Date, "la fecha se estampa al crear")

	assert.Equal(t, []string{billing.ListingPath}, cache.invalidated, "crear debe invalidar el listado")
}

func TestCreate_StatusInvalido_NoTocaLaBase(t *testing.T) {
	uc, repo, cache := buildUseCase()

	form := validForm()
	form.Status = "overdue"
	err := uc.Create(context.Background(), form)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.invoices, "la validación corta antes de cualquier llamada a la base")
	assert.Empty(t, cache.invalidated, "sin mutación no hay invalidación")
}

func TestCreate_FalloDePersistencia_SeLogueaYElFlujoSigue(t *testing.T) {
	uc, repo, cache := buildUseCase()
	repo.failWith = errConexion

	err := uc.Create(context.Background(), validForm())

	assert.NoError(t, err, "el fallo del store no debe escapar del flujo de crear")
	assert.Equal(t, []string{billing.ListingPath}, cache.invalidated, "la vista se invalida igual")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func seedInvoice(repo *fakeInvoiceRepo) *entity.Invoice {
	inv := &entity.Invoice{
		ID: "inv1", CustomerID: "c1", AmountCents: 5000,
		Status: entity.StatusPending, Date: "2024-01-15",
	}
	repo.invoices[inv.ID] = inv
	return inv
}

func TestUpdate_ModificaCamposYConservaFecha(t *testing.T) {
	uc, repo, cache := buildUseCase()
	seedInvoice(repo)

	form := dto.InvoiceForm{CustomerID: "c2", Amount: "10.5", Status: entity.StatusPaid}
	err := uc.Update(context.Background(), "inv1", form)
	require.NoError(t, err)

	inv := repo.invoices["inv1"]
	assert.Equal(t, "c2", inv.CustomerID)
	assert.Equal(t, int64(1050), inv.AmountCents)
	assert.Equal(t, entity.StatusPaid, inv.Status)
	assert.Equal(t, "2024-01-15", inv.Date, "editar nunca modifica la fecha")

	assert.Equal(t, []string{billing.ListingPath}, cache.invalidated)
}

func TestUpdate_IdInexistente_NoOpSilencioso(t *testing.T) {
	uc, repo, cache := buildUseCase()

	err := uc.Update(context.Background(), "no-existe", validForm())

	assert.NoError(t, err, "cero filas afectadas no es error")
	assert.Empty(t, repo.invoices)
	assert.Equal(t, []string{billing.ListingPath}, cache.invalidated, "la vista se invalida igual")
}

func TestUpdate_FalloDePersistencia_SeLogueaYElFlujoSigue(t *testing.T) {
	uc, repo, cache := buildUseCase()
	seedInvoice(repo)
	repo.failWith = errConexion

	err := uc.Update(context.Background(), "inv1", validForm())

	assert.NoError(t, err)
	assert.Equal(t, []string{billing.ListingPath}, cache.invalidated)
}

func TestUpdate_StatusInvalido_NoTocaLaBase(t *testing.T) {
	uc, repo, cache := buildUseCase()
	original := *seedInvoice(repo)

	form := dto.InvoiceForm{CustomerID: "c2", Amount: "10.5", Status: "overdue"}
	err := uc.Update(context.Background(), "inv1", form)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, original, *repo.invoices["inv1"], "la factura queda intacta")
	assert.Empty(t, cache.invalidated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EliminaEInvalidaSinRedirect(t *testing.T) {
	uc, repo, cache := buildUseCase()
	seedInvoice(repo)

	err := uc.Delete(context.Background(), "inv1")
	require.NoError(t, err)

	assert.Empty(t, repo.invoices)
	assert.Equal(t, []string{billing.ListingPath}, cache.invalidated)
}

func TestDelete_IdInexistente_CompletaSinError(t *testing.T) {
	uc, _, cache := buildUseCase()

	err := uc.Delete(context.Background(), "no-existe")

	assert.NoError(t, err)
	assert.Equal(t, []string{billing.ListingPath}, cache.invalidated, "la vista se invalida igual")
}

// A diferencia de crear/editar, el fallo del store en eliminar sube al caller.
func TestDelete_FalloDePersistencia_Propaga(t *testing.T) {
	uc, repo, cache := buildUseCase()
	seedInvoice(repo)
	repo.failWith = errConexion

	err := uc.Delete(context.Background(), "inv1")

	require.Error(t, err)
	assert.ErrorIs(t, err, errConexion)
	assert.Empty(t, cache.invalidated, "sin sentencia ejecutada no hay invalidación")
}

// ──────────────────────────────────────────────────────────────────────────────
// List + cache de la vista canónica
// ──────────────────────────────────────────────────────────────────────────────

func TestList_CacheaLaVistaCanonica(t *testing.T) {
	uc, repo, cache := buildUseCase()
	repo.listRows = []entity.InvoiceWithCustomer{{
		Invoice:      entity.Invoice{ID: "inv1", CustomerID: "c1", AmountCents: 1250, Status: entity.StatusPaid, Date: "2024-01-15"},
		CustomerName: "Acme", CustomerEmail: "acme@example.com",
	}}

	first, err := uc.List(context.Background(), "", 1)
	require.NoError(t, err)
	require.Len(t, first.Invoices, 1)
	assert.Equal(t, 1, cache.setCalls, "la vista canónica se guarda en cache")
	assert.Equal(t, 1, repo.listCalls)

	// Segunda lectura canónica: se sirve desde el cache, sin tocar la base.
	second, err := uc.List(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "la segunda lectura no consulta la base")
}

func TestList_VariantesFiltradasNoPasanPorCache(t *testing.T) {
	uc, repo, cache := buildUseCase()

	_, err := uc.List(context.Background(), "acme", 1)
	require.NoError(t, err)
	_, err = uc.List(context.Background(), "", 2)
	require.NoError(t, err)

	assert.Equal(t, 0, cache.setCalls)
	assert.Equal(t, 2, repo.listCalls)
}

func TestList_MutacionInvalidaLaVistaCacheada(t *testing.T) {
	uc, repo, cache := buildUseCase()

	_, err := uc.List(context.Background(), "", 1)
	require.NoError(t, err)
	require.Contains(t, cache.store, billing.ListingPath)

	require.NoError(t, uc.Create(context.Background(), validForm()))
	assert.NotContains(t, cache.store, billing.ListingPath, "crear deja la vista obsoleta")

	_, err = uc.List(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "tras invalidar, el listado se recalcula")
}
