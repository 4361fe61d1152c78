package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// La coerción del monto: unidades mayores (string del form) -> centavos enteros.
func TestInvoiceForm_MontoACentavos(t *testing.T) {
	cases := []struct {
		amount string
		cents  int64
	}{
		{"12.50", 1250},
		{"10.5", 1050},
		{"50", 5000},
		{"0.01", 1},
		{"0", 0},
		{"999999.99", 99999999},
	}
	for _, tc := range cases {
		form := dto.InvoiceForm{CustomerID: "c1", Amount: tc.amount, Status: entity.StatusPending}
		in, err := form.Validate()
		require.NoError(t, err, "amount %q debe ser válido", tc.amount)
		assert.Equal(t, tc.cents, in.AmountCents, "amount %q", tc.amount)
	}
}

func TestInvoiceForm_MontoNoNumerico_Falla(t *testing.T) {
	form := dto.InvoiceForm{CustomerID: "c1", Amount: "doce con cincuenta", Status: entity.StatusPaid}
	_, err := form.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "amount")
}

// Solo "pending" y "paid" son estados válidos; cualquier otro literal falla.
func TestInvoiceForm_StatusFueraDelEnum_Falla(t *testing.T) {
	for _, status := range []string{"overdue", "PAID", "Pending", "", "draft"} {
		form := dto.InvoiceForm{CustomerID: "c1", Amount: "10", Status: status}
		_, err := form.Validate()
		require.Error(t, err, "status %q debe fallar", status)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "status")
	}
}

func TestInvoiceForm_ClienteVacio_Falla(t *testing.T) {
	form := dto.InvoiceForm{CustomerID: "  ", Amount: "10", Status: entity.StatusPending}
	_, err := form.Validate()
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customerId")
}

// Todos los errores se reportan de una vez, no campo por campo.
func TestInvoiceForm_ReportaTodosLosCampos(t *testing.T) {
	form := dto.InvoiceForm{CustomerID: "", Amount: "abc", Status: "overdue"}
	_, err := form.Validate()
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestToInvoiceResponse_CentavosAUnidadesMayores(t *testing.T) {
	inv := &entity.Invoice{ID: "inv1", CustomerID: "c1", AmountCents: 1250, Status: entity.StatusPaid, Date: "2026-08-28"}
	resp := dto.ToInvoiceResponse(inv)
	assert.Equal(t, "12.50", resp.Amount)
	assert.Equal(t, "2026-08-28", resp.Date)
}
