package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/billing"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeItem
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeItem_LineaValida(t *testing.T) {
	item, ok := billing.NormalizeItem(billing.LineItemDraft{
		Description: "  Cambio de aceite  ",
		Quantity:    "1",
		UnitPrice:   "50",
	})
	require.True(t, ok, "una línea completa debe sobrevivir")

	assert.Equal(t, "Cambio de aceite", item.Description, "la descripción debe quedar sin espacios")
	assert.True(t, item.Quantity.Equal(d("1")))
	assert.True(t, item.UnitPrice.Equal(d("50")))
	assert.True(t, item.Total.Equal(d("50")), "total = cantidad × precio")
}

func TestNormalizeItem_DescripcionVacia_SeDescarta(t *testing.T) {
	_, ok := billing.NormalizeItem(billing.LineItemDraft{
		Description: "   ",
		Quantity:    "2",
		UnitPrice:   "10",
	})
	assert.False(t, ok, "descripción en blanco debe descartarse sin error")
}

func TestNormalizeItem_CantidadNoPositiva_SeDescarta(t *testing.T) {
	for _, qty := range []string{"0", "-1", "", "abc"} {
		_, ok := billing.NormalizeItem(billing.LineItemDraft{
			Description: "Filtro de aire",
			Quantity:    qty,
			UnitPrice:   "10",
		})
		assert.False(t, ok, "cantidad %q no debe producir línea", qty)
	}
}

func TestNormalizeItem_PrecioNegativo_DegradaACero(t *testing.T) {
	item, ok := billing.NormalizeItem(billing.LineItemDraft{
		Description: "Bujía",
		Quantity:    "4",
		UnitPrice:   "-25",
	})
	require.True(t, ok)
	assert.True(t, item.UnitPrice.IsZero(), "precio negativo degrada a 0")
	assert.True(t, item.Total.IsZero())
}

func TestNormalizeItem_PrecioNoParseable_DegradaACero(t *testing.T) {
	item, ok := billing.NormalizeItem(billing.LineItemDraft{
		Description: "Correa",
		Quantity:    "1",
		UnitPrice:   "no-es-numero",
	})
	require.True(t, ok, "precio ilegible no descarta la línea, solo la deja en 0")
	assert.True(t, item.UnitPrice.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeInvoiceTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeInvoiceTotals_EjemploITBIS18(t *testing.T) {
	totals, err := billing.ComputeInvoiceTotals([]billing.LineItemDraft{
		{Description: "Part A", Quantity: "2", UnitPrice: "100"},
	}, "18")
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(d("200")), "subtotal esperado 200, fue %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(d("36")), "itbis esperado 36, fue %s", totals.Tax)
	assert.True(t, totals.Total.Equal(d("236")), "total esperado 236, fue %s", totals.Total)
}

func TestComputeInvoiceTotals_FiltraFilasInvalidas(t *testing.T) {
	totals, err := billing.ComputeInvoiceTotals([]billing.LineItemDraft{
		{Description: "", Quantity: "2", UnitPrice: "10"},
		{Description: "Oil change", Quantity: "1", UnitPrice: "50"},
	}, "0")
	require.NoError(t, err)

	require.Len(t, totals.Items, 1, "solo la fila completa debe sobrevivir")
	assert.Equal(t, "Oil change", totals.Items[0].Description)
	assert.True(t, totals.Subtotal.Equal(d("50")))
}

func TestComputeInvoiceTotals_PreservaOrdenDeCaptura(t *testing.T) {
	totals, err := billing.ComputeInvoiceTotals([]billing.LineItemDraft{
		{Description: "Primera", Quantity: "1", UnitPrice: "10"},
		{Description: "", Quantity: "1", UnitPrice: "99"},
		{Description: "Segunda", Quantity: "1", UnitPrice: "20"},
		{Description: "Tercera", Quantity: "1", UnitPrice: "30"},
	}, "18")
	require.NoError(t, err)

	require.Len(t, totals.Items, 3)
	assert.Equal(t, "Primera", totals.Items[0].Description)
	assert.Equal(t, "Segunda", totals.Items[1].Description)
	assert.Equal(t, "Tercera", totals.Items[2].Description)
}

func TestComputeInvoiceTotals_SinLineasValidas_ErrEmptyInvoice(t *testing.T) {
	cases := map[string][]billing.LineItemDraft{
		"lista vacía": {},
		"todas inválidas": {
			{Description: "", Quantity: "1", UnitPrice: "10"},
			{Description: "Algo", Quantity: "0", UnitPrice: "10"},
		},
	}
	for name, drafts := range cases {
		_, err := billing.ComputeInvoiceTotals(drafts, "18")
		assert.ErrorIs(t, err, domain.ErrEmptyInvoice, "caso %q", name)
	}
}

func TestComputeInvoiceTotals_TasaNoParseable_DegradaACero(t *testing.T) {
	totals, err := billing.ComputeInvoiceTotals([]billing.LineItemDraft{
		{Description: "Lavado", Quantity: "1", UnitPrice: "300"},
	}, "dieciocho")
	require.NoError(t, err)

	assert.True(t, totals.TaxRate.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.Equal(totals.Subtotal), "sin tasa el total es el subtotal")
}

func TestComputeInvoiceTotals_TasaFueraDeRango_NoSeLimita(t *testing.T) {
	totals, err := billing.ComputeInvoiceTotals([]billing.LineItemDraft{
		{Description: "Pieza", Quantity: "1", UnitPrice: "100"},
	}, "150")
	require.NoError(t, err)

	assert.True(t, totals.Tax.Equal(d("150")), "una tasa de 150%% se aplica tal cual")
	assert.True(t, totals.Total.Equal(d("250")))
}

func TestComputeInvoiceTotals_InvariantesDeTotales(t *testing.T) {
	totals, err := billing.ComputeInvoiceTotals([]billing.LineItemDraft{
		{Description: "Aceite 10W30", Quantity: "4", UnitPrice: "425.50"},
		{Description: "Filtro de aceite", Quantity: "1", UnitPrice: "350"},
		{Description: "Mano de obra", Quantity: "1.5", UnitPrice: "800"},
	}, "18")
	require.NoError(t, err)

	sum := decimal.Zero
	for _, item := range totals.Items {
		assert.True(t, item.Total.Equal(item.Quantity.Mul(item.UnitPrice)),
			"total de línea = cantidad × precio en %q", item.Description)
		sum = sum.Add(item.Total)
	}
	assert.True(t, totals.Subtotal.Equal(sum), "subtotal = Σ totales de línea")
	assert.True(t, totals.Tax.Equal(totals.Subtotal.Mul(d("18")).Div(d("100"))))
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax)))
}

func TestComputeInvoiceTotals_EsDeterminista(t *testing.T) {
	drafts := []billing.LineItemDraft{
		{Description: "Alineación", Quantity: "1", UnitPrice: "1200"},
		{Description: "Balanceo", Quantity: "4", UnitPrice: "150"},
	}

	first, err := billing.ComputeInvoiceTotals(drafts, "18")
	require.NoError(t, err)
	second, err := billing.ComputeInvoiceTotals(drafts, "18")
	require.NoError(t, err)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))
	require.Equal(t, len(first.Items), len(second.Items))
	for i := range first.Items {
		assert.True(t, first.Items[i].Total.Equal(second.Items[i].Total))
	}
}
