// Package billing contiene el cálculo puro de facturas del taller: normalización
// de líneas capturadas en formularios, totales con ITBIS, numeración y ciclo de
// vida de estados. Sin I/O ni estado: misma entrada, misma salida.
package billing

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// LineItemDraft es una línea de factura tal como llega del formulario, sin
// validar: cantidad y precio son texto libre.
type LineItemDraft struct {
	Description string
	Quantity    string
	UnitPrice   string
}

// Totals es el desglose final de una factura calculado desde los borradores.
type Totals struct {
	Items    []entity.LineItem
	Subtotal decimal.Decimal
	TaxRate  decimal.Decimal // porcentaje, ej. 18
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// parseAmount interpreta un campo numérico de formulario. Valores vacíos o no
// parseables degradan a 0 en lugar de fallar: una fila a medio llenar no debe
// tumbar el cálculo completo.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeItem convierte un borrador en una línea válida. Retorna ok=false
// (filtrado silencioso, no error) cuando la descripción queda vacía o la
// cantidad no es positiva: una fila a medio llenar simplemente se descarta.
// Un precio negativo degrada a 0, igual que un valor no parseable.
func NormalizeItem(draft LineItemDraft) (entity.LineItem, bool) {
	desc := strings.TrimSpace(draft.Description)
	qty := parseAmount(draft.Quantity)
	price := parseAmount(draft.UnitPrice)

	if desc == "" || !qty.GreaterThan(decimal.Zero) {
		return entity.LineItem{}, false
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	return entity.LineItem{
		Description: desc,
		Quantity:    qty,
		UnitPrice:   price,
		Total:       qty.Mul(price),
	}, true
}

// ComputeInvoiceTotals normaliza los borradores (preservando el orden de
// captura), descarta filas inválidas y calcula subtotal, impuesto y total.
//
// La tasa llega como texto del formulario; un valor no parseable degrada a 0.
// No se limita al rango 0–100: una tasa fuera de rango se refleja tal cual en
// el impuesto calculado.
//
// Retorna domain.ErrEmptyInvoice cuando ninguna línea sobrevive al filtrado;
// el caller debe bloquear el envío sin crear factura parcial.
func ComputeInvoiceTotals(drafts []LineItemDraft, taxRatePercent string) (*Totals, error) {
	items := make([]entity.LineItem, 0, len(drafts))
	for _, d := range drafts {
		if item, ok := NormalizeItem(d); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	rate := parseAmount(taxRatePercent)
	tax := subtotal.Mul(rate).Div(oneHundred)

	return &Totals{
		Items:    items,
		Subtotal: subtotal,
		TaxRate:  rate,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}
