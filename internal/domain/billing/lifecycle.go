package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// Summary agrega los montos de una colección de facturas por estado.
// Las facturas canceladas no cuentan en ninguna de las dos sumas.
type Summary struct {
	PendingTotal decimal.Decimal
	PaidTotal    decimal.Decimal
}

// AggregateByStatus suma los totales de las facturas pendientes y pagadas.
// Entrada vacía produce {0, 0}.
func AggregateByStatus(invoices []entity.Invoice) Summary {
	s := Summary{
		PendingTotal: decimal.Zero,
		PaidTotal:    decimal.Zero,
	}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoiceStatusPending:
			s.PendingTotal = s.PendingTotal.Add(inv.Total)
		case entity.InvoiceStatusPaid:
			s.PaidTotal = s.PaidTotal.Add(inv.Total)
		}
	}
	return s
}

// TransitionStatus produce una copia de la factura con el nuevo estado, sin
// mutar la entrada. PaidAt se fija al entrar a paid y se limpia al salir de
// paid; una factura ya pagada conserva su PaidAt original.
//
// No se restringen transiciones entre estados (cancelled no es terminal a
// nivel de dominio); la persistencia queda en manos del caller.
func TransitionStatus(inv entity.Invoice, newStatus string, now time.Time) (entity.Invoice, error) {
	if !entity.ValidInvoiceStatus(newStatus) {
		return entity.Invoice{}, domain.ErrInvalidInput
	}
	out := inv
	switch {
	case newStatus == entity.InvoiceStatusPaid && inv.Status != entity.InvoiceStatusPaid:
		t := now
		out.PaidAt = &t
	case newStatus != entity.InvoiceStatusPaid:
		out.PaidAt = nil
	}
	out.Status = newStatus
	out.UpdatedAt = now
	return out, nil
}
