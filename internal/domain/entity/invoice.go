package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una factura.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa una factura del taller asociada a un vehículo.
//
// Subtotal, Tax y Total son siempre recomputables desde Items y TaxRate; se
// persisten por conveniencia pero nunca se mutan de forma independiente.
// PaidAt está presente si y solo si Status == paid.
type Invoice struct {
	ID            int64
	InvoiceNumber string // FAC-YYYYMM-NNNN, generado una sola vez al crear
	VehiclePlate  string
	VehicleID     int64
	Items         []LineItem // orden de captura, nunca vacío
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // porcentaje 0–100
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Notes         string
	Status        string
	CreatedAt     time.Time
	PaidAt        *time.Time
	UpdatedAt     time.Time
}

// LineItem es una línea de factura ya normalizada: descripción no vacía,
// cantidad > 0 y Total = Quantity × UnitPrice. Inmutable una vez computada.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// ValidInvoiceStatus indica si s es un estado de factura conocido.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}
