package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemDraft línea de factura tal como llega del formulario: cantidad y
// precio como texto libre. La normalización (parseo leniente, filtrado de filas
// a medio llenar) ocurre en el dominio, no aquí.
type InvoiceItemDraft struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// CreateInvoiceRequest body para POST /api/vehicles/:id/invoices.
// TaxRate en porcentaje ("18"); vacío usa la tasa por defecto configurada.
type CreateInvoiceRequest struct {
	Items   []InvoiceItemDraft `json:"items"`
	TaxRate string             `json:"tax_rate,omitempty"`
	Notes   string             `json:"notes,omitempty"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // pending | paid | cancelled
}

// LineItemResponse línea normalizada en respuestas.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse factura completa para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID             int64              `json:"id"`
	InvoiceNumber  string             `json:"invoice_number"`
	VehiclePlate   string             `json:"vehicle_plate"`
	VehicleID      int64              `json:"vehicle_id"`
	Items          []LineItemResponse `json:"items,omitempty"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxRate        decimal.Decimal    `json:"tax_rate"`
	Tax            decimal.Decimal    `json:"tax"`
	Total          decimal.Decimal    `json:"total"`
	TotalFormatted string             `json:"total_formatted"` // RD$1,234.50
	Notes          string             `json:"notes,omitempty"`
	Status         string             `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	PaidAt         *time.Time         `json:"paid_at,omitempty"`
}

// VehicleBillingSummaryResponse resumen de facturación de un vehículo:
// facturas canceladas no cuentan en ninguna de las dos sumas.
type VehicleBillingSummaryResponse struct {
	InvoiceCount          int             `json:"invoice_count"`
	PendingTotal          decimal.Decimal `json:"pending_total"`
	PaidTotal             decimal.Decimal `json:"paid_total"`
	PendingTotalFormatted string          `json:"pending_total_formatted"`
	PaidTotalFormatted    string          `json:"paid_total_formatted"`
}
